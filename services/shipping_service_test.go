package services

import (
	"testing"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestPreferredAddress(t *testing.T) {
	pickup := models.UserAddress{Street: "1 Pickup", IsPickup: true}
	dflt := models.UserAddress{Street: "2 Default", IsDefault: true}
	plain := models.UserAddress{Street: "3 Plain"}

	t.Run("pickup beats default", func(t *testing.T) {
		got := PreferredAddress([]models.UserAddress{plain, dflt, pickup})
		assert.Equal(t, "1 Pickup", got.Street)
	})

	t.Run("default beats first", func(t *testing.T) {
		got := PreferredAddress([]models.UserAddress{plain, dflt})
		assert.Equal(t, "2 Default", got.Street)
	})

	t.Run("falls back to first", func(t *testing.T) {
		got := PreferredAddress([]models.UserAddress{plain})
		assert.Equal(t, "3 Plain", got.Street)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Nil(t, PreferredAddress(nil))
	})
}

func TestFormatShippingAddress(t *testing.T) {
	t.Run("joins street and address", func(t *testing.T) {
		addr := &models.UserAddress{Street: "121 Lê Thanh Nghĩa", Address: "Đông Tâm, Hai Bà Trưng, Hà Nội"}
		assert.Equal(t, "121 Lê Thanh Nghĩa, Đông Tâm, Hai Bà Trưng, Hà Nội", FormatShippingAddress(addr))
	})

	t.Run("skips blank street", func(t *testing.T) {
		addr := &models.UserAddress{Street: "  ", Address: "Thanh Xuân, Hà Nội"}
		assert.Equal(t, "Thanh Xuân, Hà Nội", FormatShippingAddress(addr))
	})

	t.Run("nil address", func(t *testing.T) {
		assert.Equal(t, "", FormatShippingAddress(nil))
	})
}

func TestExtractProvince(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"121 Lê Thanh Nghĩa, Đông Tâm, Hai Bà Trưng, Hà Nội", "Hà Nội"},
		{"Quận 1, TP. Hồ Chí Minh", "TP. Hồ Chí Minh"},
		{"Hà Nội", "Hà Nội"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractProvince(tt.address))
	}
}
