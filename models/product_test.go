package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProductID(t *testing.T) {
	shape := regexp.MustCompile(`^sp\d{13}_[0-9a-z]{4}$`)
	for i := 0; i < 50; i++ {
		id := NewProductID()
		assert.Regexp(t, shape, id)
	}
}

func TestUserShopBadgeDefaults(t *testing.T) {
	t.Run("nil user", func(t *testing.T) {
		badge := (*User)(nil).ShopBadge()
		assert.Equal(t, DefaultShopName, badge.ShopName)
		assert.Equal(t, DefaultShopAvatar, badge.ShopAvatars)
	})

	t.Run("user without a shop", func(t *testing.T) {
		badge := (&User{Username: "someone"}).ShopBadge()
		assert.Equal(t, DefaultShopName, badge.ShopName)
	})

	t.Run("shop with blank avatar keeps default", func(t *testing.T) {
		badge := (&User{Shop: &ShopInfo{ShopName: "Shop7"}}).ShopBadge()
		assert.Equal(t, "Shop7", badge.ShopName)
		assert.Equal(t, DefaultShopAvatar, badge.ShopAvatars)
	})
}
