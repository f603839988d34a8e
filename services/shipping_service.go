package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"gorm.io/gorm"
)

// PreferredAddress picks the shipping-origin address out of a user's
// saved addresses: pickup flag first, then default, then whatever
// comes first. Nil when the list is empty.
func PreferredAddress(addresses []models.UserAddress) *models.UserAddress {
	if len(addresses) == 0 {
		return nil
	}
	for i := range addresses {
		if addresses[i].IsPickup {
			return &addresses[i]
		}
	}
	for i := range addresses {
		if addresses[i].IsDefault {
			return &addresses[i]
		}
	}
	return &addresses[0]
}

// FormatShippingAddress joins street and address with ", ", skipping
// blank parts. Empty string for a nil address.
func FormatShippingAddress(addr *models.UserAddress) string {
	if addr == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	for _, value := range []string{addr.Street, addr.Address} {
		if v := strings.TrimSpace(value); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

// ExtractProvince returns the last comma-separated segment of a
// formatted address, e.g.
// "121 Lê Thanh Nghĩa, Đông Tâm, Hai Bà Trưng, Hà Nội" → "Hà Nội".
func ExtractProvince(address string) string {
	if address == "" {
		return ""
	}
	parts := strings.Split(address, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

// ResolveShippingAddress loads the seller's addresses and returns the
// formatted origin. A seller with no addresses yields "".
func ResolveShippingAddress(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", nil
	}

	var addresses []models.UserAddress
	err := config.Gorm.WithContext(ctx).
		Select("id, user_id, address, street, is_pickup, is_default").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&addresses).Error
	if err != nil {
		return "", err
	}

	return FormatShippingAddress(PreferredAddress(addresses)), nil
}

// FetchSellerShop loads the owning user's shop badge. A missing user
// (deleted seller) is not an error: the default badge is returned.
func FetchSellerShop(ctx context.Context, userID string) (models.ShopBadge, error) {
	var user models.User
	err := config.Gorm.WithContext(ctx).
		Select("id, shop").
		Where("id = ?", userID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return (*models.User)(nil).ShopBadge(), nil
	}
	if err != nil {
		return models.ShopBadge{}, err
	}
	return user.ShopBadge(), nil
}
