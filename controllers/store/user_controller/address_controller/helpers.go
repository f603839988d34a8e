package address_controller

import (
	"log"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/google/uuid"
)

// unsetFlag clears a singleton address flag (is_default / is_pickup)
// across the user's addresses before another address claims it.
// Failures are logged but do not abort the request.
func unsetFlag(userID uuid.UUID, column string) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := config.Gorm.WithContext(ctx).
		Model(&models.UserAddress{}).
		Where("user_id = ? AND "+column+" = ?", userID, true).
		Update(column, false).Error
	if err != nil {
		log.Printf("❌ Failed to unset %s on other addresses: %v", column, err)
	}
}
