package address_controller

import (
	"errors"
	"log"
	"net/http"

	seller_cache "github.com/ChoViet-Ecommerce/choviet-marketplace-backend/cache"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SetDefaultAddress godoc
// @Summary Set default address
// @Description Mark one of the authenticated user's addresses as the default, unsetting the previous default.
// @Tags User - Addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} models.ApiResponse "Default address updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Failure 500 {object} models.ApiResponse
// @Router /users/addresses/{id}/default [patch]
func SetDefaultAddress(c *gin.Context) {
	setSingletonFlag(c, "is_default", "Default address updated")
}

// SetPickupAddress godoc
// @Summary Set pickup address
// @Description Mark one of the authenticated user's addresses as the shipping pickup origin, unsetting the previous one.
// @Tags User - Addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} models.ApiResponse "Pickup address updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Failure 500 {object} models.ApiResponse
// @Router /users/addresses/{id}/pickup [patch]
func SetPickupAddress(c *gin.Context) {
	setSingletonFlag(c, "is_pickup", "Pickup address updated")
}

func setSingletonFlag(c *gin.Context, column, successMessage string) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var address models.UserAddress
	err = config.Gorm.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Address not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to load address %s: %v", addressID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update address"))
		return
	}

	unsetFlag(userID, column)

	if err := config.Gorm.WithContext(ctx).
		Model(&address).
		Update(column, true).Error; err != nil {
		log.Printf("❌ Failed to set %s on address %s: %v", column, addressID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update address"))
		return
	}

	seller_cache.Invalidate(userID.String())

	c.JSON(http.StatusOK, models.SuccessResponse(c, successMessage, nil))
}
