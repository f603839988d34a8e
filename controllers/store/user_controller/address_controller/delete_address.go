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

// DeleteAddress godoc
// @Summary Delete address
// @Description Delete one of the authenticated user's addresses. If the default address goes, the oldest remaining address becomes the new default.
// @Tags User - Addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} models.ApiResponse "Address deleted successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Failure 500 {object} models.ApiResponse
// @Router /users/addresses/{id} [delete]
func DeleteAddress(c *gin.Context) {
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
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete address"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&address).Error; err != nil {
		log.Printf("❌ Failed to delete address %s: %v", addressID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete address"))
		return
	}

	// Promote the oldest remaining address when the default is removed
	if address.IsDefault {
		var oldest models.UserAddress
		err := config.Gorm.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("created_at ASC").
			First(&oldest).Error
		if err == nil {
			if err := config.Gorm.WithContext(ctx).
				Model(&oldest).
				Update("is_default", true).Error; err != nil {
				log.Printf("❌ Failed to promote new default address: %v", err)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ Failed to look up replacement default address: %v", err)
		}
	}

	seller_cache.Invalidate(userID.String())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Address deleted successfully", nil))
}
