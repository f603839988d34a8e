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

// UpdateAddress godoc
// @Summary Update address
// @Description Update fields of one of the authenticated user's addresses.
// @Tags User - Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Param address body models.UpdateAddressRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse "Address updated successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Failure 500 {object} models.ApiResponse
// @Router /users/addresses/{id} [patch]
func UpdateAddress(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address ID"))
		return
	}

	var req models.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
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

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Street != nil {
		updates["street"] = *req.Street
	}
	if req.DistrictID != nil {
		updates["district_id"] = *req.DistrictID
	}
	if req.IsReturn != nil {
		updates["is_return"] = *req.IsReturn
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nothing to update"))
		return
	}

	err = config.Gorm.WithContext(ctx).
		Model(&address).
		Updates(updates).Error
	if err != nil {
		log.Printf("❌ Failed to update address %s: %v", addressID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update address"))
		return
	}

	seller_cache.Invalidate(userID.String())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Address updated successfully", nil))
}
