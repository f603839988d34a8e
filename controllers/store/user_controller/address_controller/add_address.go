package address_controller

import (
	"log"
	"net/http"

	seller_cache "github.com/ChoViet-Ecommerce/choviet-marketplace-backend/cache"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/gin-gonic/gin"
)

// AddAddress godoc
// @Summary Add new address
// @Description Add a new address for the authenticated user. Marking it default or pickup unsets the previous holder of that flag.
// @Tags User - Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param address body models.AddAddressRequest true "Address details"
// @Success 201 {object} models.ApiResponse{data=object{id=string}} "Address added successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 409 {object} models.ApiResponse "Duplicate address"
// @Failure 500 {object} models.ApiResponse
// @Router /users/addresses [post]
func AddAddress(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Reject an exact duplicate of an already saved address
	var duplicates int64
	err := config.Gorm.WithContext(ctx).
		Model(&models.UserAddress{}).
		Where("user_id = ? AND full_name = ? AND phone = ? AND address = ?",
			userID, req.FullName, req.Phone, req.Address).
		Count(&duplicates).Error
	if err != nil {
		log.Printf("❌ Duplicate address check failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add address"))
		return
	}
	if duplicates > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "This address is already saved"))
		return
	}

	// Default and pickup are singletons per user
	if req.IsDefault {
		unsetFlag(userID, "is_default")
	}
	if req.IsPickup {
		unsetFlag(userID, "is_pickup")
	}

	address := models.UserAddress{
		UserID:     userID,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Address:    req.Address,
		Street:     req.Street,
		DistrictID: req.DistrictID,
		IsDefault:  req.IsDefault,
		IsPickup:   req.IsPickup,
		IsReturn:   req.IsReturn,
	}

	if err := config.Gorm.WithContext(ctx).Create(&address).Error; err != nil {
		log.Printf("❌ Failed to add address: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add address"))
		return
	}

	seller_cache.Invalidate(userID.String())
	log.Printf("✅ Address added: %s (default: %v, pickup: %v) for user: %s",
		address.ID, req.IsDefault, req.IsPickup, userID)

	c.JSON(http.StatusCreated, models.SuccessResponse(
		c,
		"Address added successfully",
		map[string]string{"id": address.ID.String()},
	))
}
