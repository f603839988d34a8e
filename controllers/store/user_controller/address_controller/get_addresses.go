package address_controller

import (
	"log"
	"net/http"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAddresses godoc
// @Summary Get saved addresses
// @Description List the authenticated user's saved addresses, oldest first.
// @Tags User - Addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse
// @Router /users/addresses [get]
func GetAddresses(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	addresses := make([]models.UserAddress, 0)
	err := config.Gorm.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&addresses).Error
	if err != nil {
		log.Printf("❌ Failed to fetch addresses for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch addresses"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Addresses fetched successfully", addresses))
}

// authedUserID pulls the authenticated user id out of the context and
// answers the 401 itself when it is missing or malformed.
func authedUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return uuid.Nil, false
	}

	return userID, true
}
