package shop_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	seller_cache "github.com/ChoViet-Ecommerce/choviet-marketplace-backend/cache"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateShop godoc
// @Summary Open a shop
// @Description Upgrade the authenticated user to a seller. The shop name is assigned from a database sequence ("Shop1", "Shop2", ...), so concurrent signups cannot collide.
// @Tags User - Shop
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.ApiResponse{data=models.ShopInfo} "Shop created"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "User not found"
// @Failure 409 {object} models.ApiResponse "Shop already exists"
// @Failure 500 {object} models.ApiResponse
// @Router /users/shop [post]
func CreateShop(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err = config.Gorm.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to load user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create shop"))
		return
	}

	if user.Shop != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "You already have a shop"))
		return
	}

	shopName, err := services.NextShopName(ctx)
	if err != nil {
		log.Printf("❌ Failed to allocate shop name: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create shop"))
		return
	}

	shop := models.ShopInfo{
		ShopName:      shopName,
		ShopAvatars:   models.DefaultShopAvatar,
		ShopCreatedAt: time.Now(),
	}

	err = config.Gorm.WithContext(ctx).
		Model(&user).
		Updates(map[string]interface{}{"shop": shop, "role": "seller"}).Error
	if err != nil {
		log.Printf("❌ Failed to create shop for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create shop"))
		return
	}

	seller_cache.Invalidate(userID.String())
	log.Printf("✅ Shop %s created for user %s", shopName, userID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Shop created successfully", shop))
}
