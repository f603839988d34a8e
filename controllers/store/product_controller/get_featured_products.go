package product_controller

import (
	"log"
	"net/http"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetFeaturedProducts godoc
// @Summary Get featured products
// @Description Retrieve products ordered by view count, capped at 24. Only products somebody has looked at qualify.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /products/featured [get]
func GetFeaturedProducts(c *gin.Context) {
	cards, err := fetchCards(func(tx *gorm.DB) *gorm.DB {
		return tx.Where("views >= ?", 1).Order("views DESC").Limit(listingLimit)
	})
	if err != nil {
		log.Printf("❌ Failed to fetch featured products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch featured products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured products fetched successfully", cards))
}
