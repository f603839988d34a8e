package product_controller

import (
	"log"
	"net/http"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetNewestProducts godoc
// @Summary Get newest products
// @Description Retrieve the most recently listed products, capped at 24.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /products/newest [get]
func GetNewestProducts(c *gin.Context) {
	cards, err := fetchCards(func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC").Limit(listingLimit)
	})
	if err != nil {
		log.Printf("❌ Failed to fetch newest products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch newest products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Newest products fetched successfully", cards))
}
