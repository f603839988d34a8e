package product_controller

import (
	"log"
	"net/http"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// minBestSellerSold is the units-sold floor for the best-seller shelf.
const minBestSellerSold = 10

// GetBestSellingProducts godoc
// @Summary Get best-selling products
// @Description Retrieve products with at least 10 units sold, ordered by units sold, capped at 24.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /products/bestSellers [get]
func GetBestSellingProducts(c *gin.Context) {
	cards, err := fetchCards(func(tx *gorm.DB) *gorm.DB {
		return tx.Where("sold >= ?", minBestSellerSold).Order("sold DESC").Limit(listingLimit)
	})
	if err != nil {
		log.Printf("❌ Failed to fetch best sellers: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch best sellers"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Best sellers fetched successfully", cards))
}
