package product_controller

import (
	"log"
	"net/http"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts godoc
// @Summary Get all products
// @Description Retrieve the general product listing as card views, capped at 24. Reviews are never included.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /products [get]
func GetProducts(c *gin.Context) {
	cards, err := fetchCards(func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(listingLimit)
	})
	if err != nil {
		log.Printf("❌ Failed to fetch products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", cards))
}
