package product_controller

import (
	"log"
	"net/http"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductsByCategory godoc
// @Summary Get products by category
// @Description Retrieve products whose category contains the given name (case-insensitive), newest first, capped at 24.
// @Tags Storefront - Products
// @Produce json
// @Param category query string true "Category name"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing category name"
// @Failure 500 {object} models.ApiResponse
// @Router /products/category [get]
func GetProductsByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing category name"))
		return
	}

	cards, err := fetchCards(func(tx *gorm.DB) *gorm.DB {
		return tx.Where("category ILIKE ?", "%"+category+"%").
			Order("created_at DESC").
			Limit(listingLimit)
	})
	if err != nil {
		log.Printf("❌ Failed to fetch products for category %q: %v", category, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products by category"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", cards))
}
