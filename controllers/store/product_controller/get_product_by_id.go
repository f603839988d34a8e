package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductByID godoc
// @Summary Get product detail
// @Description Get the full product document (reviews included) with shop and shipping-origin enrichment. Increments the view counter as a side effect.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /products/{id} [get]
func GetProductByID(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err := config.Gorm.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to fetch product %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	badge, sentFrom, err := services.SellerContext(ctx, product.UserID)
	if err != nil {
		log.Printf("❌ Failed to enrich product %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	go incrementProductViews(id)

	detail := models.ProductDetail{
		Product:  product,
		SentFrom: sentFrom,
		Shop:     models.ShopSummary{Name: badge.ShopName, Avatar: badge.ShopAvatars},
		Owner:    models.ShopOwner{Shop: badge},
	}
	// the response reflects the view just counted
	detail.Views++

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
