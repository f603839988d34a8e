package product_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/middleware"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// SaveProduct godoc
// @Summary Create a product
// @Description Create a new product listing for the authenticated seller. The first media URL is the cover image and is required. A (name, owner) pair must be unique.
// @Tags Storefront - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.SaveProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse{data=object{id=string}} "Product created"
// @Failure 400 {object} models.ApiResponse "Missing or malformed fields"
// @Failure 401 {object} models.ApiResponse "Not logged in"
// @Failure 409 {object} models.ApiResponse "Duplicate product for this seller"
// @Failure 500 {object} models.ApiResponse
// @Router /products/save [post]
func SaveProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please fill in all required product fields"))
		return
	}

	if strings.TrimSpace(req.Media[0]) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A cover image is required"))
		return
	}

	manufactureDate, err := time.Parse("2006-01-02", req.ManufactureDate)
	if err != nil {
		if manufactureDate, err = time.Parse(time.RFC3339, req.ManufactureDate); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid manufacture date"))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// One listing per (name, owner)
	var existing int64
	err = config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("name = ? AND user_id = ?", req.ProductName, userID).
		Count(&existing).Error
	if err != nil {
		log.Printf("❌ Duplicate check failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save product"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "This product already exists for the current seller"))
		return
	}

	product := models.Product{
		Name:            req.ProductName,
		Price:           req.Price,
		Category:        req.Category,
		UserID:          userID,
		Warehouse:       req.Warehouse,
		Warranty:        req.Warranty,
		ManufactureDate: datatypes.Date(manufactureDate),
		Manufacturer:    req.Manufacturer,
		Description:     req.Description,
		Media:           req.Media,
		Discount:        models.DiscountConfig{},
		Reviews:         models.ReviewList{},
	}

	if err := config.Gorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("❌ Failed to save product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save product"))
		return
	}

	log.Printf("✅ Product created: %s (%s) by user %s", product.ID, product.Name, userID)

	c.JSON(http.StatusCreated, models.SuccessResponse(
		c,
		"Product created successfully",
		map[string]string{"id": product.ID},
	))
}
