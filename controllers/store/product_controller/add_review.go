package product_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/middleware"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddProductReview godoc
// @Summary Add a product review
// @Description Append a review (rating 1-5, optional comment and media) to a product. Each user may review a product once.
// @Tags Storefront - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body models.AddReviewRequest true "Review details"
// @Success 201 {object} models.ApiResponse "Review added"
// @Failure 400 {object} models.ApiResponse "Missing rating or product id"
// @Failure 401 {object} models.ApiResponse "Not logged in"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 409 {object} models.ApiResponse "Already reviewed"
// @Failure 500 {object} models.ApiResponse
// @Router /products/reviews [post]
func AddProductReview(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please provide the product id and a rating from 1 to 5"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err := config.Gorm.WithContext(ctx).Where("id = ?", req.ProductID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to load product %s for review: %v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add review"))
		return
	}

	for _, review := range product.Reviews {
		if review.UserID == userID {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "You have already reviewed this product"))
			return
		}
	}

	reviewMedia := req.ReviewMedia
	if reviewMedia == nil {
		reviewMedia = []string{}
	}

	reviews := append(product.Reviews, models.Review{
		UserID:      userID,
		ProductID:   req.ProductID,
		Rating:      req.Rating,
		ReviewMedia: reviewMedia,
		Comment:     req.Comment,
		CreatedAt:   time.Now(),
	})

	// single-document update; last write wins on concurrent appends
	err = config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", req.ProductID).
		Update("reviews", reviews).Error
	if err != nil {
		log.Printf("❌ Failed to add review to product %s: %v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add review"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review added successfully", nil))
}
