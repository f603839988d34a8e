package store_routes

import (
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/controllers/store/product_controller"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupProductRoutes mounts the catalog routes. Reads are public;
// writes require a session.
func SetupProductRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("/search", product_controller.SearchProducts) // /api/products/search?q=abc&category=Gạch&sortBy=price-desc
		products.GET("", product_controller.GetProducts)
		products.GET("/newest", product_controller.GetNewestProducts)
		products.GET("/featured", product_controller.GetFeaturedProducts)
		products.GET("/bestSellers", product_controller.GetBestSellingProducts)
		products.GET("/category", product_controller.GetProductsByCategory)
		products.GET("/:id", product_controller.GetProductByID)

		protected := products.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/save", product_controller.SaveProduct)
			protected.POST("/reviews", product_controller.AddProductReview)
		}
	}
}
