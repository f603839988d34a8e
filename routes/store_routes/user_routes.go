package store_routes

import (
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/controllers/store/user_controller/address_controller"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/controllers/store/user_controller/shop_controller"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes mounts the account routes; all require a session.
func SetupUserRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		// Address book
		users.GET("/addresses", address_controller.GetAddresses)
		users.POST("/addresses", address_controller.AddAddress)
		users.PATCH("/addresses/:id", address_controller.UpdateAddress)
		users.DELETE("/addresses/:id", address_controller.DeleteAddress)
		users.PATCH("/addresses/:id/default", address_controller.SetDefaultAddress)
		users.PATCH("/addresses/:id/pickup", address_controller.SetPickupAddress)

		// Seller upgrade
		users.POST("/shop", shop_controller.CreateShop)
	}
}
