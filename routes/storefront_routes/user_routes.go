package storefront_routes

import (
	"github.com/FreshPress-Cleaning/freshpress-backend/controllers/storefront/address_controller"
	"github.com/FreshPress-Cleaning/freshpress-backend/controllers/storefront/order_controller"
	"github.com/FreshPress-Cleaning/freshpress-backend/controllers/storefront/profile_controller"
	"github.com/FreshPress-Cleaning/freshpress-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up all customer account routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		user.GET("/me", profile_controller.GetMe)
		user.PATCH("/profile", profile_controller.UpdateProfile)

		// Addresses
		user.GET("/addresses", address_controller.GetAddresses)
		user.POST("/addresses", address_controller.AddAddress)
		user.PATCH("/addresses/:id", address_controller.UpdateAddress)
		user.DELETE("/addresses/:id", address_controller.DeleteAddress)
		user.PATCH("/addresses/:id/default", address_controller.SetDefaultAddress)

		// Orders
		user.GET("/orders", order_controller.GetOrders)
		user.GET("/orders/:id", order_controller.GetOrderDetails)
		user.POST("/orders", order_controller.CreateOrder)
	}
}
