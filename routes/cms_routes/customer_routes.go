package cms_routes

import (
	"github.com/FreshPress-Cleaning/freshpress-backend/controllers/cms/customer_controller"
	"github.com/FreshPress-Cleaning/freshpress-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customers")
	customer.Use(middleware.AdminAuthMiddleware())

	customer.GET("", customer_controller.GetCustomers)
}
