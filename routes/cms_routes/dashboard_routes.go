package cms_routes

import (
	"github.com/FreshPress-Cleaning/freshpress-backend/controllers/cms/dashboard_controller"
	"github.com/FreshPress-Cleaning/freshpress-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupDashboardRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.AdminAuthMiddleware())

	dashboard.GET("/stats", dashboard_controller.GetDashboardStats)
	dashboard.GET("/customers", dashboard_controller.GetCustomerAnalytics)
}
