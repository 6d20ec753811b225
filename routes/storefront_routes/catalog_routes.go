package storefront_routes

import (
	store_service "github.com/FreshPress-Cleaning/freshpress-backend/controllers/storefront/service_controller"
	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(router *gin.RouterGroup) {
	// Service catalog routes (public, no auth required)
	services := router.Group("/services")
	{
		services.GET("", store_service.GetServices)        // Active catalog
		services.GET("/:id", store_service.GetServiceByID) // Single service
	}
}
