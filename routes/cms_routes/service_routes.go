package cms_routes

import (
	"github.com/FreshPress-Cleaning/freshpress-backend/controllers/cms/service_controller"
	"github.com/FreshPress-Cleaning/freshpress-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupServiceRoutes(rg *gin.RouterGroup) {
	service := rg.Group("/services")
	service.Use(middleware.AdminAuthMiddleware())

	service.GET("", service_controller.GetServices)
	service.POST("", service_controller.CreateService)
	service.PATCH("/:id", service_controller.UpdateService)

	// Deactivating a catalog entry hides it storefront-wide
	service.DELETE("/:id",
		middleware.RequireSuperAdminMiddleware(),
		service_controller.DeleteService,
	)
}
