package cms_routes

import (
	admin_auth "github.com/FreshPress-Cleaning/freshpress-backend/controllers/cms/admin_controller/auth"
	"github.com/FreshPress-Cleaning/freshpress-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up the admin auth routes with appropriate middleware
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)
	}
}
