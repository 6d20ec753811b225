package cms_routes

import (
	"github.com/FreshPress-Cleaning/freshpress-backend/controllers/cms/order_controller"
	"github.com/FreshPress-Cleaning/freshpress-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")
	order.Use(middleware.AdminAuthMiddleware())

	order.GET("", order_controller.GetOrders)
	order.GET("/stats", order_controller.GetOrderStats)
	order.GET("/:id", order_controller.GetOrderDetailsByID)
	order.GET("/:id/download-invoice", order_controller.DownloadOrderInvoicePDF)

	// Update order status (only write operation for orders)
	order.PATCH("/:id/status", order_controller.UpdateOrderStatus)
}
