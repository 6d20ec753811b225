package order_controller

import (
	"log"
	"net/http"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetOrderDetails godoc
// @Summary Get order details
// @Description Retrieve complete order details including the address snapshot
// @Tags User - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Permission denied"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/orders/{id} [get]
func GetOrderDetails(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	orderIDStr := c.Param("id")
	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Raw SQL keeps the nullable timestamp columns well-behaved
	var order models.Order
	err = config.Gorm.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			service_id,
			order_number,
			quantity,
			unit_price,
			total_price,
			status,
			pickup_date,
			address_snapshot,
			customer_notes,
			admin_notes,
			created_at,
			updated_at,
			completed_at,
			cancelled_at
		FROM orders
		WHERE id = ?
	`, orderID.String()).Scan(&order).Error
	if err != nil {
		log.Printf("❌ Failed to fetch order: %v", err)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	// Check if order was found
	if order.OrderNumber == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	// Verify ownership
	if order.UserID != userID.String() {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Permission denied"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved", order))
}
