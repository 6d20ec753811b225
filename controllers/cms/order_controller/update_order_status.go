package order_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UpdateOrderStatus godoc
// @Summary Update order status (CMS)
// @Description Moves an order through its lifecycle. Cancelling requires admin notes. Completed/cancelled timestamps are stamped here.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param body body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.UpdateOrderStatusResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[admin.order.status] start order=%s", orderID)

	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	if req.Status == models.OrderStatusCancelled && (req.AdminNotes == nil || *req.AdminNotes == "") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Admin notes are required when cancelling an order"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.Gorm.WithContext(ctx).Where("id = ?", orderID).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order.status] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	if order.Status == models.OrderStatusCompleted || order.Status == models.OrderStatusCancelled {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Order is already "+order.Status))
		return
	}

	previousStatus := order.Status

	updates := map[string]interface{}{
		"status":     req.Status,
		"updated_at": time.Now().UTC(),
	}
	if req.AdminNotes != nil {
		updates["admin_notes"] = *req.AdminNotes
	}
	switch req.Status {
	case models.OrderStatusCompleted:
		updates["completed_at"] = time.Now().UTC()
	case models.OrderStatusCancelled:
		updates["cancelled_at"] = time.Now().UTC()
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.order.status] ERROR update err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	logStatusChange(c, &order, previousStatus, req.Status)

	log.Printf("[admin.order.status] respond 200 order=%s %s → %s", order.OrderNumber, previousStatus, req.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated successfully", models.UpdateOrderStatusResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Status:      req.Status,
		AdminNotes:  req.AdminNotes,
	}))
}

// logStatusChange appends an audit row; failures are logged, never surfaced.
func logStatusChange(c *gin.Context, order *models.Order, from, to string) {
	adminID := c.GetString("adminID")
	adminEmail := c.GetString("adminEmail")

	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		log.Printf("[admin.order.status] skip activity log: bad admin id %q", adminID)
		return
	}

	changesJSON, _ := json.Marshal(map[string]string{"status_from": from, "status_to": to})

	entry := models.ActivityLog{
		AdminID:      adminUUID,
		AdminEmail:   adminEmail,
		Action:       "order.status_update",
		ResourceType: "order",
		ResourceID:   order.ID,
		ResourceName: order.OrderNumber,
		Changes:      datatypes.JSON(changesJSON),
		Status:       "success",
		IPAddress:    c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[admin.order.status] failed to log activity: %v", err)
	}
}
