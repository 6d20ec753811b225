package order_controller

import (
	"log"
	"net/http"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// orderDetailsRow is CMSOrderListRow plus the fields the admin detail view needs.
type orderDetailsRow struct {
	models.CMSOrderListRow
	AddressSnapshot []byte  `json:"address_snapshot,omitempty" gorm:"column:address_snapshot"`
	CustomerNotes   *string `json:"customer_notes,omitempty"`
	AdminNotes      *string `json:"admin_notes,omitempty"`
}

// GetOrderDetailsByID godoc
// @Summary Get one order (CMS)
// @Description Full order details for the admin order drawer, with resolved customer and service
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders/{id} [get]
func GetOrderDetailsByID(c *gin.Context) {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var row orderDetailsRow
	err := config.Gorm.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.user_id AS customer_id,
			COALESCE(u.name, '') AS customer_name,
			COALESCE(u.email, '') AS customer_email,
			COALESCE(s.name, '') AS service_name,
			o.quantity,
			o.total_price,
			o.status,
			o.pickup_date,
			o.created_at,
			o.address_snapshot,
			o.customer_notes,
			o.admin_notes
		FROM orders o
		LEFT JOIN users u ON u.id::text = o.user_id
		LEFT JOIN cleaning_services s ON s.id::text = o.service_id
		WHERE o.id = ?
	`, orderID).Scan(&row).Error
	if err != nil {
		log.Printf("[admin.order.details] ERROR query id=%s err=%v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load order"))
		return
	}
	if row.OrderNumber == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved", row))
}
