package order_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary Get orders (CMS)
// @Description Fetch orders for the CMS table view with customer and service resolved, newest first.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param q query string false "Search by order number, customer name or email"
// @Param status query string false "Filter by status" Enums(pending,in_progress,completed,cancelled)
// @Success 200 {object} models.ApiResponse{data=[]models.CMSOrderListRow,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	log.Printf("[admin.orders] start rawQuery=%s", c.Request.URL.RawQuery)

	// ================================
	// Pagination
	// ================================
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	// ================================
	// Filters
	// ================================
	q := strings.TrimSpace(c.Query("q"))
	status := strings.TrimSpace(strings.ToLower(c.Query("status")))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).
		Table("orders o").
		Joins("LEFT JOIN users u ON u.id::text = o.user_id").
		Joins("LEFT JOIN cleaning_services s ON s.id::text = o.service_id")

	if q != "" {
		like := "%" + q + "%"
		db = db.Where("o.order_number ILIKE ? OR u.name ILIKE ? OR u.email ILIKE ?", like, like, like)
	}

	if status != "" {
		switch status {
		case models.OrderStatusPending, models.OrderStatusInProgress,
			models.OrderStatusCompleted, models.OrderStatusCancelled:
			db = db.Where("o.status = ?", status)
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status"))
			return
		}
	}

	// ================================
	// Count
	// ================================
	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.orders] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	// ================================
	// Data
	// ================================
	var rows []models.CMSOrderListRow
	if err := db.
		Select(`
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
			o.created_at
		`).
		Order("o.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[admin.orders] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	log.Printf("[admin.orders] respond 200 rows=%d total=%d", len(rows), total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", rows, meta))
}
