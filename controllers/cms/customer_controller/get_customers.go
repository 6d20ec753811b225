package customer_controller

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

// GetCustomers godoc
// @Summary Get customers (CMS)
// @Description Fetch customers for the CMS table view, with completed-order counts and lifetime spend.
// @Tags Admin - Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param q query string false "Search by name or email"
// @Param status query string false "Filter by status" Enums(active,suspended,deleted)
// @Success 200 {object} models.ApiResponse{data=[]models.CMSCustomerListRow,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/customers [get]
func GetCustomers(c *gin.Context) {
	log.Printf("[admin.customers] start rawQuery=%s", c.Request.URL.RawQuery)

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

	db := config.Gorm.WithContext(ctx).Table("users u")

	if q != "" {
		db = db.Where("u.name ILIKE ? OR u.email ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	if status != "" {
		switch status {
		case "active", "suspended", "deleted":
			db = db.Where("LOWER(u.status) = ?", status)
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
		log.Printf("[admin.customers] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	// ================================
	// Data query with completed-order summary
	// ================================
	var rows []models.CMSCustomerListRow
	if err := db.
		Select(`
			u.id::text AS id,
			u.name,
			u.email,
			u.phone,
			COALESCE(os.order_count, 0)::int AS orders,
			COALESCE(os.total_spent, 0)::float8 AS total_spent,
			os.last_order_at,
			u.status,
			u.created_at AS join_date
		`).
		Joins(`LEFT JOIN (
			SELECT
				user_id,
				COUNT(id)::int AS order_count,
				COALESCE(SUM(total_price), 0)::float8 AS total_spent,
				MAX(created_at) AS last_order_at
			FROM orders
			WHERE status = 'completed'
			GROUP BY user_id
		) os ON os.user_id = u.id::text`).
		Order("u.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[admin.customers] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	log.Printf("[admin.customers] respond 200 rows=%d total=%d", len(rows), total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customers retrieved successfully", rows, meta))
}
