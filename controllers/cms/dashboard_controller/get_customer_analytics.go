package dashboard_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/FreshPress-Cleaning/freshpress-backend/analytics"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCustomerAnalytics godoc
// @Summary Get paginated per-customer analytics
// @Description Returns one page of the per-customer analytics table (order count, total spent, last order) computed under the same filters as the dashboard.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param status query string false "Order status filter" Enums(all,pending,in_progress,completed,cancelled) default(all)
// @Param q query string false "Free-text search"
// @Param granularity query string false "Revenue bucket width" Enums(weekly,monthly,yearly) default(monthly)
// @Success 200 {object} models.ApiResponse{data=[]analytics.UserAnalytics,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/dashboard/customers [get]
func GetCustomerAnalytics(c *gin.Context) {
	log.Printf("[admin.dashboard.customers] start rawQuery=%s", c.Request.URL.RawQuery)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	params := paramsFromQuery(c)

	orders, users, services, ok := loadCollections(c)
	if !ok {
		return
	}

	stats, err := analytics.Compute(orders, users, services, params)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidGranularity) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown granularity: use weekly, monthly or yearly"))
			return
		}
		log.Printf("[admin.dashboard.customers] ERROR compute err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute customer analytics"))
		return
	}
	if stats == nil {
		c.JSON(http.StatusOK, models.PaginatedResponse(c, "No customer data yet", []analytics.UserAnalytics{}, &models.Pagination{
			Page: 1, Limit: analytics.UserPageSize,
		}))
		return
	}

	// PageUsers expects a clamped page; the clamp lives here by contract
	_, totalPages := analytics.PageUsers(stats.UserAnalytics, 1)
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	rows, _ := analytics.PageUsers(stats.UserAnalytics, page)

	meta := &models.Pagination{
		Page:       page,
		Limit:      analytics.UserPageSize,
		Total:      len(stats.UserAnalytics),
		TotalPages: totalPages,
	}

	log.Printf("[admin.dashboard.customers] respond 200 page=%d/%d rows=%d", page, totalPages, len(rows))

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customer analytics retrieved successfully", rows, meta))
}
