package dashboard_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/FreshPress-Cleaning/freshpress-backend/analytics"
	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
)

// loadCollections pulls the three raw tables in bulk. The dashboard
// aggregates in memory over the full data set, so the queries stay
// unfiltered on purpose; filters are applied by the analytics engine.
func loadCollections(c *gin.Context) (orders []models.Order, users []models.User, services []models.CleaningService, ok bool) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Order("created_at ASC").Find(&orders).Error; err != nil {
		log.Printf("[admin.dashboard] ERROR fetch orders err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard data"))
		return nil, nil, nil, false
	}
	if err := config.Gorm.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		log.Printf("[admin.dashboard] ERROR fetch users err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard data"))
		return nil, nil, nil, false
	}
	if err := config.Gorm.WithContext(ctx).Order("created_at ASC").Find(&services).Error; err != nil {
		log.Printf("[admin.dashboard] ERROR fetch services err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard data"))
		return nil, nil, nil, false
	}
	return orders, users, services, true
}

// paramsFromQuery maps the request's query string onto engine parameters.
func paramsFromQuery(c *gin.Context) analytics.Params {
	status := strings.TrimSpace(strings.ToLower(c.DefaultQuery("status", "all")))
	granularity := strings.TrimSpace(strings.ToLower(c.DefaultQuery("granularity", "monthly")))
	return analytics.Params{
		Status:      status,
		Search:      strings.TrimSpace(c.Query("q")),
		Granularity: granularity,
	}
}

// GetDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Returns the full dashboard view model: totals, status distribution, revenue by period, per-service and per-customer aggregates, top rankings and recent orders. Recomputed from scratch on every call.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status filter" Enums(all,pending,in_progress,completed,cancelled) default(all)
// @Param q query string false "Free-text search over order number, customer, service, status"
// @Param granularity query string false "Revenue bucket width" Enums(weekly,monthly,yearly) default(monthly)
// @Success 200 {object} models.ApiResponse{data=analytics.DashboardStats}
// @Failure 400 {object} models.ApiResponse "Unknown granularity"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	log.Printf("[admin.dashboard] start rawQuery=%s", c.Request.URL.RawQuery)

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
		log.Printf("[admin.dashboard] ERROR compute err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute dashboard stats"))
		return
	}
	if stats == nil {
		// No data yet: not an error, the dashboard shows its empty state
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No dashboard data yet", nil))
		return
	}

	log.Printf("[admin.dashboard] respond 200 orders=%d revenue=%.2f buckets=%d",
		stats.TotalOrders, stats.TotalRevenue, len(stats.RevenueByPeriod))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats retrieved successfully", stats))
}
