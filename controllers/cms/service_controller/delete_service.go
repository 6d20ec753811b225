package service_controller

import (
	"log"
	"net/http"

	service_cache "github.com/FreshPress-Cleaning/freshpress-backend/cache"
	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteService godoc
// @Summary Deactivate a cleaning service (CMS)
// @Description Soft delete: the service is hidden from the storefront but retained so historical orders still resolve.
// @Tags Admin - Services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/services/{id} [delete]
func DeleteService(c *gin.Context) {
	serviceID := c.Param("id")
	if _, err := uuid.Parse(serviceID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid service ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.Gorm.WithContext(ctx).
		Model(&models.CleaningService{}).
		Where("id = ?", serviceID).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("[admin.service.delete] ERROR update err=%v", res.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to deactivate service"))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Service not found"))
		return
	}

	service_cache.Invalidate()

	log.Printf("[admin.service.delete] respond 200 id=%s", serviceID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Service deactivated successfully", nil))
}
