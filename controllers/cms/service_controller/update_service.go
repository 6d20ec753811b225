package service_controller

import (
	"log"
	"net/http"

	service_cache "github.com/FreshPress-Cleaning/freshpress-backend/cache"
	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateService godoc
// @Summary Update a cleaning service (CMS)
// @Description Partially updates a catalog item. Changing the price never rewrites historical orders; they keep their snapshots.
// @Tags Admin - Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param body body models.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.CleaningService}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/services/{id} [patch]
func UpdateService(c *gin.Context) {
	serviceID := c.Param("id")
	if _, err := uuid.Parse(serviceID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid service ID"))
		return
	}

	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var svc models.CleaningService
	if err := config.Gorm.WithContext(ctx).Where("id = ?", serviceID).First(&svc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Service not found"))
			return
		}
		log.Printf("[admin.service.update] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update service"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.TurnaroundHours != nil {
		updates["turnaround_hours"] = *req.TurnaroundHours
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Model(&svc).Updates(updates).Error; err != nil {
		log.Printf("[admin.service.update] ERROR update err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update service"))
		return
	}

	service_cache.Invalidate()

	log.Printf("[admin.service.update] respond 200 id=%s", serviceID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Service updated successfully", svc))
}
