package service_controller

import (
	"log"
	"net/http"

	service_cache "github.com/FreshPress-Cleaning/freshpress-backend/cache"
	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateService godoc
// @Summary Create a cleaning service (CMS)
// @Description Adds a new catalog item. New services are active immediately.
// @Tags Admin - Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateServiceRequest true "Service details"
// @Success 201 {object} models.ApiResponse{data=models.CleaningService}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/services [post]
func CreateService(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	svc := models.CleaningService{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		TurnaroundHours: req.TurnaroundHours,
		IsActive:        true,
	}
	if svc.TurnaroundHours == 0 {
		svc.TurnaroundHours = 48
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Create(&svc).Error; err != nil {
		log.Printf("[admin.service.create] ERROR create err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create service"))
		return
	}

	service_cache.Invalidate()

	log.Printf("[admin.service.create] respond 201 id=%s name=%q", svc.ID, svc.Name)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Service created successfully", svc))
}
