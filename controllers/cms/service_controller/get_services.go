package service_controller

import (
	"log"
	"net/http"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
)

// GetServices godoc
// @Summary Get all cleaning services (CMS)
// @Description Returns the full catalog, active and inactive, newest first.
// @Tags Admin - Services
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.CleaningService}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/services [get]
func GetServices(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var services []models.CleaningService
	if err := config.Gorm.WithContext(ctx).
		Order("created_at DESC").
		Find(&services).Error; err != nil {
		log.Printf("[admin.service.list] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch services"))
		return
	}

	log.Printf("[admin.service.list] respond 200 services=%d", len(services))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Services retrieved successfully", services))
}
