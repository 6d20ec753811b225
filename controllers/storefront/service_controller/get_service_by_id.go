package service_controller

import (
	"log"
	"net/http"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetServiceByID godoc
// @Summary Get a single cleaning service
// @Description Returns one active cleaning service by ID
// @Tags Services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} models.ApiResponse{data=models.CleaningService}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /services/{id} [get]
func GetServiceByID(c *gin.Context) {
	serviceID := c.Param("id")
	if _, err := uuid.Parse(serviceID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid service ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var service models.CleaningService
	if err := config.Gorm.WithContext(ctx).
		Where("id = ? AND is_active = ?", serviceID, true).
		First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Service not found"))
			return
		}
		log.Printf("[storefront.services] ERROR query id=%s err=%v", serviceID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load service"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Service retrieved", service))
}
