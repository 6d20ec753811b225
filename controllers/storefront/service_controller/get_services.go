package service_controller

import (
	"log"
	"net/http"

	service_cache "github.com/FreshPress-Cleaning/freshpress-backend/cache"
	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
)

// GetServices godoc
// @Summary List cleaning services
// @Description Returns the active cleaning service catalog shown on the storefront
// @Tags Services
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CleaningService}
// @Failure 500 {object} models.ApiResponse
// @Router /services [get]
func GetServices(c *gin.Context) {
	if cached, ok := service_cache.GetActive(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Services retrieved", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var catalog []models.CleaningService
	if err := config.Gorm.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&catalog).Error; err != nil {
		log.Printf("[storefront.services] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load services"))
		return
	}

	service_cache.SetActive(catalog)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Services retrieved", catalog))
}
