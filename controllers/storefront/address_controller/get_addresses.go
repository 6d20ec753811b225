package address_controller

import (
	"log"
	"net/http"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAddresses godoc
// @Summary Get user addresses
// @Description Retrieve all active pickup addresses for the authenticated customer
// @Tags User - Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Address}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/addresses [get]
func GetAddresses(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var addresses []models.Address
	if err := config.Gorm.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "active").
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		log.Printf("❌ Failed to fetch addresses: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch addresses"))
		return
	}

	log.Printf("✅ Fetched %d addresses for user: %s", len(addresses), userID)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Addresses retrieved successfully",
		addresses,
	))
}
