// ════════════════════════════════════════════════════════════
// Path: controllers/storefront/profile_controller/update_profile.go
// Update authenticated customer's profile
// ════════════════════════════════════════════════════════════

package profile_controller

import (
	"net/http"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/middleware"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateProfile godoc
// @Summary Update customer profile
// @Description Update authenticated customer's profile (name, phone)
// @Tags User - Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Update request"
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /user/profile [patch]
func UpdateProfile(c *gin.Context) {
	// Get user ID from JWT
	userIDStr, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Find user
	var user models.User
	if err := config.Gorm.WithContext(ctx).
		Where("id = ? AND status = ?", userID, "active").
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}

	// Build update map with only provided fields
	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	// Perform update (GORM will automatically update updated_at)
	if err := config.Gorm.WithContext(ctx).
		Model(&user).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated", user.ToResponse()))
}
