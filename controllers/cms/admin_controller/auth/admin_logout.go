package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Clear the admin auth cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	if adminID, exists := c.Get("adminID"); exists {
		log.Printf("[admin.logout] admin logging out: %s", adminID)
	}

	// ✅ CLEAR TOKEN COOKIE
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
