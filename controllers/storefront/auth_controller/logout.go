package auth_controller

import (
	"net/http"
	"os"

	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Logout customer
// @Description Logs out the authenticated customer by clearing the auth_token cookie.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"
	// delete auth_token (must match name, path, domain, secure, httpOnly)
	c.SetCookie(
		"auth_token",
		"",
		-1, // MaxAge < 0 -> delete
		"/",
		"",
		isProd,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
