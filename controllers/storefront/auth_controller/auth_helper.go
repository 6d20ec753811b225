package auth_controller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// setAuthCookie stores the customer JWT in an HTTP-only cookie.
// Name, path and flags must match what Logout clears.
func setAuthCookie(c *gin.Context, token string) {
	isProd := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		token,
		24*60*60,
		"/",
		"",
		isProd,
		true,
	)
}
