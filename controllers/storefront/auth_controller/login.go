package auth_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/FreshPress-Cleaning/freshpress-backend/services"
	"github.com/FreshPress-Cleaning/freshpress-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Login as customer
// @Description Authenticate a customer with email and password. Returns a JWT and sets it as an HTTP-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account not active"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	log.Printf("[auth.login] attempt")

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[auth.login] user not found: %s", req.Email)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		} else {
			log.Printf("[auth.login] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	if user.Status != "active" {
		log.Printf("[auth.login] inactive account attempt: %s", req.Email)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is not active"))
		return
	}

	if !services.GetAdminAuthService().VerifyPassword(user.PasswordHash, req.Password) {
		log.Printf("[auth.login] invalid password: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	setAuthCookie(c, token)

	// Best-effort device tracking, never blocks the login
	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("⚠️ [auth.login] failed to record login event: %v", err)
	}

	log.Printf("[auth.login] success: %s (%s)", user.Email, user.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
