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

// Register godoc
// @Summary Register a new customer
// @Description Create a customer account with email and password. Returns a JWT and sets it as an HTTP-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	log.Printf("[auth.register] request")

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Reject duplicate emails up front for a friendlier error
	var existing models.User
	err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email is already registered"))
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("[auth.register] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	passwordHash, err := services.GetAdminAuthService().HashPassword(req.Password)
	if err != nil {
		log.Printf("[auth.register] password hashing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Phone:        req.Phone,
		Status:       "active",
	}
	if err := config.Gorm.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("[auth.register] failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.register] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	setAuthCookie(c, token)

	log.Printf("[auth.register] success: %s (%s)", user.Email, user.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
