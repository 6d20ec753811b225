package utils

import (
	"log"
	"strings"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LogLoginEvent records a customer login to the login_events table.
// Uses the raw pgx pool, this runs on every login and needs no ORM.
func LogLoginEvent(c *gin.Context, userID uuid.UUID) error {
	ctx := c.Request.Context()

	ipAddress := c.ClientIP()
	userAgent := c.GetHeader("User-Agent")
	deviceType := parseDeviceType(userAgent)

	query := `
		INSERT INTO login_events (
			id, user_id, logged_in_at, ip_address, user_agent, device_type
		) VALUES ($1, $2, NOW(), $3, $4, $5)
	`

	_, err := config.DB.Exec(ctx, query,
		uuid.New().String(),
		userID.String(),
		ipAddress,
		userAgent,
		deviceType,
	)
	if err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return err
	}

	log.Printf("✅ Login event logged for user: %s from IP: %s", userID.String(), ipAddress)
	return nil
}

// parseDeviceType determines if the request is from mobile, tablet, or desktop
func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "mobile") ||
		strings.Contains(ua, "android") ||
		strings.Contains(ua, "iphone") ||
		strings.Contains(ua, "ipod") {
		return "mobile"
	}

	if strings.Contains(ua, "ipad") ||
		strings.Contains(ua, "tablet") ||
		strings.Contains(ua, "kindle") {
		return "tablet"
	}

	return "desktop"
}
