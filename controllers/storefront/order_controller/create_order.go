package order_controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// parsePickupDate accepts RFC 3339 or a bare YYYY-MM-DD date.
func parsePickupDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// CreateOrder godoc
// @Summary Create new order (checkout)
// @Description Book a cleaning service pickup for the authenticated customer
// @Tags User - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.CreateOrderRequest true "Order details"
// @Success 201 {object} models.ApiResponse{data=object{order_id=string,order_number=string}} "Order created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Service or address not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/orders [post]
func CreateOrder(c *gin.Context) {
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

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid service ID"))
		return
	}

	addressID, err := uuid.Parse(req.AddressID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address ID"))
		return
	}

	pickupDate, err := parsePickupDate(req.PickupDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid pickup date"))
		return
	}
	if pickupDate.Before(time.Now().Truncate(24 * time.Hour)) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Pickup date cannot be in the past"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Verify the service is bookable
	var service models.CleaningService
	if err := config.Gorm.WithContext(ctx).
		Where("id = ? AND is_active = ?", serviceID, true).
		First(&service).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Service not found"))
		return
	}

	// Verify address ownership
	var address models.Address
	if err := config.Gorm.WithContext(ctx).
		Where("id = ? AND status = ?", addressID, "active").
		First(&address).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Address not found"))
		return
	}
	if address.UserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Invalid address"))
		return
	}

	var orderID uuid.UUID
	var orderNumber string
	totalPrice := service.Price * float64(req.Quantity)

	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Address snapshot keeps the order intact if the address changes later
		addressSnapshot := map[string]interface{}{
			"label":   address.Label,
			"street":  address.Street,
			"city":    address.City,
			"state":   address.State,
			"zip":     address.Zip,
			"country": address.Country,
			"phone":   address.Phone,
		}
		addressJSON, _ := json.Marshal(addressSnapshot)

		// Create order using raw SQL (to get order_number from trigger)
		orderID = uuid.Must(uuid.NewV7())

		if err := tx.Exec(`
    INSERT INTO orders
    (id, user_id, service_id, order_number, quantity, unit_price, total_price,
     status, pickup_date, address_snapshot, customer_notes, created_at, updated_at)
    VALUES (?, ?, ?, '', ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
			orderID.String(),
			userID.String(),
			serviceID.String(),
			req.Quantity,
			service.Price,
			totalPrice,
			models.OrderStatusPending,
			pickupDate,
			addressJSON,
			req.CustomerNotes,
		).Error; err != nil {
			log.Printf("❌ Failed to create order: %v", err)
			return fmt.Errorf("failed to create order")
		}

		// Get generated order number
		if err := tx.Raw(`SELECT order_number FROM orders WHERE id = ?`, orderID.String()).Scan(&orderNumber).Error; err != nil {
			log.Printf("❌ Failed to fetch order number: %v", err)
			return fmt.Errorf("failed to create order")
		}

		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, err.Error()))
		return
	}

	log.Printf("✅ Order created: %s (%s) for user: %s - Total: $%.2f",
		orderNumber, orderID, userID, totalPrice)

	c.JSON(http.StatusCreated, models.SuccessResponse(
		c,
		"Order created successfully",
		gin.H{
			"order_id":     orderID.String(),
			"order_number": orderNumber,
			"total_price":  totalPrice,
		},
	))
}
