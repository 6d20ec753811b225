package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order statuses form the lifecycle pending → in_progress → completed,
// with cancelled as a terminal branch from any non-completed state.
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// Order is a customer's request for one cleaning service.
// UnitPrice and TotalPrice are snapshots taken at checkout; the referenced
// service's current price may drift afterwards and TotalPrice stays
// authoritative.
type Order struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	ServiceID       string         `json:"service_id"`
	OrderNumber     string         `json:"order_number"`
	Quantity        int            `json:"quantity"`
	UnitPrice       float64        `json:"unit_price"`
	TotalPrice      float64        `json:"total_price"`
	Status          string         `json:"status"`
	PickupDate      time.Time      `json:"pickup_date"`
	AddressSnapshot datatypes.JSON `json:"address_snapshot,omitempty"`
	CustomerNotes   *string        `json:"customer_notes,omitempty"`
	AdminNotes      *string        `json:"admin_notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	CancelledAt     *time.Time     `json:"cancelled_at,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// CreateOrderRequest for checkout
type CreateOrderRequest struct {
	ServiceID     string  `json:"service_id" binding:"required"`
	AddressID     string  `json:"address_id" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	PickupDate    string  `json:"pickup_date" binding:"required"` // RFC 3339 or YYYY-MM-DD
	CustomerNotes *string `json:"customer_notes,omitempty"`
}

// OrderHistoryResponse for the customer's order list view
type OrderHistoryResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	ServiceName string    `json:"service_name"`
	Quantity    int       `json:"quantity"`
	TotalPrice  float64   `json:"total_price"`
	Status      string    `json:"status"`
	PickupDate  time.Time `json:"pickup_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// CMSOrderListRow is one row in the admin orders table
type CMSOrderListRow struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CustomerID    string    `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ServiceName   string    `json:"service_name"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	PickupDate    time.Time `json:"pickup_date"`
	CreatedAt     time.Time `json:"created_at"`
}

type UpdateOrderStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
	AdminNotes *string `json:"admin_notes,omitempty"` // required if status=cancelled
}

type UpdateOrderStatusResponse struct {
	ID          string  `json:"id"`
	OrderNumber string  `json:"order_number"`
	Status      string  `json:"status"`
	AdminNotes  *string `json:"admin_notes,omitempty"`
}

type OrderStatsBreakdown struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type OrderStatsResponse struct {
	TotalOrders                int                 `json:"total_orders"`
	ChangePercentFromLastMonth *float64            `json:"change_percent_from_last_month,omitempty"`
	CurrentMonthTotal          int                 `json:"current_month_total"`
	LastMonthTotal             int                 `json:"last_month_total"`
	Pending                    OrderStatsBreakdown `json:"pending"`
	InProgress                 OrderStatsBreakdown `json:"in_progress"`
	Completed                  OrderStatsBreakdown `json:"completed"`
	Cancelled                  OrderStatsBreakdown `json:"cancelled"`
}
