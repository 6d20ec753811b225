package analytics

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/FreshPress-Cleaning/freshpress-backend/models"
)

// Granularity values accepted by Params.Granularity.
const (
	GranularityWeekly  = "weekly"
	GranularityMonthly = "monthly"
	GranularityYearly  = "yearly"
)

const (
	topServicesLimit  = 5
	topUsersLimit     = 5
	recentOrdersLimit = 10
)

// ErrInvalidGranularity is returned when Params.Granularity is not one of
// weekly, monthly or yearly. The engine never falls back to a default.
var ErrInvalidGranularity = errors.New("analytics: unrecognized granularity")

// Params selects and shapes the dashboard aggregation.
type Params struct {
	Status      string    // "all" or one exact order status
	Search      string    // case-insensitive substring, may be empty
	Granularity string    // weekly | monthly | yearly
	Now         time.Time // pins the current week for weekly buckets; zero means time.Now()
}

// RevenuePoint is one bucket of completed-order revenue.
type RevenuePoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

// ServiceStats aggregates the filtered orders of one catalog service.
type ServiceStats struct {
	ServiceID      string  `json:"service_id"`
	ServiceName    string  `json:"service_name"`
	OrderCount     int     `json:"order_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	PendingCount   int     `json:"pending_count"`
	CompletedCount int     `json:"completed_count"`
}

// UserAnalytics aggregates the filtered orders of one customer.
type UserAnalytics struct {
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	OrderCount  int        `json:"order_count"`
	TotalSpent  float64    `json:"total_spent"`
	LastOrderAt *time.Time `json:"last_order_at,omitempty"`
}

// OrderSummary is a display row for the recent-orders panel. Names are
// resolved by joining on the raw collections; a missing user or service
// resolves to an empty string, never an error.
type OrderSummary struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	ServiceName  string    `json:"service_name"`
	Status       string    `json:"status"`
	Quantity     int       `json:"quantity"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// DashboardStats is the derived view model behind the admin dashboard.
// It is rebuilt wholesale on every parameter change and never persisted.
type DashboardStats struct {
	TotalOrders        int             `json:"total_orders"`
	TotalUsers         int             `json:"total_users"`
	TotalServices      int             `json:"total_services"`
	TotalRevenue       float64         `json:"total_revenue"`
	AvgOrderValue      float64         `json:"avg_order_value"`
	ConversionRate     float64         `json:"conversion_rate"`
	StatusDistribution map[string]int  `json:"status_distribution"`
	RevenueByPeriod    []RevenuePoint  `json:"revenue_by_period"`
	ServiceStats       []ServiceStats  `json:"service_stats"`
	UserAnalytics      []UserAnalytics `json:"user_analytics"`
	TopServices        []ServiceStats  `json:"top_services"`
	TopUsers           []UserAnalytics `json:"top_users"`
	RecentOrders       []OrderSummary  `json:"recent_orders"`
}

// Compute builds the dashboard view model from the three raw collections.
//
// It is a pure function: no I/O, no hidden state, inputs are never mutated.
// A nil result with a nil error means one of the collections was empty and
// the caller should render its "no data yet" state; that is distinct from
// a populated result whose filters matched nothing.
func Compute(orders []models.Order, users []models.User, services []models.CleaningService, params Params) (*DashboardStats, error) {
	switch params.Granularity {
	case GranularityWeekly, GranularityMonthly, GranularityYearly:
	default:
		return nil, ErrInvalidGranularity
	}

	if len(orders) == 0 || len(users) == 0 || len(services) == 0 {
		return nil, nil
	}

	userByID := make(map[string]*models.User, len(users))
	for i := range users {
		userByID[users[i].ID.String()] = &users[i]
	}
	serviceByID := make(map[string]*models.CleaningService, len(services))
	for i := range services {
		serviceByID[services[i].ID.String()] = &services[i]
	}

	userName := func(id string) string {
		if u, ok := userByID[id]; ok {
			return u.Name
		}
		return ""
	}
	serviceName := func(id string) string {
		if s, ok := serviceByID[id]; ok {
			return s.Name
		}
		return ""
	}

	// ================================
	// Filtering: status first, then free-text search over order id,
	// resolved customer name, resolved service name and status.
	// ================================
	query := strings.ToLower(strings.TrimSpace(params.Search))
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if params.Status != "all" && o.Status != params.Status {
			continue
		}
		if query != "" && !matchesQuery(o, query, userName(o.UserID), serviceName(o.ServiceID)) {
			continue
		}
		filtered = append(filtered, o)
	}

	// ================================
	// Single pass: status distribution plus per-service / per-user folds.
	// Every service and user is represented, zero rows included.
	// ================================
	statusDist := make(map[string]int, len(models.OrderStatuses))
	for _, s := range models.OrderStatuses {
		statusDist[s] = 0
	}

	svcStats := make([]ServiceStats, len(services))
	svcIdx := make(map[string]int, len(services))
	for i, s := range services {
		id := s.ID.String()
		svcStats[i] = ServiceStats{ServiceID: id, ServiceName: s.Name}
		svcIdx[id] = i
	}

	usrStats := make([]UserAnalytics, len(users))
	usrIdx := make(map[string]int, len(users))
	for i, u := range users {
		id := u.ID.String()
		usrStats[i] = UserAnalytics{UserID: id, Name: u.Name, Email: u.Email}
		usrIdx[id] = i
	}

	var totalRevenue, totalValue float64
	for _, o := range filtered {
		statusDist[o.Status]++
		totalValue += o.TotalPrice
		if o.Status == models.OrderStatusCompleted {
			totalRevenue += o.TotalPrice
		}

		if i, ok := svcIdx[o.ServiceID]; ok {
			svcStats[i].OrderCount++
			svcStats[i].TotalRevenue += o.TotalPrice
			switch o.Status {
			case models.OrderStatusPending:
				svcStats[i].PendingCount++
			case models.OrderStatusCompleted:
				svcStats[i].CompletedCount++
			}
		}

		if i, ok := usrIdx[o.UserID]; ok {
			usrStats[i].OrderCount++
			usrStats[i].TotalSpent += o.TotalPrice
			if usrStats[i].LastOrderAt == nil || o.CreatedAt.After(*usrStats[i].LastOrderAt) {
				t := o.CreatedAt
				usrStats[i].LastOrderAt = &t
			}
		}
	}

	// ================================
	// Rankings: stable sorts over copies so ties keep input order and the
	// unranked slices stay in their natural order.
	// ================================
	topServices := append([]ServiceStats(nil), svcStats...)
	sort.SliceStable(topServices, func(a, b int) bool {
		return topServices[a].OrderCount > topServices[b].OrderCount
	})
	if len(topServices) > topServicesLimit {
		topServices = topServices[:topServicesLimit]
	}

	topUsers := append([]UserAnalytics(nil), usrStats...)
	sort.SliceStable(topUsers, func(a, b int) bool {
		return topUsers[a].TotalSpent > topUsers[b].TotalSpent
	})
	if len(topUsers) > topUsersLimit {
		topUsers = topUsers[:topUsersLimit]
	}

	recent := append([]models.Order(nil), filtered...)
	sort.SliceStable(recent, func(a, b int) bool {
		return recent[a].CreatedAt.After(recent[b].CreatedAt)
	})
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	recentOrders := make([]OrderSummary, len(recent))
	for i, o := range recent {
		recentOrders[i] = OrderSummary{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: userName(o.UserID),
			ServiceName:  serviceName(o.ServiceID),
			Status:       o.Status,
			Quantity:     o.Quantity,
			TotalPrice:   o.TotalPrice,
			CreatedAt:    o.CreatedAt,
		}
	}

	// ================================
	// Scalars
	// ================================
	avgOrderValue := 0.0
	if len(filtered) > 0 {
		avgOrderValue = totalValue / float64(len(filtered))
	}
	conversionRate := 0.0
	if len(users) > 0 {
		conversionRate = float64(len(filtered)) / float64(len(users)) * 100
	}

	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	return &DashboardStats{
		TotalOrders:        len(filtered),
		TotalUsers:         len(users),
		TotalServices:      len(services),
		TotalRevenue:       totalRevenue,
		AvgOrderValue:      avgOrderValue,
		ConversionRate:     conversionRate,
		StatusDistribution: statusDist,
		RevenueByPeriod:    bucketRevenue(filtered, params.Granularity, now),
		ServiceStats:       svcStats,
		UserAnalytics:      usrStats,
		TopServices:        topServices,
		TopUsers:           topUsers,
		RecentOrders:       recentOrders,
	}, nil
}

// matchesQuery reports whether one order matches the lowercased search
// term. Unresolved joins arrive as empty strings and simply never match.
func matchesQuery(o models.Order, query, customerName, svcName string) bool {
	return strings.Contains(strings.ToLower(o.ID), query) ||
		strings.Contains(strings.ToLower(o.OrderNumber), query) ||
		strings.Contains(strings.ToLower(customerName), query) ||
		strings.Contains(strings.ToLower(svcName), query) ||
		strings.Contains(o.Status, query)
}
