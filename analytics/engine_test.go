package analytics

import (
	"testing"
	"time"

	"github.com/FreshPress-Cleaning/freshpress-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkOrder(id, userID, serviceID, status string, qty int, total float64, created string) models.Order {
	t, err := time.Parse("2006-01-02", created)
	if err != nil {
		panic(err)
	}
	return models.Order{
		ID:          id,
		UserID:      userID,
		ServiceID:   serviceID,
		OrderNumber: "FP-" + id,
		Status:      status,
		Quantity:    qty,
		UnitPrice:   total / float64(qty),
		TotalPrice:  total,
		PickupDate:  t.AddDate(0, 0, 2),
		CreatedAt:   t,
	}
}

func mkUser(name, email string) models.User {
	return models.User{ID: uuid.Must(uuid.NewV7()), Name: name, Email: email, Status: "active"}
}

func mkService(name string, price float64) models.CleaningService {
	return models.CleaningService{ID: uuid.Must(uuid.NewV7()), Name: name, Price: price, IsActive: true}
}

// fixture returns the canonical two-order data set: one completed order of
// 40.00 and one pending order of 15.00, both placed by the same customer.
func fixture() ([]models.Order, []models.User, []models.CleaningService) {
	u1 := mkUser("Amir", "amir@example.com")
	s1 := mkService("Dry Cleaning", 20)
	s2 := mkService("Ironing", 15)

	orders := []models.Order{
		mkOrder("o1", u1.ID.String(), s1.ID.String(), models.OrderStatusCompleted, 2, 40, "2024-01-10"),
		mkOrder("o2", u1.ID.String(), s2.ID.String(), models.OrderStatusPending, 1, 15, "2024-02-05"),
	}
	return orders, []models.User{u1}, []models.CleaningService{s1, s2}
}

func allParams() Params {
	return Params{Status: "all", Granularity: GranularityMonthly, Now: time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)}
}

func TestCompute_UnfilteredAggregates(t *testing.T) {
	orders, users, services := fixture()

	stats, err := Compute(orders, users, services, allParams())
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalServices)
	assert.Equal(t, 40.0, stats.TotalRevenue)
	assert.Equal(t, 27.5, stats.AvgOrderValue)
	assert.Equal(t, 200.0, stats.ConversionRate) // 2 orders / 1 user * 100

	assert.Equal(t, map[string]int{
		models.OrderStatusPending:    1,
		models.OrderStatusInProgress: 0,
		models.OrderStatusCompleted:  1,
		models.OrderStatusCancelled:  0,
	}, stats.StatusDistribution)
}

// The status distribution must always carry the four canonical keys and
// sum to the filtered order count, whatever the filter.
func TestCompute_StatusDistributionInvariants(t *testing.T) {
	orders, users, services := fixture()

	for _, status := range append([]string{"all"}, models.OrderStatuses...) {
		p := allParams()
		p.Status = status
		stats, err := Compute(orders, users, services, p)
		require.NoError(t, err)
		require.NotNil(t, stats)

		assert.Len(t, stats.StatusDistribution, 4, "status=%s", status)
		sum := 0
		for _, n := range stats.StatusDistribution {
			sum += n
		}
		assert.Equal(t, stats.TotalOrders, sum, "status=%s", status)
	}
}

func TestCompute_StatusFilter(t *testing.T) {
	orders, users, services := fixture()

	p := allParams()
	p.Status = models.OrderStatusCompleted
	stats, err := Compute(orders, users, services, p)
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 40.0, stats.TotalRevenue)
	require.Len(t, stats.RecentOrders, 1)
	assert.Equal(t, "o1", stats.RecentOrders[0].ID)
}

// Narrowing the status filter and widening it back must reproduce the
// original unfiltered aggregate exactly.
func TestCompute_FilterRoundTrip(t *testing.T) {
	orders, users, services := fixture()

	before, err := Compute(orders, users, services, allParams())
	require.NoError(t, err)

	narrowed := allParams()
	narrowed.Status = models.OrderStatusPending
	_, err = Compute(orders, users, services, narrowed)
	require.NoError(t, err)

	after, err := Compute(orders, users, services, allParams())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCompute_SearchMatchesResolvedNames(t *testing.T) {
	orders, users, services := fixture()

	t.Run("customer name matches case-insensitively", func(t *testing.T) {
		for _, q := range []string{"amir", "AMIR", "Ami"} {
			p := allParams()
			p.Search = q
			stats, err := Compute(orders, users, services, p)
			require.NoError(t, err)
			require.NotNil(t, stats)
			assert.Equal(t, 2, stats.TotalOrders, "query=%q", q)
		}
	})

	t.Run("service name matches only its orders", func(t *testing.T) {
		p := allParams()
		p.Search = "ironing"
		stats, err := Compute(orders, users, services, p)
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 1, stats.TotalOrders)
		require.Len(t, stats.RecentOrders, 1)
		assert.Equal(t, "o2", stats.RecentOrders[0].ID)
	})

	t.Run("status string matches", func(t *testing.T) {
		p := allParams()
		p.Search = "pending"
		stats, err := Compute(orders, users, services, p)
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 1, stats.TotalOrders)
	})
}

// An order pointing at a deleted service still shows up everywhere, with
// an empty resolved service name instead of being dropped.
func TestCompute_MissingServiceReference(t *testing.T) {
	orders, users, services := fixture()
	orders = append(orders, mkOrder("o3", orders[0].UserID, uuid.NewString(), models.OrderStatusCompleted, 1, 25, "2024-03-01"))

	stats, err := Compute(orders, users, services, allParams())
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 3, stats.TotalOrders)
	require.Len(t, stats.RecentOrders, 3)
	assert.Equal(t, "o3", stats.RecentOrders[0].ID) // newest first
	assert.Empty(t, stats.RecentOrders[0].ServiceName)
}

func TestCompute_InvalidGranularity(t *testing.T) {
	orders, users, services := fixture()

	for _, g := range []string{"", "daily", "Monthly", "hourly"} {
		p := allParams()
		p.Granularity = g
		stats, err := Compute(orders, users, services, p)
		assert.ErrorIs(t, err, ErrInvalidGranularity, "granularity=%q", g)
		assert.Nil(t, stats)
	}
}

// Empty collections are not an error: the caller gets a nil model and
// renders its loading/empty state.
func TestCompute_EmptyInputs(t *testing.T) {
	orders, users, services := fixture()

	cases := []struct {
		name     string
		orders   []models.Order
		users    []models.User
		services []models.CleaningService
	}{
		{"no orders", nil, users, services},
		{"no users", orders, nil, services},
		{"no services", orders, users, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stats, err := Compute(tc.orders, tc.users, tc.services, allParams())
			assert.NoError(t, err)
			assert.Nil(t, stats)
		})
	}
}

func TestCompute_Rankings(t *testing.T) {
	users := []models.User{
		mkUser("Big Spender", "big@example.com"),
		mkUser("Tied One", "t1@example.com"),
		mkUser("Tied Two", "t2@example.com"),
	}
	services := make([]models.CleaningService, 7)
	for i := range services {
		services[i] = mkService("Service "+string(rune('A'+i)), 10)
	}

	var orders []models.Order
	// services[2] gets 3 orders, services[0] and services[1] get 2 each
	// (tied), the rest get 1 each.
	counts := []int{2, 2, 3, 1, 1, 1, 1}
	n := 0
	for i, c := range counts {
		for j := 0; j < c; j++ {
			n++
			uid := users[n%len(users)].ID.String()
			orders = append(orders, mkOrder(
				"o"+string(rune('0'+n)), uid, services[i].ID.String(),
				models.OrderStatusCompleted, 1, 10, "2024-01-10"))
		}
	}
	// equal TotalSpent for the two tied users is irrelevant here; pin the
	// big spender with one expensive order
	orders = append(orders, mkOrder("ox", users[0].ID.String(), services[3].ID.String(),
		models.OrderStatusCompleted, 1, 500, "2024-02-01"))

	stats, err := Compute(orders, users, services, allParams())
	require.NoError(t, err)
	require.NotNil(t, stats)

	t.Run("top services capped at five, descending, ties stable", func(t *testing.T) {
		require.Len(t, stats.TopServices, 5)
		for i := 1; i < len(stats.TopServices); i++ {
			assert.GreaterOrEqual(t, stats.TopServices[i-1].OrderCount, stats.TopServices[i].OrderCount)
		}
		assert.Equal(t, services[2].ID.String(), stats.TopServices[0].ServiceID)
		// tied pair keeps catalog order
		assert.Equal(t, services[0].ID.String(), stats.TopServices[1].ServiceID)
		assert.Equal(t, services[1].ID.String(), stats.TopServices[2].ServiceID)
	})

	t.Run("top users descending by total spent", func(t *testing.T) {
		require.NotEmpty(t, stats.TopUsers)
		assert.LessOrEqual(t, len(stats.TopUsers), 5)
		assert.Equal(t, users[0].ID.String(), stats.TopUsers[0].UserID)
		for i := 1; i < len(stats.TopUsers); i++ {
			assert.GreaterOrEqual(t, stats.TopUsers[i-1].TotalSpent, stats.TopUsers[i].TotalSpent)
		}
	})

	t.Run("every service is represented, zero counts included", func(t *testing.T) {
		assert.Len(t, stats.ServiceStats, len(services))
		for i, s := range services {
			assert.Equal(t, s.ID.String(), stats.ServiceStats[i].ServiceID)
		}
	})
}

func TestCompute_RecentOrdersCappedAtTen(t *testing.T) {
	u := mkUser("Frequent", "freq@example.com")
	s := mkService("Wash & Fold", 12)

	var orders []models.Order
	for i := 0; i < 14; i++ {
		day := time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC)
		orders = append(orders, models.Order{
			ID: uuid.NewString(), UserID: u.ID.String(), ServiceID: s.ID.String(),
			Status: models.OrderStatusCompleted, Quantity: 1, TotalPrice: 12, CreatedAt: day,
		})
	}

	stats, err := Compute(orders, []models.User{u}, []models.CleaningService{s}, allParams())
	require.NoError(t, err)
	require.NotNil(t, stats)

	require.Len(t, stats.RecentOrders, 10)
	for i := 1; i < len(stats.RecentOrders); i++ {
		assert.False(t, stats.RecentOrders[i-1].CreatedAt.Before(stats.RecentOrders[i].CreatedAt))
	}
	assert.Equal(t, orders[13].ID, stats.RecentOrders[0].ID)
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	orders, users, services := fixture()
	ordersCopy := append([]models.Order(nil), orders...)

	_, err := Compute(orders, users, services, allParams())
	require.NoError(t, err)

	assert.Equal(t, ordersCopy, orders)
}
