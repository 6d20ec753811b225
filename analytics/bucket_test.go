package analytics

import (
	"testing"
	"time"

	"github.com/FreshPress-Cleaning/freshpress-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedOrder(total float64, created time.Time) models.Order {
	return models.Order{
		ID:         created.Format("20060102-150405.000000000"),
		Status:     models.OrderStatusCompleted,
		Quantity:   1,
		TotalPrice: total,
		CreatedAt:  created,
	}
}

func TestBucketRevenue_OnlyCompletedOrdersCount(t *testing.T) {
	day := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	orders := []models.Order{
		completedOrder(30, day),
		{ID: "p", Status: models.OrderStatusPending, TotalPrice: 99, CreatedAt: day},
		{ID: "c", Status: models.OrderStatusCancelled, TotalPrice: 50, CreatedAt: day},
	}

	points := bucketRevenue(orders, GranularityYearly, day)
	require.Len(t, points, 1)
	assert.Equal(t, "2024", points[0].Period)
	assert.Equal(t, 30.0, points[0].Revenue)
}

func TestBucketRevenue_Weekly(t *testing.T) {
	// Wednesday; the week starts Monday 2024-03-04
	now := time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)

	orders := []models.Order{
		completedOrder(10, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)),  // week 1, first second
		completedOrder(5, time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)), // week 1, last day
		completedOrder(7, time.Date(2024, 3, 11, 1, 0, 0, 0, time.UTC)),  // week 2
		completedOrder(3, time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)),  // week 0 (previous)
		completedOrder(2, time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC)), // week -1
	}

	points := bucketRevenue(orders, GranularityWeekly, now)
	require.Len(t, points, 4)

	assert.Equal(t, []RevenuePoint{
		{Period: "Week -1", Revenue: 2},
		{Period: "Week 0", Revenue: 3},
		{Period: "Week 1", Revenue: 15},
		{Period: "Week 2", Revenue: 7},
	}, points)
}

// Orders from different years must land in different monthly buckets even
// when they share a month name.
func TestBucketRevenue_MonthlyKeyedByYear(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		completedOrder(10, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		completedOrder(20, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
		completedOrder(5, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
		completedOrder(8, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	points := bucketRevenue(orders, GranularityMonthly, now)
	assert.Equal(t, []RevenuePoint{
		{Period: "Jan 2024", Revenue: 15},
		{Period: "Jun 2024", Revenue: 8},
		{Period: "Jan 2025", Revenue: 20},
	}, points)
}

func TestBucketRevenue_YearlySorted(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		completedOrder(1, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		completedOrder(2, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)),
		completedOrder(4, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		completedOrder(8, time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)),
	}

	points := bucketRevenue(orders, GranularityYearly, now)
	assert.Equal(t, []RevenuePoint{
		{Period: "2023", Revenue: 10},
		{Period: "2024", Revenue: 4},
		{Period: "2025", Revenue: 1},
	}, points)
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2024, 3, 6, 15, 30, 0, 0, time.UTC), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},  // Wednesday
		{time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},    // Monday itself
		{time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)}, // Sunday
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, startOfWeek(tc.in), "in=%s", tc.in)
	}
}
