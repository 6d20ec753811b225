package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/FreshPress-Cleaning/freshpress-backend/models"
)

// bucketRevenue groups completed-order revenue into chronological buckets.
//
// Weekly buckets are indexed relative to the start of the current week
// (the Monday containing now): the current week is "Week 1", the next
// "Week 2", and weeks in the past get zero or negative indexes so the
// sequence stays consecutive. Monthly buckets are keyed by (year, month)
// so a January 2024 order never lands in the January 2025 bucket; yearly
// buckets by calendar year.
func bucketRevenue(orders []models.Order, granularity string, now time.Time) []RevenuePoint {
	type bucket struct {
		key     int64
		label   string
		revenue float64
	}
	byKey := make(map[int64]*bucket)

	add := func(key int64, label string, amount float64) {
		b, ok := byKey[key]
		if !ok {
			b = &bucket{key: key, label: label}
			byKey[key] = b
		}
		b.revenue += amount
	}

	weekStart := startOfWeek(now)
	for _, o := range orders {
		if o.Status != models.OrderStatusCompleted {
			continue
		}
		t := o.CreatedAt
		switch granularity {
		case GranularityWeekly:
			idx := weekIndex(t, weekStart)
			add(idx, fmt.Sprintf("Week %d", idx), o.TotalPrice)
		case GranularityMonthly:
			key := int64(t.Year())*12 + int64(t.Month()) - 1
			add(key, t.Format("Jan 2006"), o.TotalPrice)
		case GranularityYearly:
			add(int64(t.Year()), t.Format("2006"), o.TotalPrice)
		}
	}

	ordered := make([]*bucket, 0, len(byKey))
	for _, b := range byKey {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(a, b int) bool { return ordered[a].key < ordered[b].key })

	out := make([]RevenuePoint, len(ordered))
	for i, b := range ordered {
		out[i] = RevenuePoint{Period: b.label, Revenue: b.revenue}
	}
	return out
}

// startOfWeek returns midnight of the Monday of t's week, in t's location.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekIndex numbers weeks consecutively with the current week as 1;
// past weeks get zero and negative indexes.
func weekIndex(t, weekStart time.Time) int64 {
	weeks := math.Floor(t.Sub(weekStart).Hours() / (24 * 7))
	return int64(weeks) + 1
}
