package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyticsRows(n int) []UserAnalytics {
	rows := make([]UserAnalytics, n)
	for i := range rows {
		rows[i] = UserAnalytics{UserID: fmt.Sprintf("u%02d", i), Name: fmt.Sprintf("User %d", i)}
	}
	return rows
}

func TestPageUsers(t *testing.T) {
	rows := analyticsRows(23)

	t.Run("first page is full", func(t *testing.T) {
		page, totalPages := PageUsers(rows, 1)
		assert.Equal(t, 3, totalPages)
		require.Len(t, page, UserPageSize)
		assert.Equal(t, "u00", page[0].UserID)
		assert.Equal(t, "u09", page[9].UserID)
	})

	t.Run("middle page continues where the last left off", func(t *testing.T) {
		page, _ := PageUsers(rows, 2)
		require.Len(t, page, UserPageSize)
		assert.Equal(t, "u10", page[0].UserID)
	})

	t.Run("last page is partial", func(t *testing.T) {
		page, totalPages := PageUsers(rows, 3)
		assert.Equal(t, 3, totalPages)
		require.Len(t, page, 3)
		assert.Equal(t, "u22", page[2].UserID)
	})
}

func TestPageUsers_ExactMultiple(t *testing.T) {
	rows := analyticsRows(20)
	page, totalPages := PageUsers(rows, 2)
	assert.Equal(t, 2, totalPages)
	assert.Len(t, page, UserPageSize)
}

func TestPageUsers_Empty(t *testing.T) {
	page, totalPages := PageUsers(nil, 1)
	assert.Equal(t, 0, totalPages)
	assert.Empty(t, page)
}
