package service_cache

import (
	"testing"

	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestCatalogCacheRoundTrip(t *testing.T) {
	Invalidate()

	_, ok := GetActive()
	assert.False(t, ok, "empty cache should miss")

	catalog := []models.CleaningService{
		{Name: "Wash & Fold", Price: 2.50},
		{Name: "Dry Cleaning", Price: 8.00},
	}
	SetActive(catalog)

	got, ok := GetActive()
	assert.True(t, ok)
	assert.Equal(t, catalog, got)

	Invalidate()
	_, ok = GetActive()
	assert.False(t, ok, "invalidate should drop the entry")
}

func TestCatalogCacheOverwrite(t *testing.T) {
	SetActive([]models.CleaningService{{Name: "Old"}})
	SetActive([]models.CleaningService{{Name: "New"}})

	got, ok := GetActive()
	assert.True(t, ok)
	assert.Len(t, got, 1)
	assert.Equal(t, "New", got[0].Name)

	Invalidate()
}
