package service_cache

import (
	"sync"
	"time"

	"github.com/FreshPress-Cleaning/freshpress-backend/models"
)

const TTL = 5 * time.Minute

// ── Active catalog cache ─────────────────────────────────────────────────────
// The storefront lists the same handful of active services on nearly every
// page load; cache them in-process and invalidate on any admin write.

type catalogEntry struct {
	services  []models.CleaningService
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache *catalogEntry
)

func GetActive() ([]models.CleaningService, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cache != nil && time.Since(cache.fetchedAt) < TTL {
		return cache.services, true
	}
	return nil, false
}

func SetActive(services []models.CleaningService) {
	mu.Lock()
	defer mu.Unlock()
	cache = &catalogEntry{services: services, fetchedAt: time.Now()}
}

// Invalidate drops the cache (call on any service create/update/delete).
func Invalidate() {
	mu.Lock()
	cache = nil
	mu.Unlock()
}
