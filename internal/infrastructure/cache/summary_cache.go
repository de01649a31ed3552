package cache

import (
	"sync"
	"time"

	"github.com/pricepal/pricepal-server/internal/domain/entity"
)

// CacheEntry represents a cached product summary with expiration
type CacheEntry struct {
	Summary   *entity.ProductSummary
	Timestamp time.Time
}

// SummaryCache provides a thread-safe in-memory cache for derived product
// summaries. Building a summary scans the wallet ledger, so mutating
// operations invalidate the affected product instead of letting readers
// rescan on every request. Entries also expire on a short horizon because
// the remaining-days value drifts with the clock.
type SummaryCache struct {
	cache      map[string]CacheEntry
	expiration time.Duration
	mutex      sync.RWMutex
}

// NewSummaryCache creates a new summary cache
func NewSummaryCache() *SummaryCache {
	return &SummaryCache{
		cache:      make(map[string]CacheEntry),
		expiration: time.Hour,
	}
}

// Get retrieves a summary from the cache if available and not expired
func (c *SummaryCache) Get(productID string) *entity.ProductSummary {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.cache[productID]
	if !exists || time.Since(entry.Timestamp) > c.expiration {
		return nil
	}

	return entry.Summary
}

// Put stores a summary in the cache
func (c *SummaryCache) Put(summary *entity.ProductSummary) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache[summary.ProductID] = CacheEntry{
		Summary:   summary,
		Timestamp: time.Now(),
	}
}

// Invalidate removes the entry for a product
func (c *SummaryCache) Invalidate(productID string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.cache, productID)
}

// Clear clears all entries from the cache
func (c *SummaryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache = make(map[string]CacheEntry)
}

// SetExpiration sets the cache expiration duration
func (c *SummaryCache) SetExpiration(duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.expiration = duration
}

// Size returns the number of items in the cache
func (c *SummaryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.cache)
}
