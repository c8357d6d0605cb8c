package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/metrics"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/repository"
)

type ItemRepository interface {
	GetAllOpenItems(ctx context.Context) ([]*repository.Item, error)
}

// ItemCache keeps available and pending items in memory so the listing
// pages stay hot. Returned and deleted items are evicted on write-through,
// and the claims engine evicts on every status transition so reads re-prime
// from postgres.
type ItemCache struct {
	mu     sync.RWMutex
	cache  map[string]*repository.Item
	repo   ItemRepository
	logger *zap.Logger
}

func NewItemCache(repo ItemRepository, logger *zap.Logger) *ItemCache {
	return &ItemCache{
		cache:  make(map[string]*repository.Item),
		repo:   repo,
		logger: logger,
	}
}

func (c *ItemCache) LoadInitialData(ctx context.Context) error {
	items, err := c.repo.GetAllOpenItems(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		itemCopy := *item
		c.cache[item.ID] = &itemCopy
	}
	metrics.ItemCacheEntries.Set(float64(len(c.cache)))
	c.logger.Info("item cache primed", zap.Int("items", len(c.cache)))
	return nil
}

func (c *ItemCache) Get(itemID string) (*repository.Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, found := c.cache[itemID]
	if !found {
		return nil, false
	}
	itemCopy := *item
	return &itemCopy, true
}

func (c *ItemCache) Set(item *repository.Item) {
	if !isOpenStatus(item.Status) {
		c.Delete(item.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	itemCopy := *item
	c.cache[item.ID] = &itemCopy
	metrics.ItemCacheEntries.Set(float64(len(c.cache)))
}

func (c *ItemCache) Delete(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[itemID]; found {
		delete(c.cache, itemID)
		metrics.ItemCacheEntries.Set(float64(len(c.cache)))
	}
}

func isOpenStatus(status string) bool {
	return status == repository.StatusAvailable || status == repository.StatusPending
}
