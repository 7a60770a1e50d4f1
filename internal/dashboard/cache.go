package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/Skotchmaster/order_management/internal/transport"
)

type OrderFetcher interface {
	FetchOrders(ctx context.Context) ([]transport.OrderResponse, error)
}

// OrderCache memoizes the order list for the lifetime of a dashboard
// session. A zero TTL never expires; Invalidate forces the next Get to
// refetch. Failed fetches are not cached.
type OrderCache struct {
	fetcher OrderFetcher
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	orders   []transport.OrderResponse
	loaded   bool
	loadedAt time.Time
}

func NewOrderCache(fetcher OrderFetcher, ttl time.Duration) *OrderCache {
	return &OrderCache{fetcher: fetcher, ttl: ttl, now: time.Now}
}

// Get returns the cached orders, fetching them if needed. On failure it
// returns an empty, non-nil slice together with the error so callers can
// render an empty table and show the error.
func (c *OrderCache) Get(ctx context.Context) ([]transport.OrderResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && !c.expired() {
		return c.orders, nil
	}

	orders, err := c.fetcher.FetchOrders(ctx)
	if err != nil {
		c.loaded = false
		c.orders = nil
		return []transport.OrderResponse{}, err
	}
	if orders == nil {
		orders = []transport.OrderResponse{}
	}

	c.orders = orders
	c.loaded = true
	c.loadedAt = c.now()
	return c.orders, nil
}

func (c *OrderCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.orders = nil
}

func (c *OrderCache) expired() bool {
	return c.ttl > 0 && c.now().Sub(c.loadedAt) >= c.ttl
}
