package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	converter "github.com/smartconv/converter"
)

const DefaultTTL = 10 * time.Minute

// RateCache holds the last fetched rate table and refreshes it through
// the RateSource once the TTL elapses. Staleness is checked before key
// presence, a stale table is never served even when it contains the
// requested code. Concurrent callers racing a stale cache collapse
// into a single in-flight fetch.
type RateCache struct {
	source converter.RateSource
	base   string
	ttl    time.Duration

	mu        sync.RWMutex
	table     converter.RateTable
	fetchedAt time.Time

	group singleflight.Group
	now   func() time.Time
}

func New(source converter.RateSource, base string, ttl time.Duration) *RateCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RateCache{
		source: source,
		base:   strings.ToUpper(base),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *RateCache) Base() string {
	return c.base
}

func (c *RateCache) GetRate(ctx context.Context, code string) (float64, error) {
	code = strings.ToUpper(code)

	c.mu.RLock()
	if c.fresh() {
		rate, ok := c.table[code]
		c.mu.RUnlock()

		if !ok {
			return 0, fmt.Errorf("%w: %s", converter.ErrUnknownCurrency, code)
		}

		return rate, nil
	}
	c.mu.RUnlock()

	if _, err, _ := c.group.Do("refresh", func() (interface{}, error) {
		return nil, c.refresh(ctx)
	}); err != nil {
		return 0, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	rate, ok := c.table[code]

	if !ok {
		return 0, fmt.Errorf("%w: %s", converter.ErrUnknownCurrency, code)
	}

	return rate, nil
}

func (c *RateCache) refresh(ctx context.Context) error {
	c.mu.RLock()
	fresh := c.fresh()
	c.mu.RUnlock()

	// Another waiter of the same flight already repopulated the table.
	if fresh {
		return nil
	}

	table, err := c.source.Fetch(ctx, c.base)

	if err != nil {
		return err
	}

	c.mu.Lock()
	c.table = table
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return nil
}

// fresh must be called with c.mu held.
func (c *RateCache) fresh() bool {
	return len(c.table) != 0 && c.now().Sub(c.fetchedAt) < c.ttl
}
