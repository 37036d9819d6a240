package presskitapi

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// CachedSource keeps recently fetched documents in memory and collapses
// concurrent fetches of the same presskit into one upstream call. Cached
// documents are shared between callers and must be treated as read-only.
type CachedSource struct {
	source Source
	cache  *expirable.LRU[string, any]
	group  singleflight.Group
}

// NewCachedSource wraps source with an LRU of size entries that expire after
// ttl. A non-positive ttl or size returns source unchanged.
func NewCachedSource(source Source, size int, ttl time.Duration) Source {
	if ttl <= 0 || size <= 0 {
		return source
	}
	return &CachedSource{
		source: source,
		cache:  expirable.NewLRU[string, any](size, nil, ttl),
	}
}

// Fetch returns the cached document or loads it from the wrapped source.
// The shared load is detached from any single caller's cancellation; each
// caller stops waiting when its own ctx is done. Failed fetches are not
// cached.
func (c *CachedSource) Fetch(ctx context.Context, slug, lang string) (any, error) {
	key := slug + "|" + lang
	if doc, ok := c.cache.Get(key); ok {
		return doc, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	results := c.group.DoChan(key, func() (any, error) {
		doc, err := c.source.Fetch(loadCtx, slug, lang)
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, doc)
		return doc, nil
	})

	select {
	case res := <-results:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
