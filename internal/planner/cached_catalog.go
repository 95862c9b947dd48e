package planner

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedCatalog memoizes catalog queries for a short time. Returned slices are
// shared between callers and must not be modified.
type CachedCatalog struct {
	inner PlaceCatalog
	cache *cache.Cache
}

func NewCachedCatalog(inner PlaceCatalog, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		inner: inner,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *CachedCatalog) QueryPlaces(ctx context.Context, q PlaceQuery) ([]Place, error) {
	key := q.cacheKey()
	if cached, found := c.cache.Get(key); found {
		return cached.([]Place), nil
	}

	places, err := c.inner.QueryPlaces(ctx, q)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, places, cache.DefaultExpiration)
	return places, nil
}

func (q PlaceQuery) cacheKey() string {
	price := "-"
	if q.MaxPrice != nil {
		price = strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64)
	}
	return fmt.Sprintf("places:%s:%v:%t:%s:%d:%d",
		q.DistrictID, q.Categories, q.ActiveOnly, price, q.OrderBy, q.Limit)
}
