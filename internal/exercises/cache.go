package exercises

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// Cache is the subset of ristretto used by the catalog read-through layer.
type Cache interface {
	Get(key interface{}) (interface{}, bool)
	Set(key, value interface{}, cost int64) bool
	Clear()
}

type catalog interface {
	Get(ctx context.Context, id int) (*Exercise, error)
	GetByIDs(ctx context.Context, ids []int) (map[int]Exercise, error)
}

// CachedCatalog serves single and batched catalog lookups through an
// in-process ristretto cache. Catalog rows change only on (re)seed, so
// entries are kept until Clear.
type CachedCatalog struct {
	catalog catalog
	cache   Cache
}

func NewCache() (Cache, error) {
	mainCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,     // number of keys to track frequency of
		MaxCost:     1 << 24, // maximum cost of cache (~16M)
		BufferItems: 64,      // number of keys per Get buffer
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %s", err)
	}
	return mainCache, nil
}

func NewCachedCatalog(catalog catalog, cache Cache) *CachedCatalog {
	return &CachedCatalog{
		catalog: catalog,
		cache:   cache,
	}
}

func (cc *CachedCatalog) Get(ctx context.Context, id int) (*Exercise, error) {
	if cached, found := cc.cache.Get(id); found {
		if exercise, ok := cached.(Exercise); ok {
			return &exercise, nil
		}
	}

	exercise, err := cc.catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cc.cache.Set(id, *exercise, 1)
	return exercise, nil
}

// GetByIDs hits the store only for ids missing from the cache, keeping the
// lookup a single batched query in the worst case.
func (cc *CachedCatalog) GetByIDs(ctx context.Context, ids []int) (map[int]Exercise, error) {
	byID := make(map[int]Exercise, len(ids))
	var missing []int
	for _, id := range ids {
		if cached, found := cc.cache.Get(id); found {
			if exercise, ok := cached.(Exercise); ok {
				byID[id] = exercise
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return byID, nil
	}

	fetched, err := cc.catalog.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, exercise := range fetched {
		cc.cache.Set(id, exercise, 1)
		byID[id] = exercise
	}

	return byID, nil
}

func (cc *CachedCatalog) Clear() {
	cc.cache.Clear()
}
