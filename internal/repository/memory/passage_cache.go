package memory

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// PassageCache keeps retrieved passages per session for the life of the
// process. Entries never expire; only Delete removes one.
type PassageCache struct {
	cache *cache.Cache
}

func NewPassageCache() *PassageCache {
	// No default expiration and no janitor
	c := cache.New(cache.NoExpiration, 0)
	return &PassageCache{
		cache: c,
	}
}

func (r *PassageCache) Get(ctx context.Context, sessionID string) ([]string, bool, error) {
	if x, found := r.cache.Get(sessionID); found {
		return x.([]string), true, nil
	}
	return nil, false, nil
}

func (r *PassageCache) Set(ctx context.Context, sessionID string, passages []string) error {
	stored := make([]string, len(passages))
	copy(stored, passages)
	r.cache.Set(sessionID, stored, cache.NoExpiration)
	return nil
}

func (r *PassageCache) Delete(ctx context.Context, sessionID string) error {
	r.cache.Delete(sessionID)
	return nil
}

func (r *PassageCache) Len() int {
	return r.cache.ItemCount()
}
