package strategy

import (
	"context"
	"strings"

	"smartfinance-ai-be/pkg/store"
)

type Kind string

const (
	KindFreshRetrieval  Kind = "fresh_retrieval"
	KindCachedRetrieval Kind = "cached_retrieval"
	KindStaticPreload   Kind = "static_preload"
)

// Strategy assembles the grounding context for one question. The set of
// implementations is closed: FreshRetrieval, CachedRetrieval and
// StaticPreload.
type Strategy interface {
	ProduceContext(ctx context.Context, query, sessionID string) (string, error)
	Kind() Kind

	sealed()
}

// PassageCache maps a session id to the passages retrieved for it
type PassageCache interface {
	Get(ctx context.Context, sessionID string) ([]string, bool, error)
	Set(ctx context.Context, sessionID string, passages []string) error
	Delete(ctx context.Context, sessionID string) error
}

// FreshRetrieval queries the store on every call
type FreshRetrieval struct {
	store      store.ContextStore
	collection string
	k          int
	separator  string
}

func NewFreshRetrieval(s store.ContextStore, collection string, k int, separator string) *FreshRetrieval {
	return &FreshRetrieval{
		store:      s,
		collection: collection,
		k:          k,
		separator:  separator,
	}
}

func (f *FreshRetrieval) ProduceContext(ctx context.Context, query, sessionID string) (string, error) {
	passages, err := f.store.Query(ctx, f.collection, query, f.k, nil)
	if err != nil {
		return "", err
	}
	return strings.Join(passages, f.separator), nil
}

func (f *FreshRetrieval) Kind() Kind { return KindFreshRetrieval }

func (f *FreshRetrieval) sealed() {}

// CachedRetrieval retrieves once per session and replays the cached
// passages for every later question in that session, whatever it asks.
type CachedRetrieval struct {
	store      store.ContextStore
	cache      PassageCache
	collection string
	k          int
	separator  string
}

func NewCachedRetrieval(s store.ContextStore, cache PassageCache, collection string, k int, separator string) *CachedRetrieval {
	return &CachedRetrieval{
		store:      s,
		cache:      cache,
		collection: collection,
		k:          k,
		separator:  separator,
	}
}

func (c *CachedRetrieval) ProduceContext(ctx context.Context, query, sessionID string) (string, error) {
	passages, found, err := c.cache.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if found {
		return strings.Join(passages, c.separator), nil
	}

	passages, err = c.store.Query(ctx, c.collection, query, c.k, nil)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(ctx, sessionID, passages); err != nil {
		return "", err
	}
	return strings.Join(passages, c.separator), nil
}

// ClearCache forces the next question of the session to retrieve again.
// Unknown sessions are a no-op.
func (c *CachedRetrieval) ClearCache(ctx context.Context, sessionID string) error {
	return c.cache.Delete(ctx, sessionID)
}

func (c *CachedRetrieval) Kind() Kind { return KindCachedRetrieval }

func (c *CachedRetrieval) sealed() {}

// StaticPreload serves one document fixed at construction. Query and
// session do not affect the result.
type StaticPreload struct {
	text string
}

func NewStaticPreload(document string) *StaticPreload {
	return &StaticPreload{text: document}
}

func (s *StaticPreload) ProduceContext(ctx context.Context, query, sessionID string) (string, error) {
	return s.text, nil
}

func (s *StaticPreload) Kind() Kind { return KindStaticPreload }

func (s *StaticPreload) sealed() {}
