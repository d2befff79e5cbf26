package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "smartfinance:passages:"

// PassageCache stores session passages in Redis so every instance behind a
// load balancer sees the same cached retrieval. Keys carry no TTL.
type PassageCache struct {
	rdb       *redis.Client
	namespace string
}

func NewPassageCache(rdb *redis.Client, namespace string) *PassageCache {
	return &PassageCache{
		rdb:       rdb,
		namespace: namespace,
	}
}

func (r *PassageCache) key(sessionID string) string {
	return keyPrefix + r.namespace + ":" + sessionID
}

func (r *PassageCache) Get(ctx context.Context, sessionID string) ([]string, bool, error) {
	raw, err := r.rdb.Get(ctx, r.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get passages: %w", err)
	}

	var passages []string
	if err := json.Unmarshal(raw, &passages); err != nil {
		return nil, false, fmt.Errorf("decode cached passages: %w", err)
	}
	return passages, true, nil
}

func (r *PassageCache) Set(ctx context.Context, sessionID string, passages []string) error {
	if passages == nil {
		passages = []string{}
	}

	raw, err := json.Marshal(passages)
	if err != nil {
		return err
	}

	if err := r.rdb.Set(ctx, r.key(sessionID), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set passages: %w", err)
	}
	return nil
}

func (r *PassageCache) Delete(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete passages: %w", err)
	}
	return nil
}
