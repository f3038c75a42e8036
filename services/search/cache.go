package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"pawfect/models"

	"github.com/go-redis/redis/v8"
)

// ResultCache stores encoded search responses.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

type RedisResultCache struct {
	client *redis.Client
}

func NewRedisResultCache(client *redis.Client) ResultCache {
	return &RedisResultCache{client: client}
}

const cacheKeyPrefix = "search:results:"

// cacheKey hashes all four filter fields, since every one of them is echoed
// back in the response.
func cacheKey(q models.SearchQuery) string {
	raw, _ := json.Marshal(q)
	sum := sha256.Sum256(raw)
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *RedisResultCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, data, ttl).Err()
}
