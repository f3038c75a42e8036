// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"pawfect/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client backing the search result cache.
var CacheClient *redis.Client

// InitCache connects the cache client using the Redis settings in AppConfig.
func InitCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	CacheClient = client
	return nil
}

// GetCacheClient returns the cache client, or nil when InitCache has not
// succeeded.
func GetCacheClient() *redis.Client {
	return CacheClient
}
