package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	CacheEnabled bool      `json:"cacheEnabled"`
	Redis        bool      `json:"redis"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func setHealthStatus(h HealthStatus) {
	mu.Lock()
	currentHealth = h
	mu.Unlock()
}

// CheckRedis pings client once and records the outcome.
func CheckRedis(ctx context.Context, client *redis.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	h := HealthStatus{
		CacheEnabled: true,
		Redis:        client.Ping(ctx).Err() == nil,
		CheckedAt:    time.Now(),
	}
	setHealthStatus(h)
	return h
}

// StartHealthMonitor re-checks the cache connection every interval until ctx
// is cancelled.
func StartHealthMonitor(ctx context.Context, client *redis.Client, interval time.Duration) {
	CheckRedis(ctx, client)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckRedis(ctx, client)
			}
		}
	}()
}
