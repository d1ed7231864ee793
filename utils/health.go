package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the snapshot of the backends the API depends on: the
// listing database, the generic cache and the auth token cache.
type HealthStatus struct {
	Mongo      bool      `json:"mongo"`
	CacheRedis bool      `json:"cacheRedis"`
	AuthRedis  bool      `json:"authRedis"`
	CheckedAt  time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// probeHealth pings each backend once. A backend that was never configured
// reports unhealthy rather than being skipped.
func probeHealth(ctx context.Context, cache, authCache *redis.Client, mongoClient *mongo.Client) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}

	if cache != nil {
		status.CacheRedis = cache.Ping(ctx).Err() == nil
	}
	if authCache != nil {
		status.AuthRedis = authCache.Ping(ctx).Err() == nil
	}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	return status
}

func storeHealth(status HealthStatus) {
	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// StartHealthMonitor probes the backends on the given interval and updates
// the in-memory snapshot served by the health endpoint.
func StartHealthMonitor(interval time.Duration, cache, authCache *redis.Client, mongoClient *mongo.Client) {
	if interval <= 0 {
		interval = 60 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx := context.Background()
		storeHealth(probeHealth(ctx, cache, authCache, mongoClient))

		for range ticker.C {
			storeHealth(probeHealth(ctx, cache, authCache, mongoClient))
		}
	}()
}
