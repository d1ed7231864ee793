package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestProbeHealthLabelsBackends(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	status := probeHealth(context.Background(), cache, nil, nil)

	assert.True(t, status.CacheRedis)
	assert.False(t, status.AuthRedis)
	assert.False(t, status.Mongo)
	assert.False(t, status.CheckedAt.IsZero())
}

func TestProbeHealthDetectsDownBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	authCache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	status := probeHealth(context.Background(), nil, authCache, nil)

	assert.False(t, status.AuthRedis)
}

func TestHealthSnapshotRoundTrip(t *testing.T) {
	snapshot := HealthStatus{Mongo: true, CacheRedis: true, AuthRedis: false}
	storeHealth(snapshot)

	got := GetHealthStatus()
	assert.True(t, got.Mongo)
	assert.True(t, got.CacheRedis)
	assert.False(t, got.AuthRedis)
}
