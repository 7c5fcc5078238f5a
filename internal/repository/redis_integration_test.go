//go:build integration

package repository

import (
	"context"
	"testing"

	"geocache/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestRedis(t *testing.T) *redis.Client {
	ctx := context.Background()

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		redisC.Terminate(ctx)
	})

	endpoint, err := redisC.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := NewRedisConnection(ctx, RedisOptions{Addr: endpoint})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestRedisRepository_LookupAndInsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	repo := NewRedisRepository(setupTestRedis(t))
	ctx := context.Background()

	addr := models.Address{City: "San Francisco", Latitude: ptr(37.775), Longitude: ptr(-122.419)}
	require.NoError(t, repo.Insert(ctx, "37.77490", "-122.41940", addr))
	require.NoError(t, repo.Insert(ctx, "37.77499", "-122.41949", addr))
	require.NoError(t, repo.Insert(ctx, "37.77500", "-122.41940", addr))

	entries, err := repo.Lookup(ctx, "37.7749", "-122.4194")
	require.NoError(t, err)
	assert.Equal(t, []models.CacheEntry{
		{Lat: "37.77490", Lon: "-122.41940", Address: addr},
		{Lat: "37.77499", Lon: "-122.41949", Address: addr},
	}, entries)

	entries, err = repo.Lookup(ctx, "0.0000", "0.0000")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
