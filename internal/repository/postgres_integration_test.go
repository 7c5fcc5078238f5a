//go:build integration

package repository

import (
	"context"
	"testing"

	"geocache/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func ptr(v float64) *float64 { return &v }

func TestRepository_LookupAndInsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	// Running twice must be harmless.
	require.NoError(t, repo.EnsureSchema(ctx))

	cityHall := models.Address{
		FormattedAddress: "1 Dr Carlton B Goodlett Pl, San Francisco, CA 94102 US",
		City:             "San Francisco",
		Latitude:         ptr(37.775),
		Longitude:        ptr(-122.419),
	}
	elsewhere := models.Address{City: "Oakland", Latitude: ptr(37.8044), Longitude: ptr(-122.2712)}

	require.NoError(t, repo.Insert(ctx, "37.77490", "-122.41940", cityHall))
	require.NoError(t, repo.Insert(ctx, "37.77498", "-122.41941", cityHall))
	require.NoError(t, repo.Insert(ctx, "37.80440", "-122.27120", elsewhere))

	tests := []struct {
		name      string
		prefixLat string
		prefixLon string
		expected  []models.CacheEntry
	}{
		{
			name:      "prefix matches two rows",
			prefixLat: "37.7749",
			prefixLon: "-122.4194",
			expected: []models.CacheEntry{
				{Lat: "37.77490", Lon: "-122.41940", Address: cityHall},
				{Lat: "37.77498", Lon: "-122.41941", Address: cityHall},
			},
		},
		{
			name:      "other bucket",
			prefixLat: "37.8044",
			prefixLon: "-122.2712",
			expected:  []models.CacheEntry{{Lat: "37.80440", Lon: "-122.27120", Address: elsewhere}},
		},
		{
			name:      "no match",
			prefixLat: "1.0000",
			prefixLon: "2.0000",
			expected:  []models.CacheEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := repo.Lookup(ctx, tt.prefixLat, tt.prefixLon)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expected, entries)
		})
	}
}

func TestRepository_InsertKeepsDuplicates(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))

	addr := models.Address{City: "San Francisco", Latitude: ptr(37.775), Longitude: ptr(-122.419)}
	require.NoError(t, repo.Insert(ctx, "37.77490", "-122.41940", addr))
	require.NoError(t, repo.Insert(ctx, "37.77490", "-122.41940", addr))

	entries, err := repo.Lookup(ctx, "37.7749", "-122.4194")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRepository_CopyEntries(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))

	entries := []models.CacheEntry{
		{Lat: "35.68124", Lon: "139.76713", Address: models.Address{City: "Tokyo", Latitude: ptr(35.6812), Longitude: ptr(139.7671)}},
		{Lat: "35.67500", Lon: "139.73200", Address: models.Address{City: "Minato", Latitude: ptr(35.675), Longitude: ptr(139.732)}},
	}

	n, err := repo.CopyEntries(ctx, entries)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	found, err := repo.Lookup(ctx, "35.6812", "139.7671")
	require.NoError(t, err)
	assert.Equal(t, entries[:1], found)
}
