package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"geocache/internal/apperr"
	"geocache/internal/geo"
	"geocache/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "geocode"

	defaultPoolSize     = 10
	defaultMinIdleConns = 2
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 3 * time.Second
	defaultWriteTimeout = 3 * time.Second
)

// RedisRepository keeps the geocode cache in Redis lists, one list per lookup
// prefix. The prefix is the query key minus its last decimal, so a bucket holds
// exactly the rows a LIKE 'prefix%' query would return.
type RedisRepository struct {
	client *redis.Client
}

// RedisOptions configures NewRedisConnection
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisConnection dials Redis and verifies the connection with PING
func NewRedisConnection(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     defaultPoolSize,
		MinIdleConns: defaultMinIdleConns,
		DialTimeout:  defaultDialTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	})

	ctx, cancel := context.WithTimeout(ctx, defaultDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("repository: redis ping failed: %w: %w", apperr.ErrStoreUnavailable, err)
	}
	return client, nil
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func bucketKey(prefixLat, prefixLon string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, prefixLat, prefixLon)
}

// Lookup returns every entry stored in the bucket of the given prefixes
func (r *RedisRepository) Lookup(ctx context.Context, prefixLat, prefixLon string) ([]models.CacheEntry, error) {
	values, err := r.client.LRange(ctx, bucketKey(prefixLat, prefixLon), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read bucket: %w: %w", apperr.ErrStoreUnavailable, err)
	}

	entries := make([]models.CacheEntry, 0, len(values))
	for _, v := range values {
		var entry models.CacheEntry
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			return nil, fmt.Errorf("repository: corrupt cache entry: %w: %w", apperr.ErrStoreUnavailable, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Insert appends one entry to the bucket derived from the query key
func (r *RedisRepository) Insert(ctx context.Context, queryLat, queryLon string, address models.Address) error {
	raw, err := json.Marshal(models.CacheEntry{Lat: queryLat, Lon: queryLon, Address: address})
	if err != nil {
		return fmt.Errorf("repository: failed to encode cache entry: %w: %w", apperr.ErrStoreUnavailable, err)
	}

	key := bucketKey(geo.PrefixOf(queryLat), geo.PrefixOf(queryLon))
	if err := r.client.RPush(ctx, key, raw).Err(); err != nil {
		return fmt.Errorf("repository: failed to append cache entry: %w: %w", apperr.ErrStoreUnavailable, err)
	}
	return nil
}
