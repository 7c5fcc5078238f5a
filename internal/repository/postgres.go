package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"geocache/internal/apperr"
	"geocache/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS geocode (
		id BIGSERIAL PRIMARY KEY,
		lat TEXT NOT NULL,
		lon TEXT NOT NULL,
		address JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS geocode_lat_lon_idx ON geocode (lat text_pattern_ops, lon text_pattern_ops);
`

// Repository is the PostgreSQL backed geocode cache
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the geocode table and its prefix index if they are missing
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w: %w", apperr.ErrStoreUnavailable, err)
	}
	return nil
}

// Lookup returns every cached entry whose query coordinate starts with the given prefixes
func (r *Repository) Lookup(ctx context.Context, prefixLat, prefixLon string) ([]models.CacheEntry, error) {
	sql := `
		SELECT lat, lon, address
		FROM geocode
		WHERE lat LIKE $1 AND lon LIKE $2
	`

	rows, err := r.db.Query(ctx, sql, likePrefix(prefixLat), likePrefix(prefixLon))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute lookup query: %w: %w", apperr.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	entries := []models.CacheEntry{}
	for rows.Next() {
		var entry models.CacheEntry
		var raw []byte
		if err := rows.Scan(&entry.Lat, &entry.Lon, &raw); err != nil {
			return nil, fmt.Errorf("repository: failed to scan geocode row: %w: %w", apperr.ErrStoreUnavailable, err)
		}
		if err := json.Unmarshal(raw, &entry.Address); err != nil {
			return nil, fmt.Errorf("repository: corrupt address for %s,%s: %w: %w", entry.Lat, entry.Lon, apperr.ErrStoreUnavailable, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w: %w", apperr.ErrStoreUnavailable, err)
	}

	return entries, nil
}

// Insert appends one cache row. Rows are never deduplicated.
func (r *Repository) Insert(ctx context.Context, queryLat, queryLon string, address models.Address) error {
	raw, err := json.Marshal(address)
	if err != nil {
		return fmt.Errorf("repository: failed to encode address: %w: %w", apperr.ErrStoreUnavailable, err)
	}

	_, err = r.db.Exec(ctx, `INSERT INTO geocode (lat, lon, address) VALUES ($1, $2, $3)`, queryLat, queryLon, raw)
	if err != nil {
		return fmt.Errorf("repository: failed to insert geocode row: %w: %w", apperr.ErrStoreUnavailable, err)
	}
	return nil
}

// CopyEntries bulk loads entries with the COPY protocol and returns the number of rows written
func (r *Repository) CopyEntries(ctx context.Context, entries []models.CacheEntry) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"geocode"},
		[]string{"lat", "lon", "address"},
		pgx.CopyFromSlice(len(entries), func(i int) ([]any, error) {
			raw, err := json.Marshal(entries[i].Address)
			if err != nil {
				return nil, err
			}
			return []any{entries[i].Lat, entries[i].Lon, raw}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy geocode rows: %w: %w", apperr.ErrStoreUnavailable, err)
	}
	return n, nil
}

// Count returns the number of cached rows
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM geocode").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count rows: %w: %w", apperr.ErrStoreUnavailable, err)
	}
	return count, nil
}

// likePrefix escapes LIKE metacharacters in prefix and appends the wildcard
func likePrefix(prefix string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	return escaped + "%"
}
