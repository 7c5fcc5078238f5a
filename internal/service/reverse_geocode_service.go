package service

import (
	"context"
	"fmt"

	"geocache/internal/geo"
	"geocache/internal/models"

	"github.com/rs/zerolog/log"
)

// HitRadius is the distance in meters under which a cached address answers a query
const HitRadius = 40.0

// ReverseGeoCodeService resolves coordinates to addresses, serving nearby cached
// results and writing provider results through to the cache on a miss.
type ReverseGeoCodeService struct {
	repo     ReverseGeoCodeRepository
	provider AddressProvider
}

// ReverseGeoCodeRepository interface for dependency injection
type ReverseGeoCodeRepository interface {
	Lookup(ctx context.Context, prefixLat, prefixLon string) ([]models.CacheEntry, error)
	Insert(ctx context.Context, queryLat, queryLon string, address models.Address) error
}

// AddressProvider fetches address candidates from the upstream geocoder
type AddressProvider interface {
	FetchAddresses(ctx context.Context, q geo.Normalized) ([]models.Address, error)
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(repo ReverseGeoCodeRepository, provider AddressProvider) *ReverseGeoCodeService {
	return &ReverseGeoCodeService{repo: repo, provider: provider}
}

// ReverseGeocode resolves a single raw coordinate pair
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon string) ([]models.ResolvedAddress, error) {
	q, err := geo.NormalizeStrings(lat, lon)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	entries, err := s.repo.Lookup(ctx, q.Prefix.Lat, q.Prefix.Lon)
	if err != nil {
		return nil, fmt.Errorf("service: cache lookup failed: %w", err)
	}

	hits := make([]models.ResolvedAddress, 0, len(entries))
	for _, entry := range entries {
		resolved, ok := resolve(q, entry.Address)
		if !ok {
			continue
		}
		if keepEntry(resolved.Distance, geo.Key{Lat: entry.Lat, Lon: entry.Lon}, q.Query) {
			hits = append(hits, resolved)
		}
	}

	logger := log.With().Str("lat", q.Query.Lat).Str("lon", q.Query.Lon).Logger()
	if len(hits) > 0 {
		logger.Debug().Int("addresses", len(hits)).Msg("served from cache")
		return hits, nil
	}

	logger.Debug().Int("candidates", len(entries)).Msg("cache miss, querying provider")
	addresses, err := s.provider.FetchAddresses(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service: provider lookup failed: %w", err)
	}

	results := make([]models.ResolvedAddress, 0, len(addresses))
	for _, address := range addresses {
		resolved, ok := resolve(q, address)
		if !ok {
			continue
		}
		if err := s.repo.Insert(ctx, q.Query.Lat, q.Query.Lon, address); err != nil {
			return nil, fmt.Errorf("service: cache insert failed: %w", err)
		}
		results = append(results, resolved)
	}

	logger.Debug().Int("addresses", len(results)).Msg("cached provider result")
	return results, nil
}

// ReverseGeocodeBulk resolves every request in order and concatenates the
// results. The first failing item aborts the whole batch.
func (s *ReverseGeoCodeService) ReverseGeocodeBulk(ctx context.Context, requests []models.BulkReverseRequest) ([]models.ResolvedAddress, error) {
	results := []models.ResolvedAddress{}
	for i, req := range requests {
		resolved, err := s.ReverseGeocode(ctx, req.Lat, req.Lon)
		if err != nil {
			return nil, fmt.Errorf("service: bulk item %d: %w", i, err)
		}
		results = append(results, resolved...)
	}
	return results, nil
}

// resolve annotates address with its distance from the query point. Addresses
// without coordinates cannot be measured and are skipped.
func resolve(q geo.Normalized, address models.Address) (models.ResolvedAddress, bool) {
	point, err := geo.AddressPoint(address)
	if err != nil {
		log.Warn().Err(err).Str("lat", q.Query.Lat).Str("lon", q.Query.Lon).Msg("skipping address without coordinates")
		return models.ResolvedAddress{}, false
	}

	return models.ResolvedAddress{
		Lat:      q.Query.Lat,
		Lon:      q.Query.Lon,
		Distance: geo.DistanceMeters(point, q.Point),
		Address:  address,
	}, true
}

// keepEntry reports whether a cached entry answers the query: it must lie
// strictly within HitRadius, or have been stored for this exact query key.
func keepEntry(distance float64, entryKey, queryKey geo.Key) bool {
	return distance < HitRadius || entryKey == queryKey
}
