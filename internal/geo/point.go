package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"geocache/internal/apperr"
	"geocache/internal/models"
)

// EarthRadius is the mean Earth radius in meters used for great-circle distances
const EarthRadius = 6371000.0

// Point is a latitude/longitude pair in decimal degrees
type Point struct {
	Lat float64
	Lon float64
}

// CoordinateError reports which input value failed to parse
type CoordinateError struct {
	Field string
	Value string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s %q is not a finite number", e.Field, e.Value)
}

func (e *CoordinateError) Unwrap() error {
	return apperr.ErrInvalidCoordinate
}

// ParseCoordinate parses raw latitude and longitude strings. Values outside
// the usual ±90/±180 ranges are accepted.
func ParseCoordinate(lat, lon string) (Point, error) {
	latVal, err := parseDegrees("lat", lat)
	if err != nil {
		return Point{}, err
	}
	lonVal, err := parseDegrees("lon", lon)
	if err != nil {
		return Point{}, err
	}
	return Point{Lat: latVal, Lon: lonVal}, nil
}

func parseDegrees(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &CoordinateError{Field: field, Value: raw}
	}
	return v, nil
}

// DistanceMeters returns the haversine great-circle distance between a and b
func DistanceMeters(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadius * c
}

// AddressPoint returns the address's own position. It fails with
// ErrInvalidCoordinate when either coordinate is missing.
func AddressPoint(addr models.Address) (Point, error) {
	if addr.Latitude == nil || addr.Longitude == nil {
		return Point{}, fmt.Errorf("geo: address %q has no coordinates: %w", addr.FormattedAddress, apperr.ErrInvalidCoordinate)
	}
	return Point{Lat: *addr.Latitude, Lon: *addr.Longitude}, nil
}
