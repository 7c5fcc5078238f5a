package geo

import (
	"math"
	"strconv"
	"strings"
)

const (
	// QueryPrecision is the number of decimals kept in a cache key (~1.1 m)
	QueryPrecision = 5
	// PrefixPrecision is the number of decimals of the coarse lookup prefix (~11 m)
	PrefixPrecision = QueryPrecision - 1
)

// Key is a coordinate rendered as fixed-precision decimal strings
type Key struct {
	Lat string
	Lon string
}

// Normalized is the canonical form of a requested coordinate
type Normalized struct {
	// Query is the 5-decimal cache key of the coordinate.
	Query Key
	// Prefix is Query with its last decimal dropped; every key starting with
	// it belongs to the same lookup bucket.
	Prefix Key
	// Point is the numeric value of Query.
	Point Point
}

// Normalize rounds p half-up to QueryPrecision decimals and derives the lookup
// prefix from the rounded key.
func Normalize(p Point) Normalized {
	query := Key{
		Lat: FormatDegrees(p.Lat),
		Lon: FormatDegrees(p.Lon),
	}
	lat, _ := strconv.ParseFloat(query.Lat, 64)
	lon, _ := strconv.ParseFloat(query.Lon, 64)

	return Normalized{
		Query:  query,
		Prefix: Key{Lat: PrefixOf(query.Lat), Lon: PrefixOf(query.Lon)},
		Point:  Point{Lat: lat, Lon: lon},
	}
}

// NormalizeStrings parses and normalizes a raw coordinate pair
func NormalizeStrings(lat, lon string) (Normalized, error) {
	p, err := ParseCoordinate(lat, lon)
	if err != nil {
		return Normalized{}, err
	}
	return Normalize(p), nil
}

// FormatDegrees formats v with exactly QueryPrecision decimals, rounding ties
// away from zero. Rounding works on the shortest decimal representation of v so
// that an input like 37.774955 rounds the way it was written.
func FormatDegrees(v float64) string {
	digits := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	intPart, frac, _ := strings.Cut(digits, ".")
	for len(frac) <= QueryPrecision {
		frac += "0"
	}

	kept := []byte(intPart + frac[:QueryPrecision])
	if frac[QueryPrecision] >= '5' {
		kept = increment(kept)
	}

	split := len(kept) - QueryPrecision
	out := string(kept[:split]) + "." + string(kept[split:])
	if v < 0 && strings.Trim(string(kept), "0") != "" {
		out = "-" + out
	}
	return out
}

// increment adds one to a string of decimal digits
func increment(digits []byte) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}

// PrefixOf drops the last decimal of a query key
func PrefixOf(key string) string {
	if key == "" {
		return key
	}
	return key[:len(key)-1]
}
