package apperr

import (
	"errors"
	"net/http"
)

// Error kinds shared by every layer. Callers wrap them with fmt.Errorf and %w
// and test for them with errors.Is.
var (
	// ErrInvalidCoordinate marks input that is not a finite decimal number,
	// or an address that has no coordinates to measure against.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrStoreUnavailable marks any failure of the cache store.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrProviderError marks a failed or malformed upstream geocoding call.
	ErrProviderError = errors.New("provider error")
)

// HTTPStatus maps an error to the status code returned to clients
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidCoordinate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
