package fetcher

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the API responds with a non-2xx HTTP status.
// Callers use IsNotFound to render a "not found" state instead of a failure.
type APIError struct {
	StatusCode int
	Path       string
}

func (e *APIError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("catalog api status %d", e.StatusCode)
	}
	return fmt.Sprintf("catalog api status %d for %s", e.StatusCode, e.Path)
}

// IsNotFound reports whether err is an APIError with HTTP 404.
func IsNotFound(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}
