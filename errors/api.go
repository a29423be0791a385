package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the Railway API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Response not successful status=%d", e.StatusCode)
	}
	return fmt.Sprintf("Response not successful status=%d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status carried anywhere in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}
