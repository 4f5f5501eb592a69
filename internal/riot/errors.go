package riot

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrNotFound     = errors.New("not found (404)")
	ErrUnauthorized = errors.New("api key rejected (401)")
	ErrForbidden    = errors.New("api key forbidden (403)")
)

// StatusError carries a status payload returned by the API.
type StatusError struct {
	Code       int
	Message    string
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status code: %d", e.Code)
	}
	return fmt.Sprintf("status code: %d, message: %s", e.Code, e.Message)
}

// Unwrap maps well-known codes onto the package sentinels so callers can use errors.Is.
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	}
	return nil
}

// IsCredentialError reports whether err means the API key was rejected.
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}
