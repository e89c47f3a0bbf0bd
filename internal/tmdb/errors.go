package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// UpstreamError is returned for every failed TMDB call. StatusCode is zero when
// no HTTP response came back (timeout, connection refused, bad body).
type UpstreamError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Query      string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("tmdb %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("tmdb %s: %s", e.Endpoint, e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether TMDB answered 404 for the call behind err.
func IsNotFound(err error) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr) && upErr.StatusCode == http.StatusNotFound
}

// StatusCode extracts the upstream status code, 0 when err is not an UpstreamError
// or no response was received.
func StatusCode(err error) int {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.StatusCode
	}
	return 0
}
