package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrSourceUnavailable is returned when a wrapper has no source to delegate to.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrResponseTooLarge is returned when the page exceeds the body cap.
	ErrResponseTooLarge = errors.New("response body too large")
)

// StatusError captures a non-200 response from the upstream site.
type StatusError struct {
	Source     string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Source, e.StatusCode, e.Body)
}

// RateLimitError captures rate limit responses from the upstream site.
type RateLimitError struct {
	Source     string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "source rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

// IsRetryable reports whether another attempt could succeed. Client errors other
// than 408 and 429, oversized pages and cancellation are final.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrSourceUnavailable) || errors.Is(err, ErrResponseTooLarge) {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	if st, ok := AsStatusError(err); ok {
		if st.StatusCode == http.StatusRequestTimeout {
			return true
		}
		return st.StatusCode < 400 || st.StatusCode >= 500
	}
	return true
}
