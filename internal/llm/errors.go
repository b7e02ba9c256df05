package llm

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unavailable: %v", e.Err)
	}
	return "provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the model returned no usable text.
type ErrEmptyResponse struct {
	Err error
}

func (e *ErrEmptyResponse) Error() string {
	return fmt.Sprintf("empty model response: %v", e.Err)
}

func (e *ErrEmptyResponse) Unwrap() error { return e.Err }

// RateLimitShaped reports whether an error looks like a rate limit: either
// the typed ErrRateLimit, or error text carrying a 429 status code or the
// phrase "rate limit". The text check keeps the predicate portable across
// providers whose SDK errors are not mapped to the typed form.
func RateLimitShaped(err error) bool {
	if err == nil {
		return false
	}
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "rate limit")
}
