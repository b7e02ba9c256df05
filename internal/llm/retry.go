package llm

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider is a decorator that retries rate-limited requests with
// exponential backoff and jitter. Failures the predicate does not recognize
// propagate immediately; after exhausting retries the last failure is
// returned.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.Retryable == nil {
		cfg.Retryable = RateLimitShaped
	}
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !r.config.Retryable(err) {
			return nil, err
		}

		// Last attempt, no sleep before returning the error.
		if attempt == r.config.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff computes the wait before the next attempt: exponential in the
// attempt number, multiplicative jitter in [0.5, 1.5), capped at MaxWait.
// The cap applies after jitter, so no wait ever exceeds MaxWait.
func (r *RetryProvider) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.Jitter {
		wait *= 0.5 + rand.Float64()
	}
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}
	return time.Duration(wait)
}
