package llm

import (
	"context"
	"time"
)

// TimeoutProvider is a decorator that puts a deadline on each request.
// It wraps the retry layer, so the limit covers the whole attempt chain,
// backoff waits included.
type TimeoutProvider struct {
	inner Provider
	limit time.Duration
}

// WithTimeout wraps a Provider so every Generate call carries a deadline.
// A non-positive limit returns the provider unwrapped.
func WithTimeout(p Provider, limit time.Duration) Provider {
	if limit <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, limit: limit}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
