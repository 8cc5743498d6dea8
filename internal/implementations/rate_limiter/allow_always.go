package ratelimiter

import (
	"context"
	ratelimiter "pushreminder/internal/core/domain/rate_limiter"
)

// AllowAlways is used when no Redis instance is configured.
type AllowAlways struct{}

func NewAllowAlways() *AllowAlways {
	return &AllowAlways{}
}

func (r *AllowAlways) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	return ratelimiter.Allowed()
}
