package ratelimiter

import (
	"context"
	ratelimiter "pushreminder/internal/core/domain/rate_limiter"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowAlways(t *testing.T) {
	limiter := NewAllowAlways()
	limit := ratelimiter.Limit{Value: 0, Interval: ratelimiter.Minute}

	for i := 0; i < 3; i++ {
		require.True(t, limiter.CheckLimit(context.Background(), "key", limit).IsAllowed)
	}
}
