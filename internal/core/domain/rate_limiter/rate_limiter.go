package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type Interval struct {
	value int
}

var (
	Minute = Interval{}
	Hour   = Interval{value: 1}
)

// Bucket returns the counter key for the window containing now and the
// lifetime of that counter.
func (i Interval) Bucket(key string, now time.Time) (string, time.Duration) {
	switch i {
	case Hour:
		return fmt.Sprintf("%s::h%d", key, now.Hour()), time.Hour
	case Minute:
		return fmt.Sprintf("%s::m%d", key, now.Minute()), time.Minute
	default:
		panic("invalid rate limiting interval")
	}
}

type Limit struct {
	Value    uint16
	Interval Interval
}

type Result struct {
	IsAllowed bool
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
