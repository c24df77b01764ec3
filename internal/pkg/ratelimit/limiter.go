package ratelimit

import (
	"context"
	"fmt"

	"github.com/go-redis/redis_rate/v10"
)

type Allower interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// PerMinute is a distributed limiter allowing rate events per minute for each key.
type PerMinute struct {
	limiter Allower
	rate    int
}

func NewPerMinute(limiter Allower, rate int) *PerMinute {
	return &PerMinute{
		limiter: limiter,
		rate:    rate,
	}
}

func (l *PerMinute) Allow(ctx context.Context, key string) (bool, error) {
	res, err := l.limiter.Allow(ctx, fmt.Sprintf("limit:%s", key), redis_rate.PerMinute(l.rate))
	if err != nil {
		return false, err
	}

	return res.Allowed > 0, nil
}
