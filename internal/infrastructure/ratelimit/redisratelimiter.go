package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/doramashorts/backend/internal/shared/biztime"
)

// RedisRateLimiter is a sliding-window limiter over a sorted set of request
// times (unix millis) per key.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
		now:    biztime.NowUTC,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	redisKey := l.redisKey(key)
	windowStart := now.Add(-l.window).UnixMilli()
	nowMilli := now.UnixMilli()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	oldest := pipe.ZRangeWithScores(ctx, redisKey, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("failed to read rate limit window: %w", err)
	}

	count := int(zcard.Val())
	if count >= l.limit {
		retry := l.window
		if z := oldest.Val(); len(z) > 0 {
			retry = time.Duration(int64(z[0].Score)+l.window.Milliseconds()-nowMilli) * time.Millisecond
		}
		return Decision{Allowed: false, Limit: l.limit, Remaining: 0, RetryAfter: max(retry, time.Second)}, nil
	}

	pipe = l.client.TxPipeline()
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowMilli), Member: uuid.NewString()})
	pipe.Expire(ctx, redisKey, l.window+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("failed to record request: %w", err)
	}

	return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit - count - 1}, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) redisKey(key string) string {
	return fmt.Sprintf("ratelimit:%s:%s", key, l.window)
}
