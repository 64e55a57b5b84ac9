package ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisPrefix = "rl:login:"

// RedisLimiter é uma janela fixa: INCR na chave e EXPIRE na primeira batida.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := redisPrefix + key

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return true, err
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return true, err
		}
	}

	return n <= int64(l.limit), nil
}

var _ Limiter = (*RedisLimiter)(nil)
