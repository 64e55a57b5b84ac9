package ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/loja-web/internal/config"
)

// Limiter decide se mais uma tentativa é aceita para a chave.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// New usa Redis quando REDIS_ADDR responde; caso contrário cai para o
// limitador em memória do processo.
func New(cfg *config.Config) Limiter {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err == nil {
			log.Info().Str("addr", cfg.RedisAddr).Msg("login rate limit backed by redis")
			return NewRedisLimiter(client, cfg.LoginRateLimit, cfg.LoginRateWindow)
		} else {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, using in-memory rate limit")
			_ = client.Close()
		}
	}
	return NewMemoryLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
}
