package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter mantém um token bucket por chave: rajada de `limit`
// tentativas, reabastecido ao longo de `window`.
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	every    rate.Limit
	window   time.Duration
	now      func() time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		every:    rate.Every(window / time.Duration(limit)),
		window:   window,
		now:      time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(now)

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.every, l.limit)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1), nil
}

// evict descarta chaves paradas há mais de uma janela; nesse ponto o
// bucket já estaria cheio de novo.
func (l *MemoryLimiter) evict(now time.Time) {
	for k, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.window {
			delete(l.visitors, k)
		}
	}
}

var _ Limiter = (*MemoryLimiter)(nil)
