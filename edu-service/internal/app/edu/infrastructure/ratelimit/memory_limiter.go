package ratelimit

import (
	"context"
	"sync"
	"time"

	"aussieedu/edu-service/internal/app/edu/infrastructure"
)

// window - счетчик попыток одного ключа в текущем окне
type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter - лимитер с фиксированным окном в памяти процесса
// Подходит для одного инстанса; для нескольких используется RedisLimiter
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	nowFunc func() time.Time
}

// NewMemoryLimiter создает лимитер с фиксированным окном в памяти процесса
func NewMemoryLimiter(limit int, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		nowFunc: time.Now,
	}
}

// Allow учитывает попытку и сообщает, укладывается ли она в лимит
// Отклоненные попытки тоже считаются, окно от этого не сдвигается
func (l *MemoryLimiter) Allow(ctx context.Context, key string) (infrastructure.RateLimitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.period)}
		l.windows[key] = w
	}
	w.count++

	return newResult(l.limit, w.count, w.resetAt), nil
}

// Sweep удаляет окна, время которых истекло, и возвращает их количество
func (l *MemoryLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	removed := 0
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// Len - число отслеживаемых ключей
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

func newResult(limit, count int, resetAt time.Time) infrastructure.RateLimitResult {
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return infrastructure.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}
