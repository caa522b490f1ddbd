package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(limit int, period time.Duration, now *time.Time) *MemoryLimiter {
	l := NewMemoryLimiter(limit, period)
	l.nowFunc = func() time.Time { return *now }
	return l
}

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(5, 24*time.Hour, &now)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		res, err := l.Allow(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "attempt %d", i)
		assert.Equal(t, 5-i, res.Remaining)
		assert.Equal(t, now.Add(24*time.Hour), res.ResetAt)
	}

	res, err := l.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, 5, res.Limit)
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(1, time.Hour, &now)
	ctx := context.Background()

	res, _ := l.Allow(ctx, "user-1")
	assert.True(t, res.Allowed)
	res, _ = l.Allow(ctx, "user-1")
	assert.False(t, res.Allowed)

	res, _ = l.Allow(ctx, "user-2")
	assert.True(t, res.Allowed)
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(2, time.Hour, &now)
	ctx := context.Background()

	l.Allow(ctx, "user-1")
	l.Allow(ctx, "user-1")
	res, _ := l.Allow(ctx, "user-1")
	assert.False(t, res.Allowed)

	// Отклоненные попытки не продлевают окно
	now = now.Add(59 * time.Minute)
	res, _ = l.Allow(ctx, "user-1")
	assert.False(t, res.Allowed)

	now = now.Add(time.Minute)
	res, _ = l.Allow(ctx, "user-1")
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(5, time.Hour, &now)
	ctx := context.Background()

	l.Allow(ctx, "user-1")
	now = now.Add(30 * time.Minute)
	l.Allow(ctx, "user-2")
	assert.Equal(t, 2, l.Len())

	now = now.Add(31 * time.Minute)
	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 1, l.Len())

	now = now.Add(time.Hour)
	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 0, l.Len())
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	l := NewMemoryLimiter(50, time.Hour)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, _ := l.Allow(ctx, "user-1")
			if res.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
