package ratelimit

import (
	"context"
	"fmt"
	"time"

	"aussieedu/edu-service/internal/app/edu/infrastructure"
	"aussieedu/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const serviceName = "edu-service"

// RedisLimiter - фиксированное окно через INCR + EXPIRE
// Счетчик общий для всех инстансов сервиса
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	period time.Duration
}

// NewRedisLimiter создает лимитер с фиксированным окном в Redis
func NewRedisLimiter(client *redis.Client, prefix string, limit int, period time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		period: period,
	}
}

// Allow увеличивает счетчик окна и сообщает, можно ли пропустить запрос
func (l *RedisLimiter) Allow(ctx context.Context, key string) (infrastructure.RateLimitResult, error) {
	redisKey := l.prefix + key

	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpIncr)
	count, err := l.client.Incr(ctx, redisKey).Result()
	timer.ObserveDuration()
	if err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpIncr)
		return infrastructure.RateLimitResult{}, fmt.Errorf("failed to increment rate counter: %w", err)
	}

	ttl, err := l.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpPTTL)
		return infrastructure.RateLimitResult{}, fmt.Errorf("failed to read rate counter ttl: %w", err)
	}

	// Первая попытка в окне или ключ остался без TTL
	if count == 1 || ttl < 0 {
		if err := l.client.PExpire(ctx, redisKey, l.period).Err(); err != nil {
			metrics.RecordRedisError(serviceName, metrics.RedisOpExpire)
			return infrastructure.RateLimitResult{}, fmt.Errorf("failed to set rate counter ttl: %w", err)
		}
		ttl = l.period
	}

	return newResult(l.limit, int(count), time.Now().Add(ttl)), nil
}
