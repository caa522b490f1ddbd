package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	serviceName          = "edu-service"
	universitiesCacheKey = "universities:all"
	universitiesPrefix   = "universities"
)

// RedisUniversityCache хранит список университетов одним JSON значением
type RedisUniversityCache struct {
	client *redis.Client
}

// NewRedisUniversityCache создает кеш списка университетов в Redis
func NewRedisUniversityCache(client *redis.Client) *RedisUniversityCache {
	return &RedisUniversityCache{client: client}
}

// SetUniversities сохраняет список университетов с TTL
func (r *RedisUniversityCache) SetUniversities(ctx context.Context, universities []entity.University, ttl time.Duration) error {
	data, err := json.Marshal(universities)
	if err != nil {
		return fmt.Errorf("failed to marshal universities: %w", err)
	}

	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpSet)
	defer timer.ObserveDuration()

	if err := r.client.Set(ctx, universitiesCacheKey, data, ttl).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpSet)
		return fmt.Errorf("failed to set universities in cache: %w", err)
	}

	return nil
}

// GetUniversities возвращает nil без ошибки при промахе кеша
func (r *RedisUniversityCache) GetUniversities(ctx context.Context) ([]entity.University, error) {
	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpGet)
	defer timer.ObserveDuration()

	data, err := r.client.Get(ctx, universitiesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheMiss(serviceName, universitiesPrefix)
			return nil, nil
		}
		metrics.RecordRedisError(serviceName, metrics.RedisOpGet)
		return nil, fmt.Errorf("failed to get universities from cache: %w", err)
	}

	var universities []entity.University
	if err := json.Unmarshal(data, &universities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal universities: %w", err)
	}

	metrics.RecordCacheHit(serviceName, universitiesPrefix)
	return universities, nil
}

func (r *RedisUniversityCache) DeleteUniversities(ctx context.Context) error {
	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpDel)
	defer timer.ObserveDuration()

	if err := r.client.Del(ctx, universitiesCacheKey).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpDel)
		return fmt.Errorf("failed to delete universities from cache: %w", err)
	}
	return nil
}

// NoopUniversityCache - вариант без Redis, всегда промах
type NoopUniversityCache struct{}

func (NoopUniversityCache) GetUniversities(ctx context.Context) ([]entity.University, error) {
	return nil, nil
}

func (NoopUniversityCache) SetUniversities(ctx context.Context, universities []entity.University, ttl time.Duration) error {
	return nil
}

func (NoopUniversityCache) DeleteUniversities(ctx context.Context) error {
	return nil
}
