package infrastructure

import (
	"context"
	"mime/multipart"
	"time"

	"aussieedu/edu-service/internal/app/edu/entity"
)

// MessagePublisher интерфейс для отправки сообщений в очередь (Kafka)
// Используется для dependency injection и упрощения тестирования
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}

// UniversityCache - кеш списка университетов
// GetUniversities возвращает nil без ошибки при промахе
type UniversityCache interface {
	GetUniversities(ctx context.Context) ([]entity.University, error)
	SetUniversities(ctx context.Context, universities []entity.University, ttl time.Duration) error
	DeleteUniversities(ctx context.Context) error
}

// RateLimitResult - решение лимитера по одному запросу
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RateLimiter считает попытки по ключу в фиксированном окне
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

// ImageStore сохраняет картинку отзыва и возвращает ее URL
// Delete удаляет ранее сохраненную картинку по URL, который вернул Store
type ImageStore interface {
	Store(ctx context.Context, userID string, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, url string) error
}

// IdentityVerifier проверяет bearer токен провайдера идентификации
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}
