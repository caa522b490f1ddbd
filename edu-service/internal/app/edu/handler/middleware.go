package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/infrastructure"
	"aussieedu/pkg/logger"
	"aussieedu/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "user_id"
	emailKey    = "email"
	identityKey = "identity"

	rateLimitMessage = "Too many reviews created. Please try again later."
)

// AuthMiddleware проверяет bearer токен провайдера идентификации
type AuthMiddleware struct {
	verifier infrastructure.IdentityVerifier
}

// NewAuthMiddleware создает middleware аутентификации поверх verifier
func NewAuthMiddleware(verifier infrastructure.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate кладет подтвержденного пользователя в контекст Gin
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithMessage(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		// Формат "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abortWithMessage(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		identity, err := m.verifier.Verify(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			logger.Debug().Err(err).Msg("Token verification failed")
			abortWithMessage(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(userIDKey, identity.UserID)
		c.Set(emailKey, identity.Email)
		c.Set(identityKey, identity)

		c.Next()
	}
}

// RateLimitMiddleware ограничивает создание отзывов на пользователя
// Должен стоять после Authenticate: ключ - user_id
type RateLimitMiddleware struct {
	limiter infrastructure.RateLimiter
}

// NewRateLimitMiddleware создает middleware лимита отзывов
func NewRateLimitMiddleware(limiter infrastructure.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit возвращает 429, когда пользователь исчерпал лимит окна
// Ошибка лимитера не блокирует запрос
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(userIDKey)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		result, err := m.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// Хранилище лимитера недоступно - пропускаем запрос
			logger.Warn().Err(err).Str("key", key).Msg("Rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			metrics.ReviewRateLimited.Inc()
			retryAfter := int(math.Ceil(time.Until(result.ResetAt).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			abortWithMessage(c, http.StatusTooManyRequests, rateLimitMessage)
			return
		}

		c.Next()
	}
}

// currentIdentity возвращает пользователя, установленного AuthMiddleware
func currentIdentity(c *gin.Context) *entity.Identity {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := value.(*entity.Identity)
	return identity
}

func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, entity.ErrorResponse{Message: message})
}
