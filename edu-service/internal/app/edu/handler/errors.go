package handler

import (
	"errors"
	"net/http"
	"strings"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/service"
	"aussieedu/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError переводит ошибку сервиса в HTTP ответ {"message": ...}
// notFound - текст для 404, например "Review not found"
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Message: validationMessage(err)})
	case errors.Is(err, service.ErrDuplicateReview):
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Message: "You have already reviewed this consultation"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, entity.ErrorResponse{Message: notFound})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Message: "Authentication required"})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, entity.ErrorResponse{Message: rateLimitMessage})
	default:
		_ = c.Error(err)
		logger.Error().
			Err(err).
			Str("request_id", c.GetString(logger.RequestIDKey)).
			Str("path", c.FullPath()).
			Msg("Request failed")
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Message: "Internal server error"})
	}
}

// validationMessage убирает общий префикс "validation failed: "
func validationMessage(err error) string {
	msg := err.Error()
	prefix := service.ErrValidation.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}

func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				return fieldError.Field() + " is required"
			case "oneof":
				return fieldError.Field() + " must be one of: " + fieldError.Param()
			case "max":
				return fieldError.Field() + " must be at most " + fieldError.Param()
			case "min":
				return fieldError.Field() + " must be at least " + fieldError.Param()
			default:
				return fieldError.Field() + " is " + fieldError.Tag()
			}
		}
	}
	return "Validation failed"
}
