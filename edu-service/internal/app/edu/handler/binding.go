package handler

import (
	"net/http"
	"reflect"
	"strings"

	"aussieedu/edu-service/internal/app/edu/entity"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// newValidator называет поля в ошибках по json тегу (consultationId, а не ConsultationID)
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// bindJSON читает тело запроса и проверяет validate теги
// Неизвестные поля отклоняются (см. binding.EnableDecoderDisallowUnknownFields в SetupRoutes)
func bindJSON(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Message: "Invalid request body: " + err.Error()})
		return false
	}

	if err := v.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Message: formatValidationError(err)})
		return false
	}

	return true
}
