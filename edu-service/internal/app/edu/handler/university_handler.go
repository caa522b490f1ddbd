package handler

import (
	"net/http"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const universityNotFound = "University not found"

// UniversityHandler - HTTP обработчики каталога университетов
type UniversityHandler struct {
	universityService service.UniversityServiceInterface
	validator         *validator.Validate
}

// NewUniversityHandler создает обработчик университетов
func NewUniversityHandler(universityService service.UniversityServiceInterface) *UniversityHandler {
	return &UniversityHandler{
		universityService: universityService,
		validator:         newValidator(),
	}
}

// CreateUniversity обрабатывает POST /api/universities
func (h *UniversityHandler) CreateUniversity(c *gin.Context) {
	var req entity.CreateUniversityRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	university, err := h.universityService.CreateUniversity(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, universityNotFound)
		return
	}

	c.JSON(http.StatusCreated, university)
}

// ListUniversities обрабатывает GET /api/universities (с кешированием)
func (h *UniversityHandler) ListUniversities(c *gin.Context) {
	universities, err := h.universityService.ListUniversities(c.Request.Context())
	if err != nil {
		respondError(c, err, universityNotFound)
		return
	}

	c.JSON(http.StatusOK, universities)
}

// GetUniversity обрабатывает GET /api/universities/:id
func (h *UniversityHandler) GetUniversity(c *gin.Context) {
	university, err := h.universityService.GetUniversity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, universityNotFound)
		return
	}

	c.JSON(http.StatusOK, university)
}

// UpdateUniversity обрабатывает PATCH /api/universities/:id
func (h *UniversityHandler) UpdateUniversity(c *gin.Context) {
	var req entity.UpdateUniversityRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	university, err := h.universityService.UpdateUniversity(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, universityNotFound)
		return
	}

	c.JSON(http.StatusOK, university)
}

// DeleteUniversity обрабатывает DELETE /api/universities/:id
func (h *UniversityHandler) DeleteUniversity(c *gin.Context) {
	if err := h.universityService.DeleteUniversity(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, universityNotFound)
		return
	}

	c.JSON(http.StatusOK, entity.MessageResponse{Message: "University deleted successfully"})
}
