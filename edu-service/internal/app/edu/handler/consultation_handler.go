package handler

import (
	"net/http"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const consultationNotFound = "Consultation not found"

// ConsultationHandler - HTTP обработчики записи на консультации
type ConsultationHandler struct {
	consultationService service.ConsultationServiceInterface
	validator           *validator.Validate
}

// NewConsultationHandler создает обработчик консультаций
func NewConsultationHandler(consultationService service.ConsultationServiceInterface) *ConsultationHandler {
	return &ConsultationHandler{
		consultationService: consultationService,
		validator:           newValidator(),
	}
}

// BookConsultation обрабатывает POST /api/consultations
func (h *ConsultationHandler) BookConsultation(c *gin.Context) {
	var req entity.CreateConsultationRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	consultation, err := h.consultationService.BookConsultation(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, consultationNotFound)
		return
	}

	c.JSON(http.StatusCreated, consultation)
}

// ListConsultations обрабатывает GET /api/consultations
func (h *ConsultationHandler) ListConsultations(c *gin.Context) {
	consultations, err := h.consultationService.ListConsultations(c.Request.Context())
	if err != nil {
		respondError(c, err, consultationNotFound)
		return
	}

	c.JSON(http.StatusOK, consultations)
}

// GetConsultation обрабатывает GET /api/consultations/:id
func (h *ConsultationHandler) GetConsultation(c *gin.Context) {
	consultation, err := h.consultationService.GetConsultation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, consultationNotFound)
		return
	}

	c.JSON(http.StatusOK, consultation)
}

// UpdateConsultation обрабатывает PATCH /api/consultations/:id
// Меняются только переданные поля
func (h *ConsultationHandler) UpdateConsultation(c *gin.Context) {
	var req entity.UpdateConsultationRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	consultation, err := h.consultationService.UpdateConsultation(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, consultationNotFound)
		return
	}

	c.JSON(http.StatusOK, consultation)
}

// DeleteConsultation обрабатывает DELETE /api/consultations/:id
func (h *ConsultationHandler) DeleteConsultation(c *gin.Context) {
	if err := h.consultationService.DeleteConsultation(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, consultationNotFound)
		return
	}

	c.JSON(http.StatusOK, entity.MessageResponse{Message: "Consultation deleted successfully"})
}
