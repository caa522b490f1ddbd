package handler

import (
	"net/http"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const inquiryNotFound = "Inquiry not found"

// InquiryHandler - HTTP обработчики заявок
type InquiryHandler struct {
	inquiryService service.InquiryServiceInterface
	validator      *validator.Validate
}

// NewInquiryHandler создает обработчик заявок
func NewInquiryHandler(inquiryService service.InquiryServiceInterface) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
		validator:      newValidator(),
	}
}

// CreateInquiry обрабатывает POST /api/inquiries
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req entity.CreateInquiryRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	inquiry, err := h.inquiryService.CreateInquiry(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, inquiryNotFound)
		return
	}

	c.JSON(http.StatusCreated, inquiry)
}

// ListInquiries обрабатывает GET /api/inquiries
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.inquiryService.ListInquiries(c.Request.Context())
	if err != nil {
		respondError(c, err, inquiryNotFound)
		return
	}

	c.JSON(http.StatusOK, inquiries)
}

// ListInquiriesByEmail обрабатывает GET /api/inquiries/user/:email
func (h *InquiryHandler) ListInquiriesByEmail(c *gin.Context) {
	inquiries, err := h.inquiryService.ListInquiriesByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, inquiryNotFound)
		return
	}

	c.JSON(http.StatusOK, inquiries)
}

// GetInquiry обрабатывает GET /api/inquiries/:id
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	inquiry, err := h.inquiryService.GetInquiry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, inquiryNotFound)
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

// UpdateInquiry обрабатывает PATCH /api/inquiries/:id
func (h *InquiryHandler) UpdateInquiry(c *gin.Context) {
	var req entity.UpdateInquiryRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	inquiry, err := h.inquiryService.UpdateInquiry(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, inquiryNotFound)
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

// DeleteInquiry обрабатывает DELETE /api/inquiries/:id
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	if err := h.inquiryService.DeleteInquiry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, inquiryNotFound)
		return
	}

	c.JSON(http.StatusOK, entity.MessageResponse{Message: "Inquiry deleted successfully"})
}
