package handler

import (
	"net/http"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const testimonialNotFound = "Testimonial not found"

// TestimonialHandler - HTTP обработчики отзывов выпускников
type TestimonialHandler struct {
	testimonialService service.TestimonialServiceInterface
	validator          *validator.Validate
}

// NewTestimonialHandler создает обработчик testimonials
func NewTestimonialHandler(testimonialService service.TestimonialServiceInterface) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonialService,
		validator:          newValidator(),
	}
}

// CreateTestimonial обрабатывает POST /api/testimonials
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req entity.CreateTestimonialRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	testimonial, err := h.testimonialService.CreateTestimonial(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, testimonialNotFound)
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

// ListTestimonials обрабатывает GET /api/testimonials
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.ListTestimonials(c.Request.Context())
	if err != nil {
		respondError(c, err, testimonialNotFound)
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

// ListFeaturedTestimonials обрабатывает GET /api/testimonials/featured
func (h *TestimonialHandler) ListFeaturedTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.ListFeaturedTestimonials(c.Request.Context())
	if err != nil {
		respondError(c, err, testimonialNotFound)
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

// GetTestimonial обрабатывает GET /api/testimonials/:id
func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	testimonial, err := h.testimonialService.GetTestimonial(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, testimonialNotFound)
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

// UpdateTestimonial обрабатывает PATCH /api/testimonials/:id
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	var req entity.UpdateTestimonialRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	testimonial, err := h.testimonialService.UpdateTestimonial(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, testimonialNotFound)
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

// DeleteTestimonial обрабатывает DELETE /api/testimonials/:id
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.testimonialService.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, testimonialNotFound)
		return
	}

	c.JSON(http.StatusOK, entity.MessageResponse{Message: "Testimonial deleted successfully"})
}
