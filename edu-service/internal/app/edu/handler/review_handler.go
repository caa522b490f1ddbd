package handler

import (
	"net/http"
	"strconv"
	"strings"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// maxMultipartMemory - лимит памяти на разбор multipart, остальное уходит во временные файлы
const maxMultipartMemory = 10 << 20

// ReviewHandler - HTTP обработчики отзывов
type ReviewHandler struct {
	reviewService service.ReviewServiceInterface
	validator     *validator.Validate
}

// NewReviewHandler создает обработчик отзывов
func NewReviewHandler(reviewService service.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     newValidator(),
	}
}

// SubmitReview принимает multipart/form-data (поля + images[]) или JSON без картинок
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req entity.SubmitReviewRequest

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Message: "Invalid multipart form"})
			return
		}
		defer form.RemoveAll()

		req.ConsultationID = formValue(form.Value, "consultationId")
		req.Content = formValue(form.Value, "content")
		if raw := formValue(form.Value, "rating"); raw != "" {
			rating, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, entity.ErrorResponse{Message: "rating must be a number"})
				return
			}
			req.Rating = rating
		}
		req.Images = form.File["images"]
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	review, err := h.reviewService.SubmitReview(c.Request.Context(), currentIdentity(c), &req)
	if err != nil {
		respondError(c, err, "Review not found")
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListReviews - одобренные отзывы с фильтрами и пагинацией
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	filter := entity.ReviewListFilter{
		ConsultationID: c.Query("consultationId"),
		Sort:           c.Query("sort"),
		Order:          c.Query("order"),
	}

	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Message: "rating must be a number"})
			return
		}
		filter.Rating = &rating
	}

	var ok bool
	if filter.Page, ok = queryInt(c, "page"); !ok {
		return
	}
	if filter.Limit, ok = queryInt(c, "limit"); !ok {
		return
	}

	result, err := h.reviewService.ListApprovedReviews(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Review not found")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReview обрабатывает GET /api/reviews/:id
func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.reviewService.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Review not found")
		return
	}

	c.JSON(http.StatusOK, review)
}

// VoteReview обрабатывает POST /api/reviews/:id/vote
func (h *ReviewHandler) VoteReview(c *gin.Context) {
	var req entity.VoteReviewRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	review, err := h.reviewService.VoteReview(c.Request.Context(), c.Param("id"), req.Type)
	if err != nil {
		respondError(c, err, "Review not found")
		return
	}

	c.JSON(http.StatusOK, review)
}

// ReportReview обрабатывает POST /api/reviews/:id/report
// Требует аутентификации
func (h *ReviewHandler) ReportReview(c *gin.Context) {
	var req entity.ReportReviewRequest
	// Тело необязательно: жалоба без причины допустима
	if c.Request.ContentLength != 0 && !bindJSON(c, h.validator, &req) {
		return
	}

	review, err := h.reviewService.ReportReview(c.Request.Context(), currentIdentity(c), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err, "Review not found")
		return
	}

	c.JSON(http.StatusOK, review)
}

// ModerateReview обрабатывает PATCH /api/reviews/:id/status
func (h *ReviewHandler) ModerateReview(c *gin.Context) {
	var req entity.ModerateReviewRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	review, err := h.reviewService.ModerateReview(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Review not found")
		return
	}

	c.JSON(http.StatusOK, review)
}

func formValue(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// queryInt читает необязательный целый параметр; 0 если параметра нет
func queryInt(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Message: key + " must be an integer"})
		return 0, false
	}
	return value, true
}
