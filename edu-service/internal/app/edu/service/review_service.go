package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/infrastructure"
	"aussieedu/edu-service/internal/app/edu/repository"
	"aussieedu/pkg/logger"
	"aussieedu/pkg/metrics"
)

const (
	MinRating        = 0.5
	MaxRating        = 5.0
	MinContentLength = 50
	MaxContentLength = 1000
	MaxReviewImages  = 5
	MaxReportReason  = 500
	DefaultPageSize  = 10
	MaxPageSize      = 100
	defaultSortField = "createdAt"
	orderAscending   = "asc"
	orderDescending  = "desc"
)

// Псевдонимы сортировки, которые понимает фронтенд
var sortAliases = map[string]string{
	"newest":  "createdAt",
	"helpful": "helpfulVotes",
	"rating":  "rating",
}

var sortableFields = map[string]bool{
	"createdAt":       true,
	"updatedAt":       true,
	"rating":          true,
	"helpfulVotes":    true,
	"notHelpfulVotes": true,
}

var voteFields = map[string]string{
	entity.VoteHelpful:    "helpfulVotes",
	entity.VoteNotHelpful: "notHelpfulVotes",
}

// ReviewServiceInterface - бизнес-логика отзывов о консультациях
type ReviewServiceInterface interface {
	SubmitReview(ctx context.Context, identity *entity.Identity, req *entity.SubmitReviewRequest) (*entity.Review, error)
	GetReview(ctx context.Context, id string) (*entity.Review, error)
	ListApprovedReviews(ctx context.Context, filter entity.ReviewListFilter) (*entity.ReviewListResponse, error)
	VoteReview(ctx context.Context, id string, voteType string) (*entity.Review, error)
	ReportReview(ctx context.Context, identity *entity.Identity, id string, reason string) (*entity.Review, error)
	ModerateReview(ctx context.Context, id string, status string) (*entity.Review, error)
}

// ReviewService обрабатывает бизнес-логику отзывов
// Координирует работу репозитория, хранилища картинок и Kafka
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	imageStore infrastructure.ImageStore
	publisher  infrastructure.MessagePublisher
	nowFunc    func() time.Time
}

// NewReviewService создает сервис отзывов
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	imageStore infrastructure.ImageStore,
	publisher infrastructure.MessagePublisher,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		imageStore: imageStore,
		publisher:  publisher,
		nowFunc:    time.Now,
	}
}

// SubmitReview создает отзыв в статусе pending
// Повторный отзыв на ту же консультацию отсекает уникальный индекс при вставке
func (s *ReviewService) SubmitReview(ctx context.Context, identity *entity.Identity, req *entity.SubmitReviewRequest) (*entity.Review, error) {
	if identity == nil || identity.UserID == "" {
		return nil, ErrUnauthorized
	}

	consultationID := strings.TrimSpace(req.ConsultationID)
	if consultationID == "" {
		return nil, fmt.Errorf("%w: consultationId is required", ErrValidation)
	}
	if req.Rating == 0 {
		return nil, fmt.Errorf("%w: rating is required", ErrValidation)
	}
	if err := ValidateRating(req.Rating); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if n := utf8.RuneCountInString(content); n < MinContentLength || n > MaxContentLength {
		return nil, fmt.Errorf("%w: content must be between %d and %d characters", ErrValidation, MinContentLength, MaxContentLength)
	}

	if len(req.Images) > MaxReviewImages {
		return nil, fmt.Errorf("%w: at most %d images are allowed", ErrValidation, MaxReviewImages)
	}

	for _, file := range req.Images {
		if strings.TrimSpace(file.Filename) == "" {
			return nil, fmt.Errorf("%w: image filename is required", ErrValidation)
		}
	}

	images := make([]entity.ReviewImage, 0, len(req.Images))
	for _, file := range req.Images {
		url, err := s.imageStore.Store(ctx, identity.UserID, file)
		if err != nil {
			s.discardImages(ctx, images)
			return nil, fmt.Errorf("failed to store review image: %w", err)
		}
		images = append(images, entity.ReviewImage{URL: url, Caption: ""})
	}

	now := s.nowFunc().UTC()
	review := &entity.Review{
		UserID:           identity.UserID,
		ConsultationID:   consultationID,
		Rating:           req.Rating,
		Content:          content,
		Images:           images,
		VerifiedPurchase: false,
		Status:           entity.ReviewStatusPending,
		Reports:          []entity.ReviewReport{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		// Отзыв не сохранен - загруженные картинки больше никому не нужны
		s.discardImages(ctx, images)
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	metrics.ReviewsSubmitted.Inc()
	metrics.ReviewsRating.Observe(review.Rating)

	publishEvent(ctx, s.publisher, entity.SiteEvent{
		EventType: entity.EventReviewSubmitted,
		EntityID:  review.ID.Hex(),
		UserID:    identity.UserID,
		Email:     identity.Email,
		Payload: map[string]string{
			"consultation_id": consultationID,
			"rating":          formatRating(review.Rating),
		},
	})

	return review, nil
}

// discardImages удаляет уже загруженные картинки, если отзыв не удалось сохранить
// Запрос мог быть отменен, поэтому удаление идет на контексте без отмены
func (s *ReviewService) discardImages(ctx context.Context, images []entity.ReviewImage) {
	cleanupCtx := context.WithoutCancel(ctx)
	for _, image := range images {
		if err := s.imageStore.Delete(cleanupCtx, image.URL); err != nil {
			logger.Warn().Err(err).Str("url", image.URL).Msg("Failed to delete orphaned review image")
		}
	}
}

// GetReview получает отзыв по ID
func (s *ReviewService) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get review")
	}
	return review, nil
}

// ListApprovedReviews возвращает страницу одобренных отзывов
// Фильтр по статусу approved добавляется всегда и не зависит от параметров
func (s *ReviewService) ListApprovedReviews(ctx context.Context, filter entity.ReviewListFilter) (*entity.ReviewListResponse, error) {
	sortField, err := resolveSortField(filter.Sort)
	if err != nil {
		return nil, err
	}

	sortDesc := true
	switch strings.ToLower(filter.Order) {
	case "", orderDescending:
	case orderAscending:
		sortDesc = false
	default:
		return nil, fmt.Errorf("%w: order must be asc or desc", ErrValidation)
	}

	if filter.Rating != nil {
		if err := ValidateRating(*filter.Rating); err != nil {
			return nil, err
		}
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	// (page-1)*limit должен поместиться в int64, иначе MongoDB получит отрицательный skip
	if int64(page-1) > math.MaxInt64/int64(limit) {
		return nil, fmt.Errorf("%w: page is too large", ErrValidation)
	}

	reviews, total, err := s.reviewRepo.ListApproved(ctx, repository.ReviewQuery{
		Rating:         filter.Rating,
		ConsultationID: strings.TrimSpace(filter.ConsultationID),
		SortField:      sortField,
		SortDesc:       sortDesc,
		Skip:           int64(page-1) * int64(limit),
		Limit:          int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	if reviews == nil {
		reviews = []entity.Review{}
	}

	return &entity.ReviewListResponse{
		Reviews: reviews,
		Total:   total,
		Pages:   int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// VoteReview атомарно увеличивает один из счетчиков голосов
// Голоса не привязаны к пользователю и не дедуплицируются
func (s *ReviewService) VoteReview(ctx context.Context, id string, voteType string) (*entity.Review, error) {
	field, ok := voteFields[voteType]
	if !ok {
		return nil, fmt.Errorf("%w: vote type must be helpful or not-helpful", ErrValidation)
	}

	review, err := s.reviewRepo.IncrementVote(ctx, id, field)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to vote for review")
	}

	metrics.ReviewVotes.WithLabelValues(voteType).Inc()
	return review, nil
}

// ReportReview добавляет жалобу; статус отзыва при этом не меняется
func (s *ReviewService) ReportReview(ctx context.Context, identity *entity.Identity, id string, reason string) (*entity.Review, error) {
	if identity == nil || identity.UserID == "" {
		return nil, ErrUnauthorized
	}

	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) > MaxReportReason {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrValidation, MaxReportReason)
	}

	review, err := s.reviewRepo.AddReport(ctx, id, entity.ReviewReport{
		UserID:    identity.UserID,
		Reason:    reason,
		CreatedAt: s.nowFunc().UTC(),
	})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to report review")
	}

	metrics.ReviewReports.Inc()

	publishEvent(ctx, s.publisher, entity.SiteEvent{
		EventType: entity.EventReviewReported,
		EntityID:  review.ID.Hex(),
		UserID:    identity.UserID,
		Email:     identity.Email,
		Payload:   map[string]string{"reason": reason},
	})

	return review, nil
}

// ModerateReview меняет статус модерации отзыва
// Неизвестный статус - ErrValidation
func (s *ReviewService) ModerateReview(ctx context.Context, id string, status string) (*entity.Review, error) {
	switch status {
	case entity.ReviewStatusPending, entity.ReviewStatusApproved, entity.ReviewStatusRejected:
	default:
		return nil, fmt.Errorf("%w: status must be pending, approved or rejected", ErrValidation)
	}

	review, err := s.reviewRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to update review status")
	}
	return review, nil
}

// ValidateRating проверяет диапазон [0.5, 5] и шаг 0.5
func ValidateRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: rating must be between %.1f and %.0f", ErrValidation, MinRating, MaxRating)
	}
	if math.Mod(rating*2, 1) != 0 {
		return fmt.Errorf("%w: rating must be in increments of 0.5", ErrValidation)
	}
	return nil
}

func resolveSortField(sort string) (string, error) {
	if sort == "" {
		return defaultSortField, nil
	}
	if field, ok := sortAliases[sort]; ok {
		return field, nil
	}
	if sortableFields[sort] {
		return sort, nil
	}
	return "", fmt.Errorf("%w: unsupported sort %q", ErrValidation, sort)
}

// normalizePage: page < 1 -> 1, limit < 1 -> 10, limit > 100 -> 100
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// mapRepositoryError переводит ошибки репозитория в ошибки сервиса
func mapRepositoryError(err error, msg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
