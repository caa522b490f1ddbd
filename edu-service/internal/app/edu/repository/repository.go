package repository

import (
	"context"

	"aussieedu/edu-service/internal/app/edu/entity"
)

// ReviewQuery - фильтр, сортировка и окно выборки одобренных отзывов
type ReviewQuery struct {
	Rating         *float64
	ConsultationID string
	SortField      string
	SortDesc       bool
	Skip           int64
	Limit          int64
}

// ReviewRepository определяет методы для работы с отзывами в MongoDB
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListApproved(ctx context.Context, query ReviewQuery) ([]entity.Review, int64, error)
	IncrementVote(ctx context.Context, id string, field string) (*entity.Review, error)
	AddReport(ctx context.Context, id string, report entity.ReviewReport) (*entity.Review, error)
	UpdateStatus(ctx context.Context, id string, status string) (*entity.Review, error)

	// Агрегации для дашборда, считаются по всей коллекции
	CountAll(ctx context.Context) (int64, error)
	AverageRating(ctx context.Context) (float64, error)
	CountByRating(ctx context.Context) ([]entity.RatingBucket, error)
	ListRecent(ctx context.Context, limit int64) ([]entity.Review, error)
	MonthlyStats(ctx context.Context, months int64) ([]entity.MonthBucket, error)
}

// InquiryRepository определяет методы для работы с заявками
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id string) (*entity.Inquiry, error)
	List(ctx context.Context) ([]entity.Inquiry, error)
	ListByEmail(ctx context.Context, email string) ([]entity.Inquiry, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

// ConsultationRepository определяет методы для работы с консультациями
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
	GetByID(ctx context.Context, id string) (*entity.Consultation, error)
	List(ctx context.Context) ([]entity.Consultation, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Consultation, error)
	Delete(ctx context.Context, id string) error
}

// TestimonialRepository определяет методы для работы с отзывами-историями студентов
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	GetByID(ctx context.Context, id string) (*entity.Testimonial, error)
	List(ctx context.Context) ([]entity.Testimonial, error)
	ListFeatured(ctx context.Context) ([]entity.Testimonial, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

// UniversityRepository определяет методы для работы с университетами
type UniversityRepository interface {
	Create(ctx context.Context, university *entity.University) error
	GetByID(ctx context.Context, id string) (*entity.University, error)
	List(ctx context.Context) ([]entity.University, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.University, error)
	Delete(ctx context.Context, id string) error
}
