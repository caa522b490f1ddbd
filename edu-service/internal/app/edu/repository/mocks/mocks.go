package mocks

import (
	"context"
	"mime/multipart"
	"time"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/repository"

	"github.com/stretchr/testify/mock"
)

// MockReviewRepository мок для ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) ListApproved(ctx context.Context, query repository.ReviewQuery) ([]entity.Review, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) IncrementVote(ctx context.Context, id string, field string) (*entity.Review, error) {
	args := m.Called(ctx, id, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) AddReport(ctx context.Context, id string, report entity.ReviewReport) (*entity.Review, error) {
	args := m.Called(ctx, id, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateStatus(ctx context.Context, id string, status string) (*entity.Review, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) AverageRating(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepository) CountByRating(ctx context.Context) ([]entity.RatingBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RatingBucket), args.Error(1)
}

func (m *MockReviewRepository) ListRecent(ctx context.Context, limit int64) ([]entity.Review, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Review), args.Error(1)
}

func (m *MockReviewRepository) MonthlyStats(ctx context.Context, months int64) ([]entity.MonthBucket, error) {
	args := m.Called(ctx, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MonthBucket), args.Error(1)
}

// MockInquiryRepository мок для InquiryRepository
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

func (m *MockInquiryRepository) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) List(ctx context.Context) ([]entity.Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) ListByEmail(ctx context.Context, email string) ([]entity.Inquiry, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Inquiry, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockConsultationRepository мок для ConsultationRepository
type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

func (m *MockConsultationRepository) GetByID(ctx context.Context, id string) (*entity.Consultation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) List(ctx context.Context) ([]entity.Consultation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Consultation, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTestimonialRepository мок для TestimonialRepository
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *MockTestimonialRepository) GetByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) List(ctx context.Context) ([]entity.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) ListFeatured(ctx context.Context) ([]entity.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Testimonial, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUniversityRepository мок для UniversityRepository
type MockUniversityRepository struct {
	mock.Mock
}

func (m *MockUniversityRepository) Create(ctx context.Context, university *entity.University) error {
	args := m.Called(ctx, university)
	return args.Error(0)
}

func (m *MockUniversityRepository) GetByID(ctx context.Context, id string) (*entity.University, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.University), args.Error(1)
}

func (m *MockUniversityRepository) List(ctx context.Context) ([]entity.University, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.University), args.Error(1)
}

func (m *MockUniversityRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.University, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.University), args.Error(1)
}

func (m *MockUniversityRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMessagePublisher мок для Kafka MessagePublisher
type MockMessagePublisher struct {
	mock.Mock
	Messages [][]byte
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	m.Messages = append(m.Messages, value)
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockUniversityCache мок для кеша списка университетов
type MockUniversityCache struct {
	mock.Mock
}

func (m *MockUniversityCache) GetUniversities(ctx context.Context) ([]entity.University, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.University), args.Error(1)
}

func (m *MockUniversityCache) SetUniversities(ctx context.Context, universities []entity.University, ttl time.Duration) error {
	args := m.Called(ctx, universities, ttl)
	return args.Error(0)
}

func (m *MockUniversityCache) DeleteUniversities(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockImageStore мок для хранилища картинок отзывов
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Store(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, userID, file)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
