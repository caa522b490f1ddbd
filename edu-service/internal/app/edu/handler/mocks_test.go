package handler

import (
	"context"

	"aussieedu/edu-service/internal/app/edu/entity"

	"github.com/stretchr/testify/mock"
)

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) SubmitReview(ctx context.Context, identity *entity.Identity, req *entity.SubmitReviewRequest) (*entity.Review, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewService) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewService) ListApprovedReviews(ctx context.Context, filter entity.ReviewListFilter) (*entity.ReviewListResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReviewListResponse), args.Error(1)
}

func (m *MockReviewService) VoteReview(ctx context.Context, id string, voteType string) (*entity.Review, error) {
	args := m.Called(ctx, id, voteType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewService) ReportReview(ctx context.Context, identity *entity.Identity, id string, reason string) (*entity.Review, error) {
	args := m.Called(ctx, identity, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewService) ModerateReview(ctx context.Context, id string, status string) (*entity.Review, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) ComputeDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DashboardStats), args.Error(1)
}

type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) CreateInquiry(ctx context.Context, req *entity.CreateInquiryRequest) (*entity.Inquiry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Inquiry), args.Error(1)
}

func (m *MockInquiryService) GetInquiry(ctx context.Context, id string) (*entity.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Inquiry), args.Error(1)
}

func (m *MockInquiryService) ListInquiries(ctx context.Context) ([]entity.Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Inquiry), args.Error(1)
}

func (m *MockInquiryService) ListInquiriesByEmail(ctx context.Context, email string) ([]entity.Inquiry, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Inquiry), args.Error(1)
}

func (m *MockInquiryService) UpdateInquiry(ctx context.Context, id string, req *entity.UpdateInquiryRequest) (*entity.Inquiry, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Inquiry), args.Error(1)
}

func (m *MockInquiryService) DeleteInquiry(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockConsultationService struct {
	mock.Mock
}

func (m *MockConsultationService) BookConsultation(ctx context.Context, req *entity.CreateConsultationRequest) (*entity.Consultation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationService) GetConsultation(ctx context.Context, id string) (*entity.Consultation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationService) ListConsultations(ctx context.Context) ([]entity.Consultation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Consultation), args.Error(1)
}

func (m *MockConsultationService) UpdateConsultation(ctx context.Context, id string, req *entity.UpdateConsultationRequest) (*entity.Consultation, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationService) DeleteConsultation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTestimonialService struct {
	mock.Mock
}

func (m *MockTestimonialService) CreateTestimonial(ctx context.Context, req *entity.CreateTestimonialRequest) (*entity.Testimonial, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialService) GetTestimonial(ctx context.Context, id string) (*entity.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialService) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialService) ListFeaturedTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialService) UpdateTestimonial(ctx context.Context, id string, req *entity.UpdateTestimonialRequest) (*entity.Testimonial, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialService) DeleteTestimonial(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUniversityService struct {
	mock.Mock
}

func (m *MockUniversityService) CreateUniversity(ctx context.Context, req *entity.CreateUniversityRequest) (*entity.University, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.University), args.Error(1)
}

func (m *MockUniversityService) GetUniversity(ctx context.Context, id string) (*entity.University, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.University), args.Error(1)
}

func (m *MockUniversityService) ListUniversities(ctx context.Context) ([]entity.University, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.University), args.Error(1)
}

func (m *MockUniversityService) UpdateUniversity(ctx context.Context, id string, req *entity.UpdateUniversityRequest) (*entity.University, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.University), args.Error(1)
}

func (m *MockUniversityService) DeleteUniversity(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVerifier мок для IdentityVerifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Identity), args.Error(1)
}
