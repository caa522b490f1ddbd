package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/repository"
	"aussieedu/edu-service/internal/app/edu/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

// ===================== Inquiry =====================

func TestCreateInquiry_NormalizesAndPublishes(t *testing.T) {
	inquiryRepo := new(mocks.MockInquiryRepository)
	publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
	svc := NewInquiryService(inquiryRepo, publisher)
	ctx := context.Background()

	inquiryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Inquiry")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Inquiry).ID = primitive.NewObjectID()
	})
	publisher.On("PublishMessage", ctx, mock.Anything, mock.Anything).Return(nil)

	result, err := svc.CreateInquiry(ctx, &entity.CreateInquiryRequest{
		Name:            "  Priya Sharma ",
		Email:           " Priya.Sharma@Example.COM ",
		Phone:           "+61 400 000 000",
		Message:         "I want to study nursing in Sydney",
		PreferredCourse: " Nursing ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", result.Name)
	assert.Equal(t, "priya.sharma@example.com", result.Email)
	assert.Equal(t, "Nursing", result.PreferredCourse)
	assert.Equal(t, entity.InquiryStatusNew, result.Status)

	require.Len(t, publisher.Messages, 1)
	var event entity.SiteEvent
	require.NoError(t, json.Unmarshal(publisher.Messages[0], &event))
	assert.Equal(t, entity.EventInquiryCreated, event.EventType)
	assert.Equal(t, "priya.sharma@example.com", event.Email)
}

func TestCreateInquiry_BlankName(t *testing.T) {
	inquiryRepo := new(mocks.MockInquiryRepository)
	svc := NewInquiryService(inquiryRepo, &mocks.MockMessagePublisher{})

	_, err := svc.CreateInquiry(context.Background(), &entity.CreateInquiryRequest{
		Name: "   ", Email: "a@b.co", Phone: "1", Message: "hi",
	})

	assert.ErrorIs(t, err, ErrValidation)
	inquiryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListInquiriesByEmail_Lowercases(t *testing.T) {
	inquiryRepo := new(mocks.MockInquiryRepository)
	svc := NewInquiryService(inquiryRepo, &mocks.MockMessagePublisher{})
	ctx := context.Background()

	inquiryRepo.On("ListByEmail", ctx, "student@example.com").Return([]entity.Inquiry{{Name: "A"}}, nil)

	result, err := svc.ListInquiriesByEmail(ctx, "Student@Example.com")

	require.NoError(t, err)
	assert.Len(t, result, 1)
	inquiryRepo.AssertExpectations(t)
}

func TestUpdateInquiry(t *testing.T) {
	inquiryRepo := new(mocks.MockInquiryRepository)
	svc := NewInquiryService(inquiryRepo, &mocks.MockMessagePublisher{})
	ctx := context.Background()

	inquiryRepo.On("Update", ctx, "inq-1", map[string]interface{}{
		"status": entity.InquiryStatusContacted,
		"email":  "x@y.com",
	}).Return(&entity.Inquiry{Status: entity.InquiryStatusContacted}, nil)

	result, err := svc.UpdateInquiry(ctx, "inq-1", &entity.UpdateInquiryRequest{
		Status: strPtr(entity.InquiryStatusContacted),
		Email:  strPtr("X@Y.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusContacted, result.Status)
	inquiryRepo.AssertExpectations(t)
}

func TestUpdateInquiry_EmptyPatch(t *testing.T) {
	inquiryRepo := new(mocks.MockInquiryRepository)
	svc := NewInquiryService(inquiryRepo, &mocks.MockMessagePublisher{})

	_, err := svc.UpdateInquiry(context.Background(), "inq-1", &entity.UpdateInquiryRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateInquiry(context.Background(), "inq-1", &entity.UpdateInquiryRequest{Name: strPtr("  ")})
	assert.ErrorIs(t, err, ErrValidation)

	inquiryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

// ===================== Delete not found for every entity =====================

func TestDelete_NotFound(t *testing.T) {
	ctx := context.Background()

	inquiryRepo := new(mocks.MockInquiryRepository)
	inquiryRepo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)
	assert.ErrorIs(t, NewInquiryService(inquiryRepo, &mocks.MockMessagePublisher{}).DeleteInquiry(ctx, "missing"), ErrNotFound)

	consultationRepo := new(mocks.MockConsultationRepository)
	consultationRepo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)
	assert.ErrorIs(t, NewConsultationService(consultationRepo, &mocks.MockMessagePublisher{}).DeleteConsultation(ctx, "missing"), ErrNotFound)

	testimonialRepo := new(mocks.MockTestimonialRepository)
	testimonialRepo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)
	assert.ErrorIs(t, NewTestimonialService(testimonialRepo).DeleteTestimonial(ctx, "missing"), ErrNotFound)

	universityRepo := new(mocks.MockUniversityRepository)
	universityCache := new(mocks.MockUniversityCache)
	universityRepo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)
	assert.ErrorIs(t, NewUniversityService(universityRepo, universityCache).DeleteUniversity(ctx, "missing"), ErrNotFound)
	universityCache.AssertNotCalled(t, "DeleteUniversities", mock.Anything)
}

func TestDelete_DatabaseError(t *testing.T) {
	ctx := context.Background()

	inquiryRepo := new(mocks.MockInquiryRepository)
	inquiryRepo.On("Delete", ctx, "inq-1").Return(errors.New("db error"))

	err := NewInquiryService(inquiryRepo, &mocks.MockMessagePublisher{}).DeleteInquiry(ctx, "inq-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

// ===================== Consultation =====================

func TestBookConsultation(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		wantDate time.Time
		wantErr  bool
	}{
		{name: "date only", date: "2026-05-20", wantDate: time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", date: "2026-05-20T10:00:00+10:00", wantDate: time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)},
		{name: "invalid", date: "20/05/2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consultationRepo := new(mocks.MockConsultationRepository)
			publisher := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}
			svc := NewConsultationService(consultationRepo, publisher)
			ctx := context.Background()

			consultationRepo.On("Create", ctx, mock.Anything).Return(nil)
			publisher.On("PublishMessage", ctx, mock.Anything, mock.Anything).Return(nil)

			result, err := svc.BookConsultation(ctx, &entity.CreateConsultationRequest{
				Name:             "Liam",
				Email:            "LIAM@example.com",
				Phone:            "0400 111 222",
				Date:             tt.date,
				Time:             "10:00",
				ConsultationType: entity.ConsultationTypeVirtual,
			})

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				consultationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.wantDate.Equal(result.Date))
			assert.Equal(t, "liam@example.com", result.Email)
			assert.Equal(t, entity.ConsultationStatusScheduled, result.Status)
			assert.Len(t, publisher.Messages, 1)
		})
	}
}

func TestUpdateConsultation_ParsesDate(t *testing.T) {
	consultationRepo := new(mocks.MockConsultationRepository)
	svc := NewConsultationService(consultationRepo, &mocks.MockMessagePublisher{})
	ctx := context.Background()

	consultationRepo.On("Update", ctx, "c-1", map[string]interface{}{
		"date":   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		"status": entity.ConsultationStatusRescheduled,
	}).Return(&entity.Consultation{Status: entity.ConsultationStatusRescheduled}, nil)

	result, err := svc.UpdateConsultation(ctx, "c-1", &entity.UpdateConsultationRequest{
		Date:   strPtr("2026-06-01"),
		Status: strPtr(entity.ConsultationStatusRescheduled),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ConsultationStatusRescheduled, result.Status)

	_, err = svc.UpdateConsultation(ctx, "c-1", &entity.UpdateConsultationRequest{Date: strPtr("tomorrow")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetConsultation_NotFound(t *testing.T) {
	consultationRepo := new(mocks.MockConsultationRepository)
	svc := NewConsultationService(consultationRepo, &mocks.MockMessagePublisher{})
	ctx := context.Background()

	consultationRepo.On("GetByID", ctx, "nope").Return(nil, repository.ErrNotFound)

	_, err := svc.GetConsultation(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ===================== Testimonial =====================

func TestUpdateTestimonial_Featured(t *testing.T) {
	testimonialRepo := new(mocks.MockTestimonialRepository)
	svc := NewTestimonialService(testimonialRepo)
	ctx := context.Background()

	featured := false
	testimonialRepo.On("Update", ctx, "t-1", map[string]interface{}{"featured": false}).
		Return(&entity.Testimonial{Featured: false}, nil)

	result, err := svc.UpdateTestimonial(ctx, "t-1", &entity.UpdateTestimonialRequest{Featured: &featured})

	require.NoError(t, err)
	assert.False(t, result.Featured)
	testimonialRepo.AssertExpectations(t)
}

func TestListFeaturedTestimonials(t *testing.T) {
	testimonialRepo := new(mocks.MockTestimonialRepository)
	svc := NewTestimonialService(testimonialRepo)
	ctx := context.Background()

	testimonialRepo.On("ListFeatured", ctx).Return([]entity.Testimonial{{Featured: true}}, nil)

	result, err := svc.ListFeaturedTestimonials(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

// ===================== University =====================

func TestListUniversities_CacheHit(t *testing.T) {
	universityRepo := new(mocks.MockUniversityRepository)
	universityCache := new(mocks.MockUniversityCache)
	svc := NewUniversityService(universityRepo, universityCache)
	ctx := context.Background()

	cached := []entity.University{{Name: "UNSW"}}
	universityCache.On("GetUniversities", ctx).Return(cached, nil)

	result, err := svc.ListUniversities(ctx)

	require.NoError(t, err)
	assert.Equal(t, cached, result)
	universityRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestListUniversities_CacheMissFillsCache(t *testing.T) {
	universityRepo := new(mocks.MockUniversityRepository)
	universityCache := new(mocks.MockUniversityCache)
	svc := NewUniversityService(universityRepo, universityCache)
	ctx := context.Background()

	fromDB := []entity.University{{Name: "UNSW"}, {Name: "UQ"}}
	universityCache.On("GetUniversities", ctx).Return(nil, nil)
	universityRepo.On("List", ctx).Return(fromDB, nil)
	universityCache.On("SetUniversities", ctx, fromDB, time.Hour).Return(nil)

	result, err := svc.ListUniversities(ctx)

	require.NoError(t, err)
	assert.Equal(t, fromDB, result)
	universityCache.AssertExpectations(t)
}

func TestListUniversities_CacheErrorsIgnored(t *testing.T) {
	universityRepo := new(mocks.MockUniversityRepository)
	universityCache := new(mocks.MockUniversityCache)
	svc := NewUniversityService(universityRepo, universityCache)
	ctx := context.Background()

	fromDB := []entity.University{{Name: "ANU"}}
	universityCache.On("GetUniversities", ctx).Return(nil, errors.New("redis down"))
	universityRepo.On("List", ctx).Return(fromDB, nil)
	universityCache.On("SetUniversities", ctx, fromDB, time.Hour).Return(errors.New("redis down"))

	result, err := svc.ListUniversities(ctx)

	require.NoError(t, err)
	assert.Equal(t, fromDB, result)
}

func TestCreateUniversity_InvalidatesCache(t *testing.T) {
	universityRepo := new(mocks.MockUniversityRepository)
	universityCache := new(mocks.MockUniversityCache)
	svc := NewUniversityService(universityRepo, universityCache)
	ctx := context.Background()

	universityRepo.On("Create", ctx, mock.AnythingOfType("*entity.University")).Return(nil)
	universityCache.On("DeleteUniversities", ctx).Return(nil)

	result, err := svc.CreateUniversity(ctx, &entity.CreateUniversityRequest{
		Name:        "University of Sydney",
		Location:    "Sydney",
		Image:       "https://example.com/usyd.jpg",
		Description: "Australia's first university",
		Programs:    []string{" Law ", "", "Medicine"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Law", "Medicine"}, result.Programs)
	assert.NotNil(t, result.Scholarships)
	universityCache.AssertCalled(t, "DeleteUniversities", ctx)
}

func TestUpdateUniversity(t *testing.T) {
	universityRepo := new(mocks.MockUniversityRepository)
	universityCache := new(mocks.MockUniversityCache)
	svc := NewUniversityService(universityRepo, universityCache)
	ctx := context.Background()

	ranking := 3
	universityRepo.On("Update", ctx, "u-1", map[string]interface{}{"ranking": 3}).
		Return(&entity.University{Ranking: &ranking}, nil)
	universityCache.On("DeleteUniversities", ctx).Return(errors.New("redis down"))

	result, err := svc.UpdateUniversity(ctx, "u-1", &entity.UpdateUniversityRequest{Ranking: &ranking})

	require.NoError(t, err)
	assert.Equal(t, 3, *result.Ranking)

	_, err = svc.UpdateUniversity(ctx, "u-1", &entity.UpdateUniversityRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}
