package service

import (
	"context"
	"fmt"
	"strings"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/infrastructure"
	"aussieedu/edu-service/internal/app/edu/repository"
	"aussieedu/pkg/metrics"
)

// InquiryServiceInterface - бизнес-логика заявок
type InquiryServiceInterface interface {
	CreateInquiry(ctx context.Context, req *entity.CreateInquiryRequest) (*entity.Inquiry, error)
	GetInquiry(ctx context.Context, id string) (*entity.Inquiry, error)
	ListInquiries(ctx context.Context) ([]entity.Inquiry, error)
	ListInquiriesByEmail(ctx context.Context, email string) ([]entity.Inquiry, error)
	UpdateInquiry(ctx context.Context, id string, req *entity.UpdateInquiryRequest) (*entity.Inquiry, error)
	DeleteInquiry(ctx context.Context, id string) error
}

// InquiryService - заявки с контактной формы
type InquiryService struct {
	inquiryRepo repository.InquiryRepository
	publisher   infrastructure.MessagePublisher
}

// NewInquiryService создает сервис заявок
func NewInquiryService(inquiryRepo repository.InquiryRepository, publisher infrastructure.MessagePublisher) *InquiryService {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		publisher:   publisher,
	}
}

// CreateInquiry проверяет и сохраняет новую заявку
func (s *InquiryService) CreateInquiry(ctx context.Context, req *entity.CreateInquiryRequest) (*entity.Inquiry, error) {
	if err := trimRequired(
		requiredField{"name", &req.Name},
		requiredField{"phone", &req.Phone},
		requiredField{"message", &req.Message},
	); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.InquiryStatusNew
	}

	inquiry := &entity.Inquiry{
		Name:                req.Name,
		Email:               normalizeEmail(req.Email),
		Phone:               req.Phone,
		Message:             req.Message,
		PreferredUniversity: strings.TrimSpace(req.PreferredUniversity),
		PreferredCourse:     strings.TrimSpace(req.PreferredCourse),
		Status:              status,
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	metrics.InquiriesCreated.Inc()

	publishEvent(ctx, s.publisher, entity.SiteEvent{
		EventType: entity.EventInquiryCreated,
		EntityID:  inquiry.ID.Hex(),
		Email:     inquiry.Email,
		Payload: map[string]string{
			"name":                 inquiry.Name,
			"preferred_university": inquiry.PreferredUniversity,
			"preferred_course":     inquiry.PreferredCourse,
		},
	})

	return inquiry, nil
}

// GetInquiry получает заявку по ID
func (s *InquiryService) GetInquiry(ctx context.Context, id string) (*entity.Inquiry, error) {
	inquiry, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get inquiry")
	}
	return inquiry, nil
}

// ListInquiries возвращает все заявки
func (s *InquiryService) ListInquiries(ctx context.Context) ([]entity.Inquiry, error) {
	inquiries, err := s.inquiryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

// ListInquiriesByEmail - заявки пользователя; email хранится в нижнем регистре
func (s *InquiryService) ListInquiriesByEmail(ctx context.Context, email string) ([]entity.Inquiry, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	inquiries, err := s.inquiryRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries by email: %w", err)
	}
	return inquiries, nil
}

// UpdateInquiry частично обновляет заявку
func (s *InquiryService) UpdateInquiry(ctx context.Context, id string, req *entity.UpdateInquiryRequest) (*entity.Inquiry, error) {
	fields, err := newFieldPatch().
		required("name", req.Name).
		email("email", req.Email).
		required("phone", req.Phone).
		required("message", req.Message).
		optional("preferredUniversity", req.PreferredUniversity).
		optional("preferredCourse", req.PreferredCourse).
		optional("status", req.Status).
		build()
	if err != nil {
		return nil, err
	}

	inquiry, err := s.inquiryRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to update inquiry")
	}
	return inquiry, nil
}

// DeleteInquiry удаляет заявку
func (s *InquiryService) DeleteInquiry(ctx context.Context, id string) error {
	if err := s.inquiryRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, "failed to delete inquiry")
	}
	return nil
}
