package service

import (
	"context"
	"fmt"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/infrastructure"
	"aussieedu/edu-service/internal/app/edu/repository"
	"aussieedu/pkg/metrics"
)

// ConsultationServiceInterface - бизнес-логика записи на консультации
type ConsultationServiceInterface interface {
	BookConsultation(ctx context.Context, req *entity.CreateConsultationRequest) (*entity.Consultation, error)
	GetConsultation(ctx context.Context, id string) (*entity.Consultation, error)
	ListConsultations(ctx context.Context) ([]entity.Consultation, error)
	UpdateConsultation(ctx context.Context, id string, req *entity.UpdateConsultationRequest) (*entity.Consultation, error)
	DeleteConsultation(ctx context.Context, id string) error
}

// ConsultationService - записи на консультации
// Дата не сверяется с расписанием и занятостью консультантов
type ConsultationService struct {
	consultationRepo repository.ConsultationRepository
	publisher        infrastructure.MessagePublisher
}

// NewConsultationService создает сервис консультаций
func NewConsultationService(consultationRepo repository.ConsultationRepository, publisher infrastructure.MessagePublisher) *ConsultationService {
	return &ConsultationService{
		consultationRepo: consultationRepo,
		publisher:        publisher,
	}
}

// BookConsultation проверяет заявку и создает запись, по умолчанию со статусом scheduled
func (s *ConsultationService) BookConsultation(ctx context.Context, req *entity.CreateConsultationRequest) (*entity.Consultation, error) {
	if err := trimRequired(
		requiredField{"name", &req.Name},
		requiredField{"phone", &req.Phone},
		requiredField{"time", &req.Time},
	); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.ConsultationStatusScheduled
	}

	consultation := &entity.Consultation{
		Name:             req.Name,
		Email:            normalizeEmail(req.Email),
		Phone:            req.Phone,
		Date:             date,
		Time:             req.Time,
		ConsultationType: req.ConsultationType,
		Notes:            req.Notes,
		Status:           status,
	}

	if err := s.consultationRepo.Create(ctx, consultation); err != nil {
		return nil, fmt.Errorf("failed to book consultation: %w", err)
	}

	metrics.ConsultationsBooked.WithLabelValues(consultation.ConsultationType).Inc()

	publishEvent(ctx, s.publisher, entity.SiteEvent{
		EventType: entity.EventConsultationBooked,
		EntityID:  consultation.ID.Hex(),
		Email:     consultation.Email,
		Payload: map[string]string{
			"name":              consultation.Name,
			"date":              consultation.Date.Format("2006-01-02"),
			"time":              consultation.Time,
			"consultation_type": consultation.ConsultationType,
		},
	})

	return consultation, nil
}

// GetConsultation получает консультацию по ID
func (s *ConsultationService) GetConsultation(ctx context.Context, id string) (*entity.Consultation, error) {
	consultation, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get consultation")
	}
	return consultation, nil
}

// ListConsultations возвращает все консультации
func (s *ConsultationService) ListConsultations(ctx context.Context) ([]entity.Consultation, error) {
	consultations, err := s.consultationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return consultations, nil
}

// UpdateConsultation частично обновляет консультацию
func (s *ConsultationService) UpdateConsultation(ctx context.Context, id string, req *entity.UpdateConsultationRequest) (*entity.Consultation, error) {
	fields, err := newFieldPatch().
		required("name", req.Name).
		email("email", req.Email).
		required("phone", req.Phone).
		date("date", req.Date).
		required("time", req.Time).
		optional("consultationType", req.ConsultationType).
		optional("notes", req.Notes).
		optional("status", req.Status).
		build()
	if err != nil {
		return nil, err
	}

	consultation, err := s.consultationRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to update consultation")
	}
	return consultation, nil
}

// DeleteConsultation удаляет консультацию
func (s *ConsultationService) DeleteConsultation(ctx context.Context, id string) error {
	if err := s.consultationRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, "failed to delete consultation")
	}
	return nil
}
