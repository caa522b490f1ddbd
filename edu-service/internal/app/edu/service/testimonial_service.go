package service

import (
	"context"
	"fmt"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/repository"
)

// TestimonialServiceInterface - бизнес-логика testimonials
type TestimonialServiceInterface interface {
	CreateTestimonial(ctx context.Context, req *entity.CreateTestimonialRequest) (*entity.Testimonial, error)
	GetTestimonial(ctx context.Context, id string) (*entity.Testimonial, error)
	ListTestimonials(ctx context.Context) ([]entity.Testimonial, error)
	ListFeaturedTestimonials(ctx context.Context) ([]entity.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, req *entity.UpdateTestimonialRequest) (*entity.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

// TestimonialService реализует TestimonialServiceInterface
type TestimonialService struct {
	testimonialRepo repository.TestimonialRepository
}

// NewTestimonialService создает сервис testimonials
func NewTestimonialService(testimonialRepo repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{testimonialRepo: testimonialRepo}
}

// CreateTestimonial проверяет и сохраняет testimonial
func (s *TestimonialService) CreateTestimonial(ctx context.Context, req *entity.CreateTestimonialRequest) (*entity.Testimonial, error) {
	if err := trimRequired(
		requiredField{"name", &req.Name},
		requiredField{"university", &req.University},
		requiredField{"course", &req.Course},
		requiredField{"image", &req.Image},
		requiredField{"content", &req.Content},
	); err != nil {
		return nil, err
	}

	testimonial := &entity.Testimonial{
		Name:       req.Name,
		University: req.University,
		Course:     req.Course,
		Image:      req.Image,
		Content:    req.Content,
		Featured:   req.Featured,
	}

	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return testimonial, nil
}

// GetTestimonial получает testimonial по ID
func (s *TestimonialService) GetTestimonial(ctx context.Context, id string) (*entity.Testimonial, error) {
	testimonial, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get testimonial")
	}
	return testimonial, nil
}

func (s *TestimonialService) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	testimonials, err := s.testimonialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonials, nil
}

// ListFeaturedTestimonials - истории для слайдера на главной
func (s *TestimonialService) ListFeaturedTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	testimonials, err := s.testimonialRepo.ListFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured testimonials: %w", err)
	}
	return testimonials, nil
}

// UpdateTestimonial частично обновляет testimonial
func (s *TestimonialService) UpdateTestimonial(ctx context.Context, id string, req *entity.UpdateTestimonialRequest) (*entity.Testimonial, error) {
	patch := newFieldPatch().
		required("name", req.Name).
		required("university", req.University).
		required("course", req.Course).
		required("image", req.Image).
		required("content", req.Content)
	if req.Featured != nil {
		patch.set("featured", *req.Featured)
	}

	fields, err := patch.build()
	if err != nil {
		return nil, err
	}

	testimonial, err := s.testimonialRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to update testimonial")
	}
	return testimonial, nil
}

// DeleteTestimonial удаляет testimonial
func (s *TestimonialService) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.testimonialRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, "failed to delete testimonial")
	}
	return nil
}
