package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/infrastructure"
	"aussieedu/edu-service/internal/app/edu/repository"
	"aussieedu/pkg/logger"
)

const universitiesCacheTTL = time.Hour

// UniversityServiceInterface - бизнес-логика каталога университетов
type UniversityServiceInterface interface {
	CreateUniversity(ctx context.Context, req *entity.CreateUniversityRequest) (*entity.University, error)
	GetUniversity(ctx context.Context, id string) (*entity.University, error)
	ListUniversities(ctx context.Context) ([]entity.University, error)
	UpdateUniversity(ctx context.Context, id string, req *entity.UpdateUniversityRequest) (*entity.University, error)
	DeleteUniversity(ctx context.Context, id string) error
}

// UniversityService - каталог университетов
// Полный список кешируется в Redis; любая запись сбрасывает кеш
type UniversityService struct {
	universityRepo repository.UniversityRepository
	cache          infrastructure.UniversityCache
}

// NewUniversityService создает сервис университетов с кешем списка
func NewUniversityService(universityRepo repository.UniversityRepository, cache infrastructure.UniversityCache) *UniversityService {
	return &UniversityService{
		universityRepo: universityRepo,
		cache:          cache,
	}
}

// CreateUniversity сохраняет университет и сбрасывает кеш списка
func (s *UniversityService) CreateUniversity(ctx context.Context, req *entity.CreateUniversityRequest) (*entity.University, error) {
	if err := trimRequired(
		requiredField{"name", &req.Name},
		requiredField{"location", &req.Location},
		requiredField{"image", &req.Image},
		requiredField{"description", &req.Description},
	); err != nil {
		return nil, err
	}

	university := &entity.University{
		Name:         req.Name,
		Location:     req.Location,
		Image:        req.Image,
		Description:  req.Description,
		Ranking:      req.Ranking,
		Website:      strings.TrimSpace(req.Website),
		Programs:     normalizePrograms(req.Programs),
		Scholarships: normalizeScholarships(req.Scholarships),
	}
	if req.Fees != nil {
		university.Fees = *req.Fees
	}

	if err := s.universityRepo.Create(ctx, university); err != nil {
		return nil, fmt.Errorf("failed to create university: %w", err)
	}

	s.invalidateCache(ctx)
	return university, nil
}

// GetUniversity получает университет по ID
func (s *UniversityService) GetUniversity(ctx context.Context, id string) (*entity.University, error) {
	university, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get university")
	}
	return university, nil
}

// ListUniversities отдает список из кеша, при промахе читает MongoDB и прогревает кеш
// Ошибки кеша не прерывают запрос
func (s *UniversityService) ListUniversities(ctx context.Context) ([]entity.University, error) {
	cached, err := s.cache.GetUniversities(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to read universities from cache")
	}
	if cached != nil {
		return cached, nil
	}

	universities, err := s.universityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list universities: %w", err)
	}

	if err := s.cache.SetUniversities(ctx, universities, universitiesCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache universities")
	}

	return universities, nil
}

// UpdateUniversity частично обновляет университет и сбрасывает кеш
func (s *UniversityService) UpdateUniversity(ctx context.Context, id string, req *entity.UpdateUniversityRequest) (*entity.University, error) {
	patch := newFieldPatch().
		required("name", req.Name).
		required("location", req.Location).
		required("image", req.Image).
		required("description", req.Description).
		optional("website", req.Website)
	if req.Ranking != nil {
		patch.set("ranking", *req.Ranking)
	}
	if req.Programs != nil {
		patch.set("programs", normalizePrograms(*req.Programs))
	}
	if req.Fees != nil {
		patch.set("fees", *req.Fees)
	}
	if req.Scholarships != nil {
		patch.set("scholarships", normalizeScholarships(*req.Scholarships))
	}

	fields, err := patch.build()
	if err != nil {
		return nil, err
	}

	university, err := s.universityRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to update university")
	}

	s.invalidateCache(ctx)
	return university, nil
}

// DeleteUniversity удаляет университет и сбрасывает кеш
func (s *UniversityService) DeleteUniversity(ctx context.Context, id string) error {
	if err := s.universityRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, "failed to delete university")
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *UniversityService) invalidateCache(ctx context.Context) {
	if err := s.cache.DeleteUniversities(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate universities cache")
	}
}

func normalizePrograms(programs []string) []string {
	result := make([]string, 0, len(programs))
	for _, p := range programs {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func normalizeScholarships(scholarships []entity.Scholarship) []entity.Scholarship {
	result := make([]entity.Scholarship, 0, len(scholarships))
	for _, sch := range scholarships {
		result = append(result, entity.Scholarship{
			Name:        strings.TrimSpace(sch.Name),
			Amount:      strings.TrimSpace(sch.Amount),
			Eligibility: strings.TrimSpace(sch.Eligibility),
		})
	}
	return result
}
