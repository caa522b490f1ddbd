package service

import (
	"context"
	"fmt"
	"strconv"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/repository"
)

const (
	recentReviewsLimit = 5
	monthlyStatsLimit  = 12
)

// DashboardServiceInterface - статистика для дашборда
type DashboardServiceInterface interface {
	ComputeDashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}

// DashboardService считает статистику по отзывам на лету
// Учитываются отзывы во всех статусах, включая pending и rejected
type DashboardService struct {
	reviewRepo repository.ReviewRepository
}

// NewDashboardService создает сервис дашборда
func NewDashboardService(reviewRepo repository.ReviewRepository) *DashboardService {
	return &DashboardService{reviewRepo: reviewRepo}
}

// ComputeDashboardStats собирает все показатели дашборда по коллекции отзывов
func (s *DashboardService) ComputeDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	total, err := s.reviewRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	average, err := s.reviewRepo.AverageRating(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute average rating: %w", err)
	}

	buckets, err := s.reviewRepo.CountByRating(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews by rating: %w", err)
	}

	recent, err := s.reviewRepo.ListRecent(ctx, recentReviewsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent reviews: %w", err)
	}

	months, err := s.reviewRepo.MonthlyStats(ctx, monthlyStatsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly stats: %w", err)
	}

	byRating := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		byRating[formatRating(b.Rating)] = b.Count
	}

	monthly := make([]entity.MonthlyReviewStats, 0, len(months))
	for _, m := range months {
		monthly = append(monthly, entity.MonthlyReviewStats{
			Month:         fmt.Sprintf("%04d-%02d", m.Period.Year, m.Period.Month),
			Count:         m.Count,
			AverageRating: m.AverageRating,
		})
	}

	if recent == nil {
		recent = []entity.Review{}
	}

	return &entity.DashboardStats{
		TotalReviews:    total,
		AverageRating:   average,
		ReviewsByRating: byRating,
		RecentReviews:   recent,
		MonthlyReviews:  monthly,
	}, nil
}

// formatRating: 5 -> "5", 4.5 -> "4.5"
func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}
