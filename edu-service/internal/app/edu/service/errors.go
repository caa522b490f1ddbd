package service

import "errors"

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("authentication required")
	ErrRateLimited     = errors.New("too many reviews created")
	ErrDuplicateReview = errors.New("you have already reviewed this consultation")
)
