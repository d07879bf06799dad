package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"cafeyak/internal/model"
	"cafeyak/internal/repository"
)

// ReviewService handles customer reviews.
type ReviewService interface {
	Add(ctx context.Context, review *model.Review) (uuid.UUID, error)
	List(ctx context.Context, menuItemID string) ([]model.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) Add(ctx context.Context, review *model.Review) (uuid.UUID, error) {
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return uuid.Nil, fmt.Errorf("create review: %w", err)
	}
	return review.ID, nil
}

func (s *reviewService) List(ctx context.Context, menuItemID string) ([]model.Review, error) {
	reviews, err := s.reviewRepo.List(ctx, menuItemID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
