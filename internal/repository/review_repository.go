package repository

import (
	"context"

	"gorm.io/gorm"

	"cafeyak/internal/model"
)

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	List(ctx context.Context, menuItemID string) ([]model.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds a GORM-backed repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// List returns reviews, optionally filtered to a single menu item.
func (r *reviewRepository) List(ctx context.Context, menuItemID string) ([]model.Review, error) {
	var reviews []model.Review
	query := r.db.WithContext(ctx)
	if menuItemID != "" {
		query = query.Where("menu_item_id = ?", menuItemID)
	}
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
