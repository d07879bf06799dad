package repository

import (
	"context"

	"gorm.io/gorm"

	"cafeyak/internal/model"
)

// SpecialRepository defines special persistence operations.
type SpecialRepository interface {
	Create(ctx context.Context, special *model.Special) error
	List(ctx context.Context) ([]model.Special, error)
	FindByTitle(ctx context.Context, title string) (*model.Special, error)
}

type specialRepository struct {
	db *gorm.DB
}

// NewSpecialRepository builds a GORM-backed repository.
func NewSpecialRepository(db *gorm.DB) SpecialRepository {
	return &specialRepository{db: db}
}

func (r *specialRepository) Create(ctx context.Context, special *model.Special) error {
	return r.db.WithContext(ctx).Create(special).Error
}

func (r *specialRepository) List(ctx context.Context) ([]model.Special, error) {
	var specials []model.Special
	if err := r.db.WithContext(ctx).Find(&specials).Error; err != nil {
		return nil, err
	}
	return specials, nil
}

func (r *specialRepository) FindByTitle(ctx context.Context, title string) (*model.Special, error) {
	var special model.Special
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&special).Error; err != nil {
		return nil, err
	}
	return &special, nil
}
