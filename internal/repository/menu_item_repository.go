package repository

import (
	"context"

	"gorm.io/gorm"

	"cafeyak/internal/model"
)

// MenuItemRepository defines menu item persistence operations.
type MenuItemRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	List(ctx context.Context, category *model.Category) ([]model.MenuItem, error)
	FindByName(ctx context.Context, name string) (*model.MenuItem, error)
}

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository builds a GORM-backed repository.
func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// List returns menu items, optionally filtered by category.
func (r *menuItemRepository) List(ctx context.Context, category *model.Category) ([]model.MenuItem, error) {
	var items []model.MenuItem
	query := r.db.WithContext(ctx)
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuItemRepository) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
