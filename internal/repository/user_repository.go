package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cafeyak/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateToken(ctx context.Context, id uuid.UUID, token string) error
	UpdateFavorites(ctx context.Context, id uuid.UUID, favorites []string) error
	IncrementLoyaltyPoints(ctx context.Context, id uuid.UUID, points int64) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateToken(ctx context.Context, id uuid.UUID, token string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("token", token).Error
}

func (r *userRepository) UpdateFavorites(ctx context.Context, id uuid.UUID, favorites []string) error {
	return r.db.WithContext(ctx).Model(&model.User{ID: id}).
		Update("favorites", favorites).Error
}

// IncrementLoyaltyPoints adds points as a single in-store increment so
// concurrent orders for the same user never lose updates.
func (r *userRepository) IncrementLoyaltyPoints(ctx context.Context, id uuid.UUID, points int64) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error
}
