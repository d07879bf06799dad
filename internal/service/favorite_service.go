package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cafeyak/internal/errors"
	"cafeyak/internal/model"
	"cafeyak/internal/repository"
)

// FavoriteService handles the per-user set of favorited menu items.
type FavoriteService interface {
	Toggle(ctx context.Context, email, itemID string) ([]string, error)
	List(ctx context.Context, email string) ([]string, error)
}

type favoriteService struct {
	userRepo repository.UserRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(userRepo repository.UserRepository) FavoriteService {
	return &favoriteService{userRepo: userRepo}
}

// Toggle adds the item to the user's favorites, or removes it when already
// present. Toggling twice restores the original set.
func (s *favoriteService) Toggle(ctx context.Context, email, itemID string) ([]string, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return nil, err
	}

	favorites := make([]string, 0, len(user.Favorites)+1)
	removed := false
	for _, fav := range user.Favorites {
		if fav == itemID {
			removed = true
			continue
		}
		favorites = append(favorites, fav)
	}
	if !removed {
		favorites = append(favorites, itemID)
	}

	if err := s.userRepo.UpdateFavorites(ctx, user.ID, favorites); err != nil {
		return nil, fmt.Errorf("update favorites: %w", err)
	}

	return favorites, nil
}

// List returns the user's favorites.
func (s *favoriteService) List(ctx context.Context, email string) ([]string, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.Favorites == nil {
		return []string{}, nil
	}
	return user.Favorites, nil
}

func (s *favoriteService) findUser(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
