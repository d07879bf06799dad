package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"cafeyak/internal/errors"
	"cafeyak/internal/model"
)

func TestFavoriteService_Toggle(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		favorites []string
		itemID    string
		expected  []string
	}{
		{
			name:      "adds when absent",
			favorites: []string{"item-a"},
			itemID:    "item-b",
			expected:  []string{"item-a", "item-b"},
		},
		{
			name:      "removes when present",
			favorites: []string{"item-a", "item-b"},
			itemID:    "item-b",
			expected:  []string{"item-a"},
		},
		{
			name:      "adds to empty set",
			favorites: nil,
			itemID:    "item-a",
			expected:  []string{"item-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
				ID:        userID,
				Email:     "test@example.com",
				Favorites: tt.favorites,
			}, nil)
			mockRepo.On("UpdateFavorites", mock.Anything, userID, tt.expected).Return(nil)

			service := NewFavoriteService(mockRepo)
			favorites, err := service.Toggle(context.Background(), "test@example.com", tt.itemID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, favorites)
			mockRepo.AssertExpectations(t)
		})
	}
}

// Toggling the same item twice must return the set to its original state.
func TestFavoriteService_Toggle_RoundTrip(t *testing.T) {
	userID := uuid.New()
	original := []string{"item-a", "item-b"}

	first := new(MockUserRepository)
	first.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
		ID:        userID,
		Email:     "test@example.com",
		Favorites: original,
	}, nil)
	first.On("UpdateFavorites", mock.Anything, userID, mock.Anything).Return(nil)

	service := NewFavoriteService(first)
	afterFirst, err := service.Toggle(context.Background(), "test@example.com", "item-c")
	assert.NoError(t, err)
	assert.NotEqual(t, original, afterFirst)

	second := new(MockUserRepository)
	second.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
		ID:        userID,
		Email:     "test@example.com",
		Favorites: afterFirst,
	}, nil)
	second.On("UpdateFavorites", mock.Anything, userID, mock.Anything).Return(nil)

	service = NewFavoriteService(second)
	afterSecond, err := service.Toggle(context.Background(), "test@example.com", "item-c")
	assert.NoError(t, err)
	assert.Equal(t, original, afterSecond)
}

func TestFavoriteService_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewFavoriteService(mockRepo)

	_, err := service.Toggle(context.Background(), "ghost@example.com", "item-a")
	assert.Equal(t, errors.ErrUserNotFound, err)

	_, err = service.List(context.Background(), "ghost@example.com")
	assert.Equal(t, errors.ErrUserNotFound, err)

	mockRepo.AssertNotCalled(t, "UpdateFavorites", mock.Anything, mock.Anything, mock.Anything)
}

func TestFavoriteService_List(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
		ID:        userID,
		Email:     "test@example.com",
		Favorites: nil,
	}, nil)

	service := NewFavoriteService(mockRepo)
	favorites, err := service.List(context.Background(), "test@example.com")

	assert.NoError(t, err)
	// A user with no favorites gets an empty set, not null.
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}
