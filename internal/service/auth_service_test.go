package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cafeyak/internal/auth"
	"cafeyak/internal/errors"
	"cafeyak/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateToken(ctx context.Context, id uuid.UUID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateFavorites(ctx context.Context, id uuid.UUID, favorites []string) error {
	args := m.Called(ctx, id, favorites)
	return args.Error(0)
}

func (m *MockUserRepository) IncrementLoyaltyPoints(ctx context.Context, id uuid.UUID, points int64) error {
	args := m.Called(ctx, id, points)
	return args.Error(0)
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		displayName   string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedName  string
	}{
		{
			name:        "successful signup",
			email:       "test@example.com",
			password:    "password123",
			displayName: "Test User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedName: "Test User",
		},
		{
			name:     "name defaults to email local part",
			email:    "maria@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "maria@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedName: "maria",
		},
		{
			name:        "email already registered",
			email:       "existing@example.com",
			password:    "password123",
			displayName: "Existing User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo)
			user, err := service.Signup(context.Background(), tt.email, tt.password, tt.displayName, "")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				// The existing record must not be touched.
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.expectedName, user.Name)
				assert.Equal(t, int64(0), user.LoyaltyPoints)
				assert.Len(t, user.Token, auth.TokenLength)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	userID := uuid.New()

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login rotates token",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:            userID,
					Email:         "test@example.com",
					PasswordHash:  string(hashedPassword),
					LoyaltyPoints: 7,
					Token:         "0ldtoken0ldtoken0ldtoken",
				}, nil)
				m.On("UpdateToken", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil)
			},
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password leaves token untouched",
			email:    "test@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo)
			user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				mockRepo.AssertNotCalled(t, "UpdateToken", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, int64(7), user.LoyaltyPoints)
				assert.Len(t, user.Token, auth.TokenLength)
				assert.NotEqual(t, "0ldtoken0ldtoken0ldtoken", user.Token)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
