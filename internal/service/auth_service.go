package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cafeyak/internal/auth"
	"cafeyak/internal/errors"
	"cafeyak/internal/model"
	"cafeyak/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, email, password, name, phone string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Signup creates a new user with a hashed password and a fresh session token.
// The returned user carries the token in its Token field.
func (s *authService) Signup(ctx context.Context, email, password, name, phone string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return nil, err
	}

	// Fall back to the email local part when no display name was given.
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	user := &model.User{
		Name:          name,
		Email:         email,
		PasswordHash:  string(hashedPassword),
		Phone:         phone,
		Favorites:     []string{},
		LoyaltyPoints: 0,
		Token:         token,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and rotates the session token. The stored token
// is only replaced after the password check passes.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateToken(ctx, user.ID, token); err != nil {
		return nil, fmt.Errorf("update token: %w", err)
	}

	user.Token = token
	return user, nil
}
