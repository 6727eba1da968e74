package app

import (
	"context"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/domain/users"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// userService implements the UserService interface
type userService struct {
	userRepo    users.UserRepository
	tokenRepo   users.TokenRepository
	licenseRepo licensing.LicenseRepository
	logger      logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo users.UserRepository, tokenRepo users.TokenRepository, licenseRepo licensing.LicenseRepository, logger logger.Logger) (users.UserService, error) {
	return &userService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		licenseRepo: licenseRepo,
		logger:      logger,
	}, nil
}

// Create adds a user to the license. Fails with licensing.ErrSeatLimitReached
// when every seat is occupied.
func (s *userService) Create(ctx context.Context, licenseID, email, name, role, password string) (*users.User, error) {
	license, err := s.licenseRepo.GetByID(ctx, licenseID)
	if err != nil {
		return nil, err
	}

	activeUsers, err := s.licenseRepo.CountActiveUsers(ctx, licenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	if activeUsers >= license.SeatLimit {
		return nil, licensing.ErrSeatLimitReached
	}

	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users.User{
		ID:           uuid.New().String(),
		LicenseID:    licenseID,
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(passwordHash),
		Active:       true,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", "user_id", user.ID, "license_id", licenseID, "role", role)
	return user, nil
}

// List retrieves users belonging to the license.
func (s *userService) List(ctx context.Context, licenseID string) ([]*users.User, error) {
	return s.userRepo.List(ctx, licenseID)
}

// GetByID retrieves a user, enforcing license scope.
func (s *userService) GetByID(ctx context.Context, licenseID, userID string) (*users.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.LicenseID != licenseID {
		return nil, users.ErrNotFound
	}
	return user, nil
}

// SetActive activates or deactivates a user. Activation re-checks the seat
// limit; deactivation revokes all of the user's tokens.
func (s *userService) SetActive(ctx context.Context, licenseID, userID string, active bool) (*users.User, error) {
	user, err := s.GetByID(ctx, licenseID, userID)
	if err != nil {
		return nil, err
	}
	if user.Active == active {
		return user, nil
	}

	if active {
		license, err := s.licenseRepo.GetByID(ctx, licenseID)
		if err != nil {
			return nil, err
		}
		activeUsers, err := s.licenseRepo.CountActiveUsers(ctx, licenseID)
		if err != nil {
			return nil, fmt.Errorf("failed to count active users: %w", err)
		}
		if activeUsers >= license.SeatLimit {
			return nil, licensing.ErrSeatLimitReached
		}
	}

	user.Active = active
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if !active {
		if err := s.tokenRepo.DeleteByUser(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to revoke tokens: %w", err)
		}
	}

	s.logger.Info("user active state changed", "user_id", userID, "active", active)
	return user, nil
}
