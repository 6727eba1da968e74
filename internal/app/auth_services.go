package app

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/users"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// authService implements the AuthService interface. Tokens are opaque random
// values; only the SHA-256 digest is persisted, so a leaked database dump
// cannot be replayed.
type authService struct {
	userRepo     users.UserRepository
	tokenRepo    users.TokenRepository
	tokenTTLDays int
	logger       logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo users.UserRepository, tokenRepo users.TokenRepository, tokenTTLDays int, logger logger.Logger) (users.AuthService, error) {
	if tokenTTLDays <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %d", tokenTTLDays)
	}
	return &authService{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		tokenTTLDays: tokenTTLDays,
		logger:       logger,
	}, nil
}

// Login verifies email+password and issues a bearer token. The plain token
// is returned exactly once.
func (s *authService) Login(ctx context.Context, email, password, tokenName string) (string, *users.ApiToken, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", nil, users.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.Active {
		return "", nil, users.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, users.ErrInvalidCredentials
	}

	return s.issue(ctx, user, tokenName)
}

// IssueToken creates an additional token for an existing user.
func (s *authService) IssueToken(ctx context.Context, licenseID, userID, tokenName string) (string, *users.ApiToken, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if user.LicenseID != licenseID {
		return "", nil, users.ErrNotFound
	}
	if !user.Active {
		return "", nil, fmt.Errorf("cannot issue token for deactivated user")
	}

	return s.issue(ctx, user, tokenName)
}

// RevokeToken deletes a token by ID, enforcing license scope.
func (s *authService) RevokeToken(ctx context.Context, licenseID, tokenID string) error {
	token, err := s.tokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		return err
	}
	if token.LicenseID != licenseID {
		return users.ErrNotFound
	}

	if err := s.tokenRepo.DeleteByID(ctx, tokenID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.Info("token revoked", "token_id", tokenID, "user_id", token.UserID)
	return nil
}

// ListTokens retrieves a user's tokens.
func (s *authService) ListTokens(ctx context.Context, licenseID, userID string) ([]*users.ApiToken, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.LicenseID != licenseID {
		return nil, users.ErrNotFound
	}
	return s.tokenRepo.ListByUser(ctx, userID)
}

// Authenticate resolves a plain bearer token to an identity and touches
// LastUsedAt. Expired or unknown tokens fail with ErrInvalidCredentials.
func (s *authService) Authenticate(ctx context.Context, plainToken string) (*users.Identity, error) {
	token, err := s.tokenRepo.GetByHash(ctx, hashToken(plainToken))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}
	if token.Expired(time.Now()) {
		return nil, users.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, users.ErrInvalidCredentials
	}

	if err := s.tokenRepo.TouchLastUsed(ctx, token.ID, time.Now()); err != nil {
		s.logger.Warn("failed to touch token last used", "token_id", token.ID, "error", err)
	}

	return &users.Identity{
		UserID:    user.ID,
		LicenseID: user.LicenseID,
		Email:     user.Email,
		Role:      user.Role,
	}, nil
}

func (s *authService) issue(ctx context.Context, user *users.User, tokenName string) (string, *users.ApiToken, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	plainToken := hex.EncodeToString(raw)

	token := &users.ApiToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		LicenseID: user.LicenseID,
		TokenHash: hashToken(plainToken),
		Name:      tokenName,
		ExpiresAt: time.Now().AddDate(0, 0, s.tokenTTLDays),
		CreatedAt: time.Now(),
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", nil, fmt.Errorf("failed to store token: %w", err)
	}

	s.logger.Info("token issued", "token_id", token.ID, "user_id", user.ID, "name", tokenName)
	return plainToken, token, nil
}

func hashToken(plainToken string) string {
	sum := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(sum[:])
}
