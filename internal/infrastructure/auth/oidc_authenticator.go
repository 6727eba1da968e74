package auth

import (
	"context"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/domain/users"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"
)

// OIDCAuthenticator resolves a bearer ID token to a local user identity.
// The token's email claim must match an active user.
type OIDCAuthenticator struct {
	verifier *OIDCVerifier
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewOIDCAuthenticator creates an OIDCAuthenticator backed by the verifier
// and the user repository.
func NewOIDCAuthenticator(verifier *OIDCVerifier, userRepo users.UserRepository, logger logger.Logger) (*OIDCAuthenticator, error) {
	if verifier == nil {
		return nil, fmt.Errorf("oidc verifier must not be nil")
	}
	return &OIDCAuthenticator{
		verifier: verifier,
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// Authenticate verifies the raw ID token and looks up the local user by the
// email claim. Unknown or deactivated users fail with ErrInvalidCredentials.
func (a *OIDCAuthenticator) Authenticate(ctx context.Context, rawIDToken string) (*users.Identity, error) {
	claims, err := a.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}

	user, err := a.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		a.logger.Warn("oidc token for unknown user", "email", claims.Email)
		return nil, users.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, users.ErrInvalidCredentials
	}

	return &users.Identity{
		UserID:    user.ID,
		LicenseID: user.LicenseID,
		Email:     user.Email,
		Role:      user.Role,
	}, nil
}
