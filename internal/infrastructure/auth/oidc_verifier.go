package auth

import (
	"context"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/pkg/config"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCVerifier validates ID tokens issued by the configured provider and
// extracts the claims needed to match a local user.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
	logger   logger.Logger
}

// NewOIDCVerifier performs provider discovery against the configured issuer.
func NewOIDCVerifier(ctx context.Context, settings *config.AuthSettings, logger logger.Logger) (*OIDCVerifier, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.Mode != config.AuthModeOIDC {
		return nil, fmt.Errorf("auth mode must be oidc, got %s", settings.Mode)
	}

	provider, err := oidc.NewProvider(ctx, settings.OIDCIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover oidc provider: %w", err)
	}

	verifier := provider.Verifier(&oidc.Config{ClientID: settings.OIDCClientID})

	return &OIDCVerifier{
		verifier: verifier,
		logger:   logger,
	}, nil
}

// Claims carries the subset of ID token claims used for user matching.
type Claims struct {
	Subject string
	Email   string
	Name    string
}

// Verify checks the raw ID token's signature, issuer, audience and expiry,
// then extracts the email claim used to resolve a local user.
func (v *OIDCVerifier) Verify(ctx context.Context, rawIDToken string) (*Claims, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify id token: %w", err)
	}

	var tokenClaims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := idToken.Claims(&tokenClaims); err != nil {
		return nil, fmt.Errorf("failed to parse id token claims: %w", err)
	}
	if tokenClaims.Email == "" {
		return nil, fmt.Errorf("id token has no email claim")
	}

	return &Claims{
		Subject: idToken.Subject,
		Email:   tokenClaims.Email,
		Name:    tokenClaims.Name,
	}, nil
}
