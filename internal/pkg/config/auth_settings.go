package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Auth mode constants
const (
	AuthModeToken = "token"
	AuthModeOIDC  = "oidc"
)

// AuthSettings holds authentication configuration. Token mode resolves
// bearer tokens against the api_tokens table; oidc mode additionally
// accepts ID tokens from the configured issuer.
type AuthSettings struct {
	Mode         string `mapstructure:"mode" validate:"required,oneof=token oidc"`
	OIDCIssuer   string `mapstructure:"oidc_issuer"`
	OIDCClientID string `mapstructure:"oidc_client_id"`
	TokenTTLDays int    `mapstructure:"token_ttl_days" validate:"omitempty,min=1,max=365"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.Mode == AuthModeOIDC {
		if s.OIDCIssuer == "" {
			return fmt.Errorf("oidc_issuer is required for oidc auth mode")
		}
		if s.OIDCClientID == "" {
			return fmt.Errorf("oidc_client_id is required for oidc auth mode")
		}
	}

	return nil
}

// TokenTTLDaysOrDefault returns the configured token lifetime, defaulting to 90 days.
func (s *AuthSettings) TokenTTLDaysOrDefault() int {
	if s.TokenTTLDays == 0 {
		return 90
	}
	return s.TokenTTLDays
}
