package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DocumentStoreSettings holds the MinIO connection settings used for
// storing rendered engagement letters.
type DocumentStoreSettings struct {
	Endpoint  string `mapstructure:"endpoint" validate:"required"`
	AccessKey string `mapstructure:"access_key" validate:"required"`
	SecretKey string `mapstructure:"secret_key" validate:"required"`
	Region    string `mapstructure:"region"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket" validate:"required"`
}

// Validate checks that all fields in DocumentStoreSettings are valid
func (s *DocumentStoreSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DocumentStoreSettings: %w", err)
	}

	if strings.Contains(s.Endpoint, "://") {
		return fmt.Errorf("endpoint must not include scheme: %q", s.Endpoint)
	}

	return nil
}
