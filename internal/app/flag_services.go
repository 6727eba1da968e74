package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/domain/flags"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/google/uuid"
)

// flagService implements the FlagService interface
type flagService struct {
	flagRepo flags.FlagRepository
	logger   logger.Logger
}

// NewFlagService creates a new instance of FlagService
func NewFlagService(flagRepo flags.FlagRepository, logger logger.Logger) (flags.FlagService, error) {
	return &flagService{
		flagRepo: flagRepo,
		logger:   logger,
	}, nil
}

// ListEffective merges global defaults with license overrides.
func (s *flagService) ListEffective(ctx context.Context, licenseID string) ([]*flags.FeatureFlag, error) {
	global, err := s.flagRepo.ListGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list global flags: %w", err)
	}
	scoped, err := s.flagRepo.ListByLicense(ctx, licenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list license flags: %w", err)
	}
	return flags.Effective(global, scoped), nil
}

// IsEnabled resolves one key for a license; unknown keys are disabled.
func (s *flagService) IsEnabled(ctx context.Context, licenseID, key string) (bool, error) {
	scoped, err := s.flagRepo.Get(ctx, &licenseID, key)
	if err == nil {
		return scoped.Enabled, nil
	}
	if !errors.Is(err, flags.ErrNotFound) {
		return false, err
	}

	global, err := s.flagRepo.Get(ctx, nil, key)
	if err != nil {
		if errors.Is(err, flags.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return global.Enabled, nil
}

// Set upserts a flag. A nil licenseID sets the global default.
func (s *flagService) Set(ctx context.Context, licenseID *string, key string, enabled bool, description string) (*flags.FeatureFlag, error) {
	flag := &flags.FeatureFlag{
		ID:          uuid.New().String(),
		LicenseID:   licenseID,
		Key:         key,
		Enabled:     enabled,
		Description: description,
	}

	if err := s.flagRepo.Upsert(ctx, flag); err != nil {
		return nil, fmt.Errorf("failed to upsert flag: %w", err)
	}

	scope := "global"
	if licenseID != nil {
		scope = *licenseID
	}
	s.logger.Info("feature flag set", "key", key, "enabled", enabled, "scope", scope)
	return flag, nil
}

// Unset removes a license override (or a global flag when licenseID is nil).
func (s *flagService) Unset(ctx context.Context, licenseID *string, key string) error {
	return s.flagRepo.Delete(ctx, licenseID, key)
}
