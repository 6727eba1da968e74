package flags

import "context"

// FlagService defines feature flag operations.
type FlagService interface {
	// ListEffective merges global defaults with license overrides.
	ListEffective(ctx context.Context, licenseID string) ([]*FeatureFlag, error)

	// IsEnabled resolves one key for a license; unknown keys are disabled.
	IsEnabled(ctx context.Context, licenseID, key string) (bool, error)

	// Set upserts a flag. A nil licenseID sets the global default.
	Set(ctx context.Context, licenseID *string, key string, enabled bool, description string) (*FeatureFlag, error)

	// Unset removes a license override (or a global flag when licenseID is nil).
	Unset(ctx context.Context, licenseID *string, key string) error
}

// FlagRepository defines the persistence interface for feature flags.
type FlagRepository interface {
	ListGlobal(ctx context.Context) ([]*FeatureFlag, error)
	ListByLicense(ctx context.Context, licenseID string) ([]*FeatureFlag, error)
	Get(ctx context.Context, licenseID *string, key string) (*FeatureFlag, error)
	Upsert(ctx context.Context, flag *FeatureFlag) error
	Delete(ctx context.Context, licenseID *string, key string) error
}
