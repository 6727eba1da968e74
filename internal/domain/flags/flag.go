package flags

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrNotFound is returned when no flag matches the given key.
var ErrNotFound = errors.New("feature flag not found")

// FeatureFlag entity. A nil LicenseID means the flag is a global default;
// a license-scoped row with the same key overrides it.
type FeatureFlag struct {
	ID          string  `validate:"required,uuid4"`
	LicenseID   *string `validate:"omitempty,uuid4"`
	Key         string  `validate:"required,min=1,max=128"`
	Enabled     bool
	Description string `validate:"max=1000"`
}

// Validate checks the flag against its field constraints.
func (f *FeatureFlag) Validate() error {
	validate := validator.New()

	err := validate.Struct(f)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Effective merges global and license-scoped flags: license rows win on key.
func Effective(global, scoped []*FeatureFlag) []*FeatureFlag {
	byKey := make(map[string]*FeatureFlag, len(global)+len(scoped))
	order := make([]string, 0, len(global)+len(scoped))

	for _, f := range global {
		if _, seen := byKey[f.Key]; !seen {
			order = append(order, f.Key)
		}
		byKey[f.Key] = f
	}
	for _, f := range scoped {
		if _, seen := byKey[f.Key]; !seen {
			order = append(order, f.Key)
		}
		byKey[f.Key] = f
	}

	merged := make([]*FeatureFlag, 0, len(order))
	for _, key := range order {
		merged = append(merged, byKey[key])
	}
	return merged
}
