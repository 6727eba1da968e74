package documents

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrNotFound is returned when no engagement letter matches the lookup.
var ErrNotFound = errors.New("engagement letter not found")

// ErrStoreUnconfigured is returned when document storage is not set up for
// this deployment.
var ErrStoreUnconfigured = errors.New("document store is not configured")

// EngagementLetter is the stored metadata of one rendered oppdragsavtale
// version. The rendered HTML lives in object storage under ObjectKey.
type EngagementLetter struct {
	ID         string    `validate:"required,uuid4"`
	LicenseID  string    `validate:"required,uuid4"`
	ClientID   string    `validate:"required,uuid4"`
	Version    int       `validate:"required,min=1"`
	ObjectKey  string    `validate:"required,max=512"`
	SizeBytes  int64     `validate:"min=0"`
	RenderedAt time.Time `validate:"required"`
	RenderedBy string    `validate:"required,uuid4"`
}

// Validate checks the letter against its field constraints.
func (l *EngagementLetter) Validate() error {
	validate := validator.New()

	err := validate.Struct(l)
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

// Terms are the engagement-specific inputs to the letter template.
type Terms struct {
	ServiceScope    []string `validate:"required,min=1,dive,min=1,max=255"`
	HourlyRateNOK   int      `validate:"required,min=1"`
	PaymentDays     int      `validate:"required,min=1,max=90"`
	StartDate       time.Time `validate:"required"`
	ResponsibleName string   `validate:"required,min=1,max=255"`
}

// Validate checks the terms against their field constraints.
func (t *Terms) Validate() error {
	validate := validator.New()
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("validation failed for Terms: %w", err)
	}
	return nil
}
