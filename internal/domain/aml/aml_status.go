package aml

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Risk level constants
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// ErrNotFound is returned when a client has no AML status yet.
var ErrNotFound = errors.New("aml status not found")

// AmlStatus entity: the KYC/AML assessment of one client. One row per client.
type AmlStatus struct {
	ID               string    `validate:"required,uuid4"`
	LicenseID        string    `validate:"required,uuid4"`
	ClientID         string    `validate:"required,uuid4"`
	GeographyRisk    int       `validate:"required,min=1,max=5"`
	IndustryRisk     int       `validate:"required,min=1,max=5"`
	OwnershipRisk    int       `validate:"required,min=1,max=5"`
	TransactionRisk  int       `validate:"required,min=1,max=5"`
	PepConfirmed     bool
	IdentityVerified bool
	RiskScore        float64   `validate:"min=1,max=5"`
	RiskLevel        string    `validate:"required,oneof=low medium high"`
	LastReviewedAt   time.Time `validate:"required"`
	NextReviewAt     time.Time `validate:"required"`
	ReviewedBy       string    `validate:"required,uuid4"`
}

// Validate checks the status against its field constraints.
func (s *AmlStatus) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
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

// ReviewOverdue reports whether the next review deadline has passed.
func (s *AmlStatus) ReviewOverdue(now time.Time) bool {
	return now.After(s.NextReviewAt)
}

// Assessment is the input to an AML review: the four factor scores plus the
// manual confirmations.
type Assessment struct {
	GeographyRisk    int  `validate:"required,min=1,max=5"`
	IndustryRisk     int  `validate:"required,min=1,max=5"`
	OwnershipRisk    int  `validate:"required,min=1,max=5"`
	TransactionRisk  int  `validate:"required,min=1,max=5"`
	PepConfirmed     bool
	IdentityVerified bool
}

// Validate checks factor score ranges.
func (a *Assessment) Validate() error {
	validate := validator.New()
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("validation failed for Assessment: %w", err)
	}
	return nil
}
