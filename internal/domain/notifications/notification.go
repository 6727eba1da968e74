package notifications

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Notification type constants
const (
	TypeTaskDue   = "task_due"
	TypeAmlReview = "aml_review"
	TypeSeatLimit = "seat_limit"
	TypeSystem    = "system"
)

// ErrNotFound is returned when no notification matches the given ID for the user.
var ErrNotFound = errors.New("notification not found")

// Notification entity: an in-app message to one user.
type Notification struct {
	ID        string     `validate:"required,uuid4"`
	LicenseID string     `validate:"required,uuid4"`
	UserID    string     `validate:"required,uuid4"`
	Type      string     `validate:"required,oneof=task_due aml_review seat_limit system"`
	Title     string     `validate:"required,min=1,max=255"`
	Body      string     `validate:"max=2000"`
	SubjectID *string    `validate:"omitempty,uuid4"`
	ReadAt    *time.Time
	CreatedAt time.Time `validate:"required"`
}

// Validate checks the notification against its field constraints.
func (n *Notification) Validate() error {
	validate := validator.New()

	err := validate.Struct(n)
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
