package audit

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Action constants
const (
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionComplete = "complete"
	ActionAssess   = "assess"
	ActionSync     = "sync"
)

// Entry entity: one row in the tenant's audit trail.
type Entry struct {
	ID        string    `validate:"required,uuid4"`
	LicenseID string    `validate:"required,uuid4"`
	UserID    string    `validate:"required,uuid4"`
	Entity    string    `validate:"required,min=1,max=50"`
	EntityID  string    `validate:"required,max=64"`
	Action    string    `validate:"required,oneof=create update delete complete assess sync"`
	Details   string    `validate:"max=2000"`
	CreatedAt time.Time `validate:"required"`
}

// Validate checks the entry against its field constraints.
func (e *Entry) Validate() error {
	validate := validator.New()

	err := validate.Struct(e)
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

// EntryQuery carries list filters and pagination.
type EntryQuery struct {
	Entity string
	Action string
	UserID string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// NewEntryQuery returns a query with default pagination.
func NewEntryQuery() *EntryQuery {
	return &EntryQuery{Limit: 100}
}

// Validate checks pagination bounds.
func (q *EntryQuery) Validate() error {
	if q.Limit < 0 || q.Limit > 1000 {
		return fmt.Errorf("limit must be between 0 and 1000")
	}
	if q.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return fmt.Errorf("to must not be before from")
	}
	return nil
}
