package clients

import (
	"errors"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Client status constants
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Accounting system constants
const (
	SystemNone      = "none"
	SystemFiken     = "fiken"
	SystemTripletex = "tripletex"
)

// ErrNotFound is returned when no client matches the given ID within the license.
var ErrNotFound = errors.New("client not found")

// ErrHasReferences is returned when deleting a client that still has tasks
// or time entries attached.
var ErrHasReferences = errors.New("client has task or time entry references")

// Client entity: a customer of the accounting firm.
type Client struct {
	ID                string    `validate:"required,uuid4"`
	LicenseID         string    `validate:"required,uuid4"`
	Name              string    `validate:"required,min=1,max=255"`
	OrgNumber         string    `validate:"required,orgnr"`
	ContactEmail      string    `validate:"omitempty,email,max=255"`
	ContactPhone      string    `validate:"omitempty,max=32"`
	AccountingSystem  string    `validate:"required,oneof=none fiken tripletex"`
	ExternalRef       *string   `validate:"omitempty,max=255"`
	ResponsibleUserID *string   `validate:"omitempty,uuid4"`
	Status            string    `validate:"required,oneof=active archived"`
	Notes             string    `validate:"max=4000"`
	CreatedAt         time.Time `validate:"required"`
	UpdatedAt         time.Time
}

// Validate checks the client against its field constraints.
func (c *Client) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("orgnr", validators.OrgNumberValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(c)
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

// ClientQuery carries list filters, pagination and sorting.
type ClientQuery struct {
	Name              string
	Status            string
	AccountingSystem  string
	ResponsibleUserID string
	Limit             int
	Offset            int
	SortBy            string
	SortOrder         string
}

// NewClientQuery returns a query with default pagination.
func NewClientQuery() *ClientQuery {
	return &ClientQuery{
		Limit:     50,
		SortBy:    "name",
		SortOrder: "asc",
	}
}

// Validate checks pagination bounds and the sort whitelist.
func (q *ClientQuery) Validate() error {
	if q.Limit < 0 || q.Limit > 500 {
		return fmt.Errorf("limit must be between 0 and 500")
	}
	if q.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	switch q.SortBy {
	case "", "name", "org_number", "status", "created_at":
	default:
		return fmt.Errorf("unsupported sort field: %s", q.SortBy)
	}
	switch q.SortOrder {
	case "", "asc", "desc":
	default:
		return fmt.Errorf("sort order must be asc or desc")
	}
	return nil
}
