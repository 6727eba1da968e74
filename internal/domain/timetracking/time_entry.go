package timetracking

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrNotFound is returned when no time entry matches the given ID within the license.
var ErrNotFound = errors.New("time entry not found")

// ErrFutureDate is returned when registering time on a future date.
var ErrFutureDate = errors.New("time entry date is in the future")

// TimeEntry entity: minutes worked by a user, optionally against a task.
type TimeEntry struct {
	ID          string    `validate:"required,uuid4"`
	LicenseID   string    `validate:"required,uuid4"`
	UserID      string    `validate:"required,uuid4"`
	ClientID    string    `validate:"required,uuid4"`
	TaskID      *string   `validate:"omitempty,uuid4"`
	Date        time.Time `validate:"required"`
	Minutes     int       `validate:"required,min=1,max=1440"`
	Billable    bool
	Description string    `validate:"max=1000"`
	CreatedAt   time.Time `validate:"required"`
}

// Validate checks the time entry against its field constraints.
func (e *TimeEntry) Validate() error {
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

// TimeEntryQuery carries list filters, pagination and sorting.
type TimeEntryQuery struct {
	UserID    string
	ClientID  string
	From      time.Time
	To        time.Time
	Billable  *bool
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// NewTimeEntryQuery returns a query with default pagination.
func NewTimeEntryQuery() *TimeEntryQuery {
	return &TimeEntryQuery{
		Limit:     50,
		SortBy:    "date",
		SortOrder: "desc",
	}
}

// Validate checks pagination bounds and the sort whitelist.
func (q *TimeEntryQuery) Validate() error {
	if q.Limit < 0 || q.Limit > 500 {
		return fmt.Errorf("limit must be between 0 and 500")
	}
	if q.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	switch q.SortBy {
	case "", "date", "minutes", "created_at":
	default:
		return fmt.Errorf("unsupported sort field: %s", q.SortBy)
	}
	switch q.SortOrder {
	case "", "asc", "desc":
	default:
		return fmt.Errorf("sort order must be asc or desc")
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return fmt.Errorf("to must not be before from")
	}
	return nil
}

// Totals aggregates minutes over a set of entries.
type Totals struct {
	TotalMinutes    int64
	BillableMinutes int64
	EntryCount      int64
}

// BillableShare returns the billable fraction of total minutes, 0 when empty.
func (t Totals) BillableShare() float64 {
	if t.TotalMinutes == 0 {
		return 0
	}
	return float64(t.BillableMinutes) / float64(t.TotalMinutes)
}
