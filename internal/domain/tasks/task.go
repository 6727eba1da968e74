package tasks

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Task status constants
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

// Priority constants
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Recurrence constants
const (
	RecurrenceNone      = "none"
	RecurrenceMonthly   = "monthly"
	RecurrenceQuarterly = "quarterly"
	RecurrenceYearly    = "yearly"
)

// ErrNotFound is returned when no task matches the given ID within the license.
var ErrNotFound = errors.New("task not found")

// ErrChecklistIncomplete is returned when completing a task whose checklist
// still has open items.
var ErrChecklistIncomplete = errors.New("checklist has incomplete items")

// ErrItemNotFound is returned when no checklist item matches the given ID.
var ErrItemNotFound = errors.New("checklist item not found")

// Task entity: a unit of work on a client engagement.
type Task struct {
	ID             string     `validate:"required,uuid4"`
	LicenseID      string     `validate:"required,uuid4"`
	ClientID       string     `validate:"required,uuid4"`
	Title          string     `validate:"required,min=1,max=255"`
	Description    string     `validate:"max=4000"`
	AssigneeID     *string    `validate:"omitempty,uuid4"`
	Status         string     `validate:"required,oneof=open in_progress done cancelled"`
	Priority       string     `validate:"required,oneof=low medium high"`
	DueDate        *time.Time
	RecurrenceRule string     `validate:"required,oneof=none monthly quarterly yearly"`
	CompletedAt    *time.Time
	CreatedAt      time.Time `validate:"required"`
	UpdatedAt      time.Time
}

// Validate checks the task against its field constraints.
func (t *Task) Validate() error {
	validate := validator.New()

	err := validate.Struct(t)
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

// Overdue reports whether the task has a due date in the past and is still open.
func (t *Task) Overdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	if t.Status == StatusDone || t.Status == StatusCancelled {
		return false
	}
	return t.DueDate.Before(now)
}

// NextOccurrenceDue advances a due date by the task's recurrence period.
// Returns nil for non-recurring tasks or tasks without a due date.
func (t *Task) NextOccurrenceDue() *time.Time {
	if t.DueDate == nil || t.RecurrenceRule == RecurrenceNone {
		return nil
	}
	var next time.Time
	switch t.RecurrenceRule {
	case RecurrenceMonthly:
		next = t.DueDate.AddDate(0, 1, 0)
	case RecurrenceQuarterly:
		next = t.DueDate.AddDate(0, 3, 0)
	case RecurrenceYearly:
		next = t.DueDate.AddDate(1, 0, 0)
	default:
		return nil
	}
	return &next
}

// ChecklistItem entity: a gating step on a task.
type ChecklistItem struct {
	ID           string     `validate:"required,uuid4"`
	TaskID       string     `validate:"required,uuid4"`
	Label        string     `validate:"required,min=1,max=255"`
	Done         bool
	DoneByUserID *string    `validate:"omitempty,uuid4"`
	DoneAt       *time.Time
	Position     int        `validate:"min=0"`
}

// Validate checks the checklist item against its field constraints.
func (i *ChecklistItem) Validate() error {
	validate := validator.New()

	err := validate.Struct(i)
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

// TaskQuery carries list filters, pagination and sorting.
type TaskQuery struct {
	Status     string
	AssigneeID string
	ClientID   string
	DueBefore  time.Time
	DueAfter   time.Time
	Limit      int
	Offset     int
	SortBy     string
	SortOrder  string
}

// NewTaskQuery returns a query with default pagination.
func NewTaskQuery() *TaskQuery {
	return &TaskQuery{
		Limit:     50,
		SortBy:    "due_date",
		SortOrder: "asc",
	}
}

// Validate checks pagination bounds and the sort whitelist.
func (q *TaskQuery) Validate() error {
	if q.Limit < 0 || q.Limit > 500 {
		return fmt.Errorf("limit must be between 0 and 500")
	}
	if q.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	switch q.Status {
	case "", StatusOpen, StatusInProgress, StatusDone, StatusCancelled:
	default:
		return fmt.Errorf("unsupported status filter: %s", q.Status)
	}
	switch q.SortBy {
	case "", "due_date", "priority", "status", "created_at", "title":
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
