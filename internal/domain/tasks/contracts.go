package tasks

import (
	"context"
	"time"
)

// TaskService defines task and checklist operations, all scoped to a license.
type TaskService interface {
	// Create registers a new task for a client.
	Create(ctx context.Context, licenseID string, task *Task) (*Task, error)

	// List retrieves tasks matching the query filter.
	List(ctx context.Context, licenseID string, query *TaskQuery) ([]*Task, error)

	// GetByID retrieves a task with its checklist.
	GetByID(ctx context.Context, licenseID, taskID string) (*Task, []*ChecklistItem, error)

	// UpdateByID updates mutable task fields. Moving status to done goes
	// through Complete and is rejected here.
	UpdateByID(ctx context.Context, licenseID string, task *Task) (*Task, error)

	// Complete marks a task done. Fails with ErrChecklistIncomplete while
	// checklist items remain open; a recurring task spawns its next
	// occurrence.
	Complete(ctx context.Context, licenseID, taskID, userID string) (*Task, error)

	// DeleteByID deletes a task and its checklist.
	DeleteByID(ctx context.Context, licenseID, taskID string) error

	// AddChecklistItem appends an item to the task's checklist.
	AddChecklistItem(ctx context.Context, licenseID, taskID, label string) (*ChecklistItem, error)

	// ToggleChecklistItem flips an item's done state, recording who and when.
	ToggleChecklistItem(ctx context.Context, licenseID, taskID, itemID, userID string, done bool) (*ChecklistItem, error)

	// RemoveChecklistItem removes an item from the checklist.
	RemoveChecklistItem(ctx context.Context, licenseID, taskID, itemID string) error
}

// TaskRepository defines the persistence interface for tasks and checklists.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	List(ctx context.Context, licenseID string, query *TaskQuery) ([]*Task, error)
	GetByID(ctx context.Context, licenseID, taskID string) (*Task, error)
	UpdateByID(ctx context.Context, task *Task) error
	DeleteByID(ctx context.Context, licenseID, taskID string) error

	// ListDueBefore lists open or in-progress tasks with a due date at or
	// before the cutoff, across a single license. Overdue tasks are included
	// no matter how old.
	ListDueBefore(ctx context.Context, licenseID string, cutoff time.Time) ([]*Task, error)

	CreateChecklistItem(ctx context.Context, item *ChecklistItem) error
	ListChecklistItems(ctx context.Context, taskID string) ([]*ChecklistItem, error)
	GetChecklistItemByID(ctx context.Context, taskID, itemID string) (*ChecklistItem, error)
	UpdateChecklistItemByID(ctx context.Context, item *ChecklistItem) error
	DeleteChecklistItemByID(ctx context.Context, taskID, itemID string) error
	CountOpenChecklistItems(ctx context.Context, taskID string) (int64, error)
}
