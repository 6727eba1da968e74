package app

import (
	"context"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/google/uuid"
)

// taskService implements the TaskService interface
type taskService struct {
	taskRepo   tasks.TaskRepository
	clientRepo clients.ClientRepository
	recorder   audit.Recorder
	logger     logger.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(taskRepo tasks.TaskRepository, clientRepo clients.ClientRepository, recorder audit.Recorder, logger logger.Logger) (tasks.TaskService, error) {
	return &taskService{
		taskRepo:   taskRepo,
		clientRepo: clientRepo,
		recorder:   recorder,
		logger:     logger,
	}, nil
}

// Create registers a new task for a client.
func (s *taskService) Create(ctx context.Context, licenseID string, task *tasks.Task) (*tasks.Task, error) {
	if _, err := s.clientRepo.GetByID(ctx, licenseID, task.ClientID); err != nil {
		return nil, err
	}

	task.ID = uuid.New().String()
	task.LicenseID = licenseID
	if task.Status == "" {
		task.Status = tasks.StatusOpen
	}
	if task.Priority == "" {
		task.Priority = tasks.PriorityMedium
	}
	if task.RecurrenceRule == "" {
		task.RecurrenceRule = tasks.RecurrenceNone
	}
	task.CompletedAt = nil
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created", "task_id", task.ID, "client_id", task.ClientID, "title", task.Title)
	recordAsActor(ctx, s.recorder, licenseID, "task", task.ID, audit.ActionCreate, task.Title)
	return task, nil
}

// List retrieves tasks matching the query filter.
func (s *taskService) List(ctx context.Context, licenseID string, query *tasks.TaskQuery) ([]*tasks.Task, error) {
	if query == nil {
		query = tasks.NewTaskQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.taskRepo.List(ctx, licenseID, query)
}

// GetByID retrieves a task with its checklist.
func (s *taskService) GetByID(ctx context.Context, licenseID, taskID string) (*tasks.Task, []*tasks.ChecklistItem, error) {
	task, err := s.taskRepo.GetByID(ctx, licenseID, taskID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.taskRepo.ListChecklistItems(ctx, task.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list checklist items: %w", err)
	}

	return task, items, nil
}

// UpdateByID updates mutable task fields. Moving status to done goes through
// Complete so the checklist gate cannot be bypassed.
func (s *taskService) UpdateByID(ctx context.Context, licenseID string, task *tasks.Task) (*tasks.Task, error) {
	existing, err := s.taskRepo.GetByID(ctx, licenseID, task.ID)
	if err != nil {
		return nil, err
	}

	if task.Status == tasks.StatusDone && existing.Status != tasks.StatusDone {
		return nil, fmt.Errorf("tasks are completed through the complete operation")
	}

	task.LicenseID = licenseID
	task.ClientID = existing.ClientID
	task.CompletedAt = existing.CompletedAt
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.UpdateByID(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	recordAsActor(ctx, s.recorder, licenseID, "task", task.ID, audit.ActionUpdate, task.Title)
	return task, nil
}

// Complete marks a task done. Fails with ErrChecklistIncomplete while
// checklist items remain open; a recurring task spawns its next occurrence.
func (s *taskService) Complete(ctx context.Context, licenseID, taskID, userID string) (*tasks.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, licenseID, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == tasks.StatusDone {
		return task, nil
	}
	if task.Status == tasks.StatusCancelled {
		return nil, fmt.Errorf("cancelled tasks cannot be completed")
	}

	openItems, err := s.taskRepo.CountOpenChecklistItems(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to count open checklist items: %w", err)
	}
	if openItems > 0 {
		return nil, tasks.ErrChecklistIncomplete
	}

	now := time.Now()
	task.Status = tasks.StatusDone
	task.CompletedAt = &now
	task.UpdatedAt = now

	if err := s.taskRepo.UpdateByID(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	s.logger.Info("task completed", "task_id", taskID, "user_id", userID)
	s.recorder.Record(ctx, licenseID, userID, "task", taskID, audit.ActionComplete, task.Title)

	if err := s.spawnNextOccurrence(ctx, task); err != nil {
		s.logger.Error("failed to spawn recurring task", "task_id", taskID, "error", err)
	}

	return task, nil
}

// spawnNextOccurrence creates the next instance of a recurring task with the
// due date advanced by one period and the checklist labels carried over unchecked.
func (s *taskService) spawnNextOccurrence(ctx context.Context, completed *tasks.Task) error {
	nextDue := completed.NextOccurrenceDue()
	if nextDue == nil {
		return nil
	}

	next := &tasks.Task{
		ID:             uuid.New().String(),
		LicenseID:      completed.LicenseID,
		ClientID:       completed.ClientID,
		Title:          completed.Title,
		Description:    completed.Description,
		AssigneeID:     completed.AssigneeID,
		Status:         tasks.StatusOpen,
		Priority:       completed.Priority,
		DueDate:        nextDue,
		RecurrenceRule: completed.RecurrenceRule,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.taskRepo.Create(ctx, next); err != nil {
		return err
	}

	items, err := s.taskRepo.ListChecklistItems(ctx, completed.ID)
	if err != nil {
		return err
	}
	for _, item := range items {
		fresh := &tasks.ChecklistItem{
			ID:       uuid.New().String(),
			TaskID:   next.ID,
			Label:    item.Label,
			Position: item.Position,
		}
		if err := s.taskRepo.CreateChecklistItem(ctx, fresh); err != nil {
			return err
		}
	}

	s.logger.Info("recurring task spawned", "task_id", next.ID, "previous_task_id", completed.ID, "due", nextDue.Format("2006-01-02"))
	return nil
}

// DeleteByID deletes a task and its checklist.
func (s *taskService) DeleteByID(ctx context.Context, licenseID, taskID string) error {
	task, err := s.taskRepo.GetByID(ctx, licenseID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.DeleteByID(ctx, licenseID, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	recordAsActor(ctx, s.recorder, licenseID, "task", taskID, audit.ActionDelete, task.Title)
	return nil
}

// AddChecklistItem appends an item to the task's checklist.
func (s *taskService) AddChecklistItem(ctx context.Context, licenseID, taskID, label string) (*tasks.ChecklistItem, error) {
	task, err := s.taskRepo.GetByID(ctx, licenseID, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == tasks.StatusDone || task.Status == tasks.StatusCancelled {
		return nil, fmt.Errorf("cannot add checklist items to a %s task", task.Status)
	}

	items, err := s.taskRepo.ListChecklistItems(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}

	item := &tasks.ChecklistItem{
		ID:       uuid.New().String(),
		TaskID:   taskID,
		Label:    label,
		Position: len(items),
	}

	if err := s.taskRepo.CreateChecklistItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create checklist item: %w", err)
	}

	return item, nil
}

// ToggleChecklistItem flips an item's done state, recording who and when.
func (s *taskService) ToggleChecklistItem(ctx context.Context, licenseID, taskID, itemID, userID string, done bool) (*tasks.ChecklistItem, error) {
	if _, err := s.taskRepo.GetByID(ctx, licenseID, taskID); err != nil {
		return nil, err
	}

	item, err := s.taskRepo.GetChecklistItemByID(ctx, taskID, itemID)
	if err != nil {
		return nil, err
	}

	if done {
		now := time.Now()
		item.Done = true
		item.DoneByUserID = &userID
		item.DoneAt = &now
	} else {
		item.Done = false
		item.DoneByUserID = nil
		item.DoneAt = nil
	}

	if err := s.taskRepo.UpdateChecklistItemByID(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update checklist item: %w", err)
	}

	return item, nil
}

// RemoveChecklistItem removes an item from the checklist.
func (s *taskService) RemoveChecklistItem(ctx context.Context, licenseID, taskID, itemID string) error {
	if _, err := s.taskRepo.GetByID(ctx, licenseID, taskID); err != nil {
		return err
	}
	return s.taskRepo.DeleteChecklistItemByID(ctx, taskID, itemID)
}
