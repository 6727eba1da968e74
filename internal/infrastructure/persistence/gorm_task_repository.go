package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTaskRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTaskRepository creates a new GORM-based TaskRepository implementation
func NewGormTaskRepository(db *gorm.DB, logger logger.Logger) (tasks.TaskRepository, error) {
	return &gormTaskRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTaskRepository) Create(ctx context.Context, task *tasks.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TaskModel{}
	model.FromDomain(task)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	r.logger.Info("Created task with id ", task.ID)
	return nil
}

func (r *gormTaskRepository) List(ctx context.Context, licenseID string, query *tasks.TaskQuery) ([]*tasks.Task, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.TaskModel
	dbQuery := r.db.WithContext(ctx).Model(&models.TaskModel{}).Where("license_id = ?", licenseID)

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.AssigneeID != "" {
		dbQuery = dbQuery.Where("assignee_id = ?", query.AssigneeID)
	}
	if query.ClientID != "" {
		dbQuery = dbQuery.Where("client_id = ?", query.ClientID)
	}
	if !query.DueAfter.IsZero() {
		dbQuery = dbQuery.Where("due_date >= ?", query.DueAfter)
	}
	if !query.DueBefore.IsZero() {
		dbQuery = dbQuery.Where("due_date <= ?", query.DueBefore)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	domainList := make([]*tasks.Task, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormTaskRepository) GetByID(ctx context.Context, licenseID, taskID string) (*tasks.Task, error) {
	var model models.TaskModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND license_id = ?", taskID, licenseID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tasks.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTaskRepository) UpdateByID(ctx context.Context, task *tasks.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TaskModel{}
	model.FromDomain(task)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	r.logger.Info("Updated task with id ", task.ID)
	return nil
}

func (r *gormTaskRepository) DeleteByID(ctx context.Context, licenseID, taskID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND license_id = ?", taskID, licenseID).Delete(&models.TaskModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete task: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return tasks.ErrNotFound
		}
		if err := tx.Where("task_id = ?", taskID).Delete(&models.ChecklistItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete checklist items: %w", err)
		}
		return nil
	})
}

func (r *gormTaskRepository) ListDueBefore(ctx context.Context, licenseID string, cutoff time.Time) ([]*tasks.Task, error) {
	var modelList []*models.TaskModel
	err := r.db.WithContext(ctx).Model(&models.TaskModel{}).
		Where("license_id = ?", licenseID).
		Where("status IN ?", []string{tasks.StatusOpen, tasks.StatusInProgress}).
		Where("due_date IS NOT NULL AND due_date <= ?", cutoff).
		Order("due_date asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch due tasks: %w", err)
	}

	domainList := make([]*tasks.Task, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTaskRepository) CreateChecklistItem(ctx context.Context, item *tasks.ChecklistItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ChecklistItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create checklist item: %w", err)
	}
	return nil
}

func (r *gormTaskRepository) ListChecklistItems(ctx context.Context, taskID string) ([]*tasks.ChecklistItem, error) {
	var modelList []*models.ChecklistItemModel
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("position asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checklist items: %w", err)
	}

	domainList := make([]*tasks.ChecklistItem, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTaskRepository) GetChecklistItemByID(ctx context.Context, taskID, itemID string) (*tasks.ChecklistItem, error) {
	var model models.ChecklistItemModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ?", itemID, taskID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tasks.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch checklist item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTaskRepository) UpdateChecklistItemByID(ctx context.Context, item *tasks.ChecklistItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ChecklistItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update checklist item: %w", err)
	}
	return nil
}

func (r *gormTaskRepository) DeleteChecklistItemByID(ctx context.Context, taskID, itemID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ?", itemID, taskID).
		Delete(&models.ChecklistItemModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete checklist item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return tasks.ErrItemNotFound
	}
	return nil
}

func (r *gormTaskRepository) CountOpenChecklistItems(ctx context.Context, taskID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ChecklistItemModel{}).
		Where("task_id = ? AND done = ?", taskID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count open checklist items: %w", err)
	}
	return count, nil
}
