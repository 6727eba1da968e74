package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/domain/timetracking"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTimeEntryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTimeEntryRepository creates a new GORM-based TimeEntryRepository implementation
func NewGormTimeEntryRepository(db *gorm.DB, logger logger.Logger) (timetracking.TimeEntryRepository, error) {
	return &gormTimeEntryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTimeEntryRepository) Create(ctx context.Context, entry *timetracking.TimeEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TimeEntryModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create time entry: %w", err)
	}

	r.logger.Info("Created time entry with id ", entry.ID)
	return nil
}

func (r *gormTimeEntryRepository) applyFilter(dbQuery *gorm.DB, licenseID string, query *timetracking.TimeEntryQuery) *gorm.DB {
	dbQuery = dbQuery.Where("license_id = ?", licenseID)
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.ClientID != "" {
		dbQuery = dbQuery.Where("client_id = ?", query.ClientID)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("date >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("date <= ?", query.To)
	}
	if query.Billable != nil {
		dbQuery = dbQuery.Where("billable = ?", *query.Billable)
	}
	return dbQuery
}

func (r *gormTimeEntryRepository) List(ctx context.Context, licenseID string, query *timetracking.TimeEntryQuery) ([]*timetracking.TimeEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.TimeEntryModel
	dbQuery := r.applyFilter(r.db.WithContext(ctx).Model(&models.TimeEntryModel{}), licenseID, query)

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
		return nil, fmt.Errorf("failed to fetch time entries: %w", err)
	}

	domainList := make([]*timetracking.TimeEntry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormTimeEntryRepository) GetByID(ctx context.Context, licenseID, entryID string) (*timetracking.TimeEntry, error) {
	var model models.TimeEntryModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND license_id = ?", entryID, licenseID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, timetracking.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch time entry: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTimeEntryRepository) UpdateByID(ctx context.Context, entry *timetracking.TimeEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TimeEntryModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	return nil
}

func (r *gormTimeEntryRepository) DeleteByID(ctx context.Context, licenseID, entryID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND license_id = ?", entryID, licenseID).
		Delete(&models.TimeEntryModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete time entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return timetracking.ErrNotFound
	}
	return nil
}

func (r *gormTimeEntryRepository) Totals(ctx context.Context, licenseID string, query *timetracking.TimeEntryQuery) (*timetracking.Totals, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	type row struct {
		TotalMinutes    int64
		BillableMinutes int64
		EntryCount      int64
	}
	var result row

	dbQuery := r.applyFilter(r.db.WithContext(ctx).Model(&models.TimeEntryModel{}), licenseID, query)
	err := dbQuery.
		Select("COALESCE(SUM(minutes), 0) AS total_minutes, " +
			"COALESCE(SUM(CASE WHEN billable THEN minutes ELSE 0 END), 0) AS billable_minutes, " +
			"COUNT(*) AS entry_count").
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate time entries: %w", err)
	}

	return &timetracking.Totals{
		TotalMinutes:    result.TotalMinutes,
		BillableMinutes: result.BillableMinutes,
		EntryCount:      result.EntryCount,
	}, nil
}
