package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormClientRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormClientRepository creates a new GORM-based ClientRepository implementation
func NewGormClientRepository(db *gorm.DB, logger logger.Logger) (clients.ClientRepository, error) {
	return &gormClientRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormClientRepository) Create(ctx context.Context, client *clients.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ClientModel{}
	model.FromDomain(client)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	r.logger.Info("Created client with id ", client.ID)
	return nil
}

func (r *gormClientRepository) List(ctx context.Context, licenseID string, query *clients.ClientQuery) ([]*clients.Client, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ClientModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("license_id = ?", licenseID)

	// Apply filters
	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.AccountingSystem != "" {
		dbQuery = dbQuery.Where("accounting_system = ?", query.AccountingSystem)
	}
	if query.ResponsibleUserID != "" {
		dbQuery = dbQuery.Where("responsible_user_id = ?", query.ResponsibleUserID)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}

	domainList := make([]*clients.Client, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormClientRepository) GetByID(ctx context.Context, licenseID, clientID string) (*clients.Client, error) {
	var model models.ClientModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND license_id = ?", clientID, licenseID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clients.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormClientRepository) GetByOrgNumber(ctx context.Context, licenseID, orgNumber string) (*clients.Client, error) {
	var model models.ClientModel
	err := r.db.WithContext(ctx).
		Where("org_number = ? AND license_id = ?", orgNumber, licenseID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clients.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormClientRepository) UpdateByID(ctx context.Context, client *clients.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ClientModel{}
	model.FromDomain(client)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	r.logger.Info("Updated client with id ", client.ID)
	return nil
}

func (r *gormClientRepository) DeleteByID(ctx context.Context, licenseID, clientID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND license_id = ?", clientID, licenseID).
		Delete(&models.ClientModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return clients.ErrNotFound
	}

	r.logger.Info("Deleted client with id ", clientID)
	return nil
}

func (r *gormClientRepository) CountReferences(ctx context.Context, clientID string) (int64, error) {
	var taskCount int64
	if err := r.db.WithContext(ctx).Model(&models.TaskModel{}).
		Where("client_id = ?", clientID).Count(&taskCount).Error; err != nil {
		return 0, fmt.Errorf("failed to count task references: %w", err)
	}

	var entryCount int64
	if err := r.db.WithContext(ctx).Model(&models.TimeEntryModel{}).
		Where("client_id = ?", clientID).Count(&entryCount).Error; err != nil {
		return 0, fmt.Errorf("failed to count time entry references: %w", err)
	}

	return taskCount + entryCount, nil
}
