package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/aml"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAmlRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAmlRepository creates a new GORM-based AmlRepository implementation
func NewGormAmlRepository(db *gorm.DB, logger logger.Logger) (aml.AmlRepository, error) {
	return &gormAmlRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAmlRepository) Create(ctx context.Context, status *aml.AmlStatus) error {
	if err := status.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AmlStatusModel{}
	model.FromDomain(status)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create aml status: %w", err)
	}

	r.logger.Info("Created aml status for client ", status.ClientID)
	return nil
}

func (r *gormAmlRepository) GetByClientID(ctx context.Context, licenseID, clientID string) (*aml.AmlStatus, error) {
	var model models.AmlStatusModel
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND license_id = ?", clientID, licenseID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, aml.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch aml status: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAmlRepository) UpdateByID(ctx context.Context, status *aml.AmlStatus) error {
	if err := status.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AmlStatusModel{}
	model.FromDomain(status)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update aml status: %w", err)
	}

	r.logger.Info("Updated aml status for client ", status.ClientID)
	return nil
}

func (r *gormAmlRepository) ListByLevel(ctx context.Context, licenseID, level string) ([]*aml.AmlStatus, error) {
	var modelList []*models.AmlStatusModel
	err := r.db.WithContext(ctx).
		Where("license_id = ? AND risk_level = ?", licenseID, level).
		Order("next_review_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch aml statuses: %w", err)
	}

	domainList := make([]*aml.AmlStatus, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAmlRepository) ListOverdue(ctx context.Context, licenseID string) ([]*aml.AmlStatus, error) {
	var modelList []*models.AmlStatusModel
	err := r.db.WithContext(ctx).
		Where("license_id = ? AND next_review_at < ?", licenseID, time.Now()).
		Order("next_review_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overdue aml statuses: %w", err)
	}

	domainList := make([]*aml.AmlStatus, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
