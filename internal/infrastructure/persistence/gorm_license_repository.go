package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormLicenseRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLicenseRepository creates a new GORM-based LicenseRepository implementation
func NewGormLicenseRepository(db *gorm.DB, logger logger.Logger) (licensing.LicenseRepository, error) {
	return &gormLicenseRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormLicenseRepository) Create(ctx context.Context, license *licensing.License) error {
	if err := license.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LicenseModel{}
	model.FromDomain(license)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create license: %w", err)
	}

	r.logger.Info("Created license with id ", license.ID)
	return nil
}

func (r *gormLicenseRepository) GetByID(ctx context.Context, licenseID string) (*licensing.License, error) {
	var model models.LicenseModel
	if err := r.db.WithContext(ctx).Where("id = ?", licenseID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, licensing.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch license: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormLicenseRepository) ListActive(ctx context.Context) ([]*licensing.License, error) {
	var licenseModels []models.LicenseModel
	err := r.db.WithContext(ctx).
		Where("status = ?", licensing.StatusActive).
		Order("created_at asc").
		Find(&licenseModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active licenses: %w", err)
	}

	licenses := make([]*licensing.License, 0, len(licenseModels))
	for i := range licenseModels {
		licenses = append(licenses, licenseModels[i].ToDomain())
	}
	return licenses, nil
}

func (r *gormLicenseRepository) UpdateByID(ctx context.Context, license *licensing.License) error {
	if err := license.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LicenseModel{}
	model.FromDomain(license)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update license: %w", err)
	}

	r.logger.Info("Updated license with id ", license.ID)
	return nil
}

func (r *gormLicenseRepository) CountActiveUsers(ctx context.Context, licenseID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("license_id = ? AND active = ?", licenseID, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return int(count), nil
}
