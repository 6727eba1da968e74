package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/domain/flags"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormFlagRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFlagRepository creates a new GORM-based FlagRepository implementation
func NewGormFlagRepository(db *gorm.DB, logger logger.Logger) (flags.FlagRepository, error) {
	return &gormFlagRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormFlagRepository) ListGlobal(ctx context.Context) ([]*flags.FeatureFlag, error) {
	var modelList []*models.FeatureFlagModel
	err := r.db.WithContext(ctx).
		Where("license_id IS NULL").
		Order("key asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch global flags: %w", err)
	}
	return toFlagDomainList(modelList), nil
}

func (r *gormFlagRepository) ListByLicense(ctx context.Context, licenseID string) ([]*flags.FeatureFlag, error) {
	var modelList []*models.FeatureFlagModel
	err := r.db.WithContext(ctx).
		Where("license_id = ?", licenseID).
		Order("key asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch license flags: %w", err)
	}
	return toFlagDomainList(modelList), nil
}

func (r *gormFlagRepository) Get(ctx context.Context, licenseID *string, key string) (*flags.FeatureFlag, error) {
	var model models.FeatureFlagModel
	dbQuery := r.db.WithContext(ctx).Where("key = ?", key)
	if licenseID == nil {
		dbQuery = dbQuery.Where("license_id IS NULL")
	} else {
		dbQuery = dbQuery.Where("license_id = ?", *licenseID)
	}

	if err := dbQuery.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, flags.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch flag: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormFlagRepository) Upsert(ctx context.Context, flag *flags.FeatureFlag) error {
	if err := flag.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	existing, err := r.Get(ctx, flag.LicenseID, flag.Key)
	if err != nil && !errors.Is(err, flags.ErrNotFound) {
		return err
	}

	model := &models.FeatureFlagModel{}
	if existing != nil {
		flag.ID = existing.ID
		model.FromDomain(flag)
		if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
			return fmt.Errorf("failed to update flag: %w", err)
		}
		return nil
	}

	model.FromDomain(flag)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create flag: %w", err)
	}

	r.logger.Info("Created feature flag ", flag.Key)
	return nil
}

func (r *gormFlagRepository) Delete(ctx context.Context, licenseID *string, key string) error {
	dbQuery := r.db.WithContext(ctx).Where("key = ?", key)
	if licenseID == nil {
		dbQuery = dbQuery.Where("license_id IS NULL")
	} else {
		dbQuery = dbQuery.Where("license_id = ?", *licenseID)
	}

	result := dbQuery.Delete(&models.FeatureFlagModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return flags.ErrNotFound
	}
	return nil
}

func toFlagDomainList(modelList []*models.FeatureFlagModel) []*flags.FeatureFlag {
	domainList := make([]*flags.FeatureFlag, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
