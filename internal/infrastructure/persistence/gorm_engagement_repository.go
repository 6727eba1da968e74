package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/domain/documents"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormEngagementRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEngagementRepository creates a new GORM-based EngagementRepository implementation
func NewGormEngagementRepository(db *gorm.DB, logger logger.Logger) (documents.EngagementRepository, error) {
	return &gormEngagementRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEngagementRepository) Create(ctx context.Context, letter *documents.EngagementLetter) error {
	if err := letter.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EngagementLetterModel{}
	model.FromDomain(letter)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create engagement letter: %w", err)
	}

	r.logger.Info("Created engagement letter version ", letter.Version, " for client ", letter.ClientID)
	return nil
}

func (r *gormEngagementRepository) ListByClient(ctx context.Context, licenseID, clientID string) ([]*documents.EngagementLetter, error) {
	var modelList []*models.EngagementLetterModel
	err := r.db.WithContext(ctx).
		Where("license_id = ? AND client_id = ?", licenseID, clientID).
		Order("version desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch engagement letters: %w", err)
	}

	domainList := make([]*documents.EngagementLetter, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormEngagementRepository) GetByID(ctx context.Context, licenseID, letterID string) (*documents.EngagementLetter, error) {
	var model models.EngagementLetterModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND license_id = ?", letterID, licenseID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, documents.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch engagement letter: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormEngagementRepository) LatestVersion(ctx context.Context, licenseID, clientID string) (int, error) {
	var maxVersion *int
	err := r.db.WithContext(ctx).Model(&models.EngagementLetterModel{}).
		Where("license_id = ? AND client_id = ?", licenseID, clientID).
		Select("MAX(version)").
		Scan(&maxVersion).Error
	if err != nil {
		return 0, fmt.Errorf("failed to fetch latest letter version: %w", err)
	}
	if maxVersion == nil {
		return 0, nil
	}
	return *maxVersion, nil
}
