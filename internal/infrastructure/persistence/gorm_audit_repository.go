package persistence

import (
	"context"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAuditRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAuditRepository creates a new GORM-based AuditRepository implementation
func NewGormAuditRepository(db *gorm.DB, logger logger.Logger) (audit.AuditRepository, error) {
	return &gormAuditRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAuditRepository) Create(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AuditEntryModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

func (r *gormAuditRepository) List(ctx context.Context, licenseID string, query *audit.EntryQuery) ([]*audit.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.AuditEntryModel
	dbQuery := r.db.WithContext(ctx).Model(&models.AuditEntryModel{}).Where("license_id = ?", licenseID)

	if query.Entity != "" {
		dbQuery = dbQuery.Where("entity = ?", query.Entity)
	}
	if query.Action != "" {
		dbQuery = dbQuery.Where("action = ?", query.Action)
	}
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("created_at <= ?", query.To)
	}

	dbQuery = dbQuery.Order("created_at desc")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch audit entries: %w", err)
	}

	domainList := make([]*audit.Entry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
