package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/notifications"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormNotificationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository implementation
func NewGormNotificationRepository(db *gorm.DB, logger logger.Logger) (notifications.NotificationRepository, error) {
	return &gormNotificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNotificationRepository) Create(ctx context.Context, n *notifications.Notification) error {
	if err := n.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NotificationModel{}
	model.FromDomain(n)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *gormNotificationRepository) ListForUser(ctx context.Context, licenseID, userID string, unreadOnly bool) ([]*notifications.Notification, error) {
	var modelList []*models.NotificationModel
	dbQuery := r.db.WithContext(ctx).
		Where("license_id = ? AND user_id = ?", licenseID, userID)
	if unreadOnly {
		dbQuery = dbQuery.Where("read_at IS NULL")
	}

	// Unread first, then newest first
	err := dbQuery.
		Order("CASE WHEN read_at IS NULL THEN 0 ELSE 1 END asc").
		Order("created_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	domainList := make([]*notifications.Notification, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormNotificationRepository) GetByID(ctx context.Context, licenseID, notificationID string) (*notifications.Notification, error) {
	var model models.NotificationModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND license_id = ?", notificationID, licenseID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notifications.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch notification: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormNotificationRepository) UpdateByID(ctx context.Context, n *notifications.Notification) error {
	if err := n.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NotificationModel{}
	model.FromDomain(n)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	return nil
}

func (r *gormNotificationRepository) MarkAllRead(ctx context.Context, licenseID, userID string) error {
	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("license_id = ? AND user_id = ? AND read_at IS NULL", licenseID, userID).
		Update("read_at", time.Now()).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *gormNotificationRepository) HasUnreadForSubject(ctx context.Context, licenseID, notificationType, subjectID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("license_id = ? AND type = ? AND subject_id = ? AND read_at IS NULL",
			licenseID, notificationType, subjectID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check for existing notification: %w", err)
	}
	return count > 0, nil
}

func (r *gormNotificationRepository) CountUnread(ctx context.Context, licenseID, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("license_id = ? AND user_id = ? AND read_at IS NULL", licenseID, userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
