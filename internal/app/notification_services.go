package app

import (
	"context"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/notifications"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/google/uuid"
)

// notificationService implements the NotificationService interface
type notificationService struct {
	notificationRepo notifications.NotificationRepository
	logger           logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(notificationRepo notifications.NotificationRepository, logger logger.Logger) (notifications.NotificationService, error) {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}, nil
}

// ListForUser retrieves a user's notifications, unread first.
func (s *notificationService) ListForUser(ctx context.Context, licenseID, userID string, unreadOnly bool) ([]*notifications.Notification, error) {
	return s.notificationRepo.ListForUser(ctx, licenseID, userID, unreadOnly)
}

// MarkRead marks one notification read. Marking an already read notification
// again is a no-op.
func (s *notificationService) MarkRead(ctx context.Context, licenseID, userID, notificationID string) error {
	notification, err := s.notificationRepo.GetByID(ctx, licenseID, notificationID)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return notifications.ErrNotFound
	}
	if notification.ReadAt != nil {
		return nil
	}

	now := time.Now()
	notification.ReadAt = &now
	if err := s.notificationRepo.UpdateByID(ctx, notification); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks all of a user's unread notifications read.
func (s *notificationService) MarkAllRead(ctx context.Context, licenseID, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, licenseID, userID)
}

// Notify creates a notification.
func (s *notificationService) Notify(ctx context.Context, n *notifications.Notification) (*notifications.Notification, error) {
	n.ID = uuid.New().String()
	n.ReadAt = nil
	n.CreatedAt = time.Now()

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.logger.Info("notification created", "notification_id", n.ID, "user_id", n.UserID, "type", n.Type)
	return n, nil
}
