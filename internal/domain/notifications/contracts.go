package notifications

import "context"

// NotificationService defines in-app notification operations.
type NotificationService interface {
	// ListForUser retrieves a user's notifications, unread first.
	ListForUser(ctx context.Context, licenseID, userID string, unreadOnly bool) ([]*Notification, error)

	// MarkRead marks one notification read.
	MarkRead(ctx context.Context, licenseID, userID, notificationID string) error

	// MarkAllRead marks all of a user's unread notifications read.
	MarkAllRead(ctx context.Context, licenseID, userID string) error

	// Notify creates a notification. HasUnreadForSubject is consulted first
	// by scheduler jobs to keep daily runs idempotent.
	Notify(ctx context.Context, n *Notification) (*Notification, error)
}

// NotificationRepository defines the persistence interface for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListForUser(ctx context.Context, licenseID, userID string, unreadOnly bool) ([]*Notification, error)
	GetByID(ctx context.Context, licenseID, notificationID string) (*Notification, error)
	UpdateByID(ctx context.Context, n *Notification) error
	MarkAllRead(ctx context.Context, licenseID, userID string) error
	// HasUnreadForSubject reports whether an unread notification of the given
	// type already references the subject row
	HasUnreadForSubject(ctx context.Context, licenseID, notificationType, subjectID string) (bool, error)
	CountUnread(ctx context.Context, licenseID, userID string) (int64, error)
}
