package models

import (
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/notifications"
)

// NotificationModel is the GORM database model for notifications
type NotificationModel struct {
	ID        string     `gorm:"primaryKey;type:uuid"`
	LicenseID string     `gorm:"not null;index;type:uuid"`
	UserID    string     `gorm:"not null;index;type:uuid"`
	Type      string     `gorm:"not null;type:varchar(20);index"`
	Title     string     `gorm:"not null;type:varchar(255)"`
	Body      string     `gorm:"type:varchar(2000)"`
	SubjectID *string    `gorm:"type:uuid;index"`
	ReadAt    *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts GORM model to domain entity
func (m *NotificationModel) ToDomain() *notifications.Notification {
	return &notifications.Notification{
		ID:        m.ID,
		LicenseID: m.LicenseID,
		UserID:    m.UserID,
		Type:      m.Type,
		Title:     m.Title,
		Body:      m.Body,
		SubjectID: m.SubjectID,
		ReadAt:    m.ReadAt,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NotificationModel) FromDomain(n *notifications.Notification) {
	m.ID = n.ID
	m.LicenseID = n.LicenseID
	m.UserID = n.UserID
	m.Type = n.Type
	m.Title = n.Title
	m.Body = n.Body
	m.SubjectID = n.SubjectID
	m.ReadAt = n.ReadAt
	m.CreatedAt = n.CreatedAt
}
