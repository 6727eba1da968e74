package models

import (
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/audit"
)

// AuditEntryModel is the GORM database model for audit entries
type AuditEntryModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	LicenseID string    `gorm:"not null;index;type:uuid"`
	UserID    string    `gorm:"not null;index;type:uuid"`
	Entity    string    `gorm:"not null;type:varchar(50);index"`
	EntityID  string    `gorm:"not null;type:varchar(64)"`
	Action    string    `gorm:"not null;type:varchar(20);index"`
	Details   string    `gorm:"type:varchar(2000)"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}

// ToDomain converts GORM model to domain entity
func (m *AuditEntryModel) ToDomain() *audit.Entry {
	return &audit.Entry{
		ID:        m.ID,
		LicenseID: m.LicenseID,
		UserID:    m.UserID,
		Entity:    m.Entity,
		EntityID:  m.EntityID,
		Action:    m.Action,
		Details:   m.Details,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuditEntryModel) FromDomain(e *audit.Entry) {
	m.ID = e.ID
	m.LicenseID = e.LicenseID
	m.UserID = e.UserID
	m.Entity = e.Entity
	m.EntityID = e.EntityID
	m.Action = e.Action
	m.Details = e.Details
	m.CreatedAt = e.CreatedAt
}
