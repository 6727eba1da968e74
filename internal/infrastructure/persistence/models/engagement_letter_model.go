package models

import (
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/documents"
)

// EngagementLetterModel is the GORM database model for engagement letters
type EngagementLetterModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	LicenseID  string    `gorm:"not null;index;type:uuid"`
	ClientID   string    `gorm:"not null;index:idx_letter_version;type:uuid"`
	Version    int       `gorm:"not null;index:idx_letter_version"`
	ObjectKey  string    `gorm:"not null;type:varchar(512)"`
	SizeBytes  int64     `gorm:"not null"`
	RenderedAt time.Time `gorm:"not null"`
	RenderedBy string    `gorm:"not null;type:uuid"`
}

// TableName specifies the table name for GORM
func (EngagementLetterModel) TableName() string {
	return "engagement_letters"
}

// ToDomain converts GORM model to domain entity
func (m *EngagementLetterModel) ToDomain() *documents.EngagementLetter {
	return &documents.EngagementLetter{
		ID:         m.ID,
		LicenseID:  m.LicenseID,
		ClientID:   m.ClientID,
		Version:    m.Version,
		ObjectKey:  m.ObjectKey,
		SizeBytes:  m.SizeBytes,
		RenderedAt: m.RenderedAt,
		RenderedBy: m.RenderedBy,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EngagementLetterModel) FromDomain(l *documents.EngagementLetter) {
	m.ID = l.ID
	m.LicenseID = l.LicenseID
	m.ClientID = l.ClientID
	m.Version = l.Version
	m.ObjectKey = l.ObjectKey
	m.SizeBytes = l.SizeBytes
	m.RenderedAt = l.RenderedAt
	m.RenderedBy = l.RenderedBy
}
