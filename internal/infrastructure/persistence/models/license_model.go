package models

import (
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
)

// LicenseModel is the GORM database model for licenses (tenants)
type LicenseModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	FirmName  string    `gorm:"not null;type:varchar(255)"`
	OrgNumber string    `gorm:"not null;uniqueIndex;type:varchar(9)"`
	Plan      string    `gorm:"not null;type:varchar(20)"`
	SeatLimit int       `gorm:"not null"`
	Status    string    `gorm:"not null;type:varchar(20);index"`
	RenewsAt  time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (LicenseModel) TableName() string {
	return "licenses"
}

// ToDomain converts GORM model to domain entity
func (m *LicenseModel) ToDomain() *licensing.License {
	return &licensing.License{
		ID:        m.ID,
		FirmName:  m.FirmName,
		OrgNumber: m.OrgNumber,
		Plan:      m.Plan,
		SeatLimit: m.SeatLimit,
		Status:    m.Status,
		RenewsAt:  m.RenewsAt,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LicenseModel) FromDomain(l *licensing.License) {
	m.ID = l.ID
	m.FirmName = l.FirmName
	m.OrgNumber = l.OrgNumber
	m.Plan = l.Plan
	m.SeatLimit = l.SeatLimit
	m.Status = l.Status
	m.RenewsAt = l.RenewsAt
	m.CreatedAt = l.CreatedAt
}
