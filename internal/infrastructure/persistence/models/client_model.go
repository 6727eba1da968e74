package models

import (
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/clients"
)

// ClientModel is the GORM database model for clients
type ClientModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	LicenseID         string    `gorm:"not null;index;type:uuid"`
	Name              string    `gorm:"not null;type:varchar(255);index"`
	OrgNumber         string    `gorm:"not null;type:varchar(9);index"`
	ContactEmail      string    `gorm:"type:varchar(255)"`
	ContactPhone      string    `gorm:"type:varchar(32)"`
	AccountingSystem  string    `gorm:"not null;type:varchar(20)"`
	ExternalRef       *string   `gorm:"type:varchar(255)"`
	ResponsibleUserID *string   `gorm:"type:uuid;index"`
	Status            string    `gorm:"not null;type:varchar(20);index"`
	Notes             string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts GORM model to domain entity
func (m *ClientModel) ToDomain() *clients.Client {
	return &clients.Client{
		ID:                m.ID,
		LicenseID:         m.LicenseID,
		Name:              m.Name,
		OrgNumber:         m.OrgNumber,
		ContactEmail:      m.ContactEmail,
		ContactPhone:      m.ContactPhone,
		AccountingSystem:  m.AccountingSystem,
		ExternalRef:       m.ExternalRef,
		ResponsibleUserID: m.ResponsibleUserID,
		Status:            m.Status,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ClientModel) FromDomain(c *clients.Client) {
	m.ID = c.ID
	m.LicenseID = c.LicenseID
	m.Name = c.Name
	m.OrgNumber = c.OrgNumber
	m.ContactEmail = c.ContactEmail
	m.ContactPhone = c.ContactPhone
	m.AccountingSystem = c.AccountingSystem
	m.ExternalRef = c.ExternalRef
	m.ResponsibleUserID = c.ResponsibleUserID
	m.Status = c.Status
	m.Notes = c.Notes
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
