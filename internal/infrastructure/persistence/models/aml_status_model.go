package models

import (
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/aml"
)

// AmlStatusModel is the GORM database model for AML statuses
type AmlStatusModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	LicenseID        string    `gorm:"not null;index;type:uuid"`
	ClientID         string    `gorm:"not null;uniqueIndex;type:uuid"`
	GeographyRisk    int       `gorm:"not null"`
	IndustryRisk     int       `gorm:"not null"`
	OwnershipRisk    int       `gorm:"not null"`
	TransactionRisk  int       `gorm:"not null"`
	PepConfirmed     bool      `gorm:"not null;default:false"`
	IdentityVerified bool      `gorm:"not null;default:false"`
	RiskScore        float64   `gorm:"not null"`
	RiskLevel        string    `gorm:"not null;type:varchar(10);index"`
	LastReviewedAt   time.Time `gorm:"not null"`
	NextReviewAt     time.Time `gorm:"not null;index"`
	ReviewedBy       string    `gorm:"not null;type:uuid"`
}

// TableName specifies the table name for GORM
func (AmlStatusModel) TableName() string {
	return "aml_statuses"
}

// ToDomain converts GORM model to domain entity
func (m *AmlStatusModel) ToDomain() *aml.AmlStatus {
	return &aml.AmlStatus{
		ID:               m.ID,
		LicenseID:        m.LicenseID,
		ClientID:         m.ClientID,
		GeographyRisk:    m.GeographyRisk,
		IndustryRisk:     m.IndustryRisk,
		OwnershipRisk:    m.OwnershipRisk,
		TransactionRisk:  m.TransactionRisk,
		PepConfirmed:     m.PepConfirmed,
		IdentityVerified: m.IdentityVerified,
		RiskScore:        m.RiskScore,
		RiskLevel:        m.RiskLevel,
		LastReviewedAt:   m.LastReviewedAt,
		NextReviewAt:     m.NextReviewAt,
		ReviewedBy:       m.ReviewedBy,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AmlStatusModel) FromDomain(s *aml.AmlStatus) {
	m.ID = s.ID
	m.LicenseID = s.LicenseID
	m.ClientID = s.ClientID
	m.GeographyRisk = s.GeographyRisk
	m.IndustryRisk = s.IndustryRisk
	m.OwnershipRisk = s.OwnershipRisk
	m.TransactionRisk = s.TransactionRisk
	m.PepConfirmed = s.PepConfirmed
	m.IdentityVerified = s.IdentityVerified
	m.RiskScore = s.RiskScore
	m.RiskLevel = s.RiskLevel
	m.LastReviewedAt = s.LastReviewedAt
	m.NextReviewAt = s.NextReviewAt
	m.ReviewedBy = s.ReviewedBy
}
