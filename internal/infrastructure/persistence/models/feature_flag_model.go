package models

import (
	"github.com/StianAK82/regnskapsky/internal/domain/flags"
)

// FeatureFlagModel is the GORM database model for feature flags. A NULL
// license_id row is the global default for its key.
type FeatureFlagModel struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	LicenseID   *string `gorm:"type:uuid;index:idx_flag_scope,unique"`
	Key         string  `gorm:"not null;type:varchar(128);index:idx_flag_scope,unique"`
	Enabled     bool    `gorm:"not null;default:false"`
	Description string  `gorm:"type:varchar(1000)"`
}

// TableName specifies the table name for GORM
func (FeatureFlagModel) TableName() string {
	return "feature_flags"
}

// ToDomain converts GORM model to domain entity
func (m *FeatureFlagModel) ToDomain() *flags.FeatureFlag {
	return &flags.FeatureFlag{
		ID:          m.ID,
		LicenseID:   m.LicenseID,
		Key:         m.Key,
		Enabled:     m.Enabled,
		Description: m.Description,
	}
}

// FromDomain converts domain entity to GORM model
func (m *FeatureFlagModel) FromDomain(f *flags.FeatureFlag) {
	m.ID = f.ID
	m.LicenseID = f.LicenseID
	m.Key = f.Key
	m.Enabled = f.Enabled
	m.Description = f.Description
}
