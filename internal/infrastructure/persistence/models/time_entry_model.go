package models

import (
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/timetracking"
)

// TimeEntryModel is the GORM database model for time entries
type TimeEntryModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	LicenseID   string    `gorm:"not null;index;type:uuid"`
	UserID      string    `gorm:"not null;index;type:uuid"`
	ClientID    string    `gorm:"not null;index;type:uuid"`
	TaskID      *string   `gorm:"type:uuid;index"`
	Date        time.Time `gorm:"not null;index"`
	Minutes     int       `gorm:"not null"`
	Billable    bool      `gorm:"not null;default:true"`
	Description string    `gorm:"type:varchar(1000)"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TimeEntryModel) TableName() string {
	return "time_entries"
}

// ToDomain converts GORM model to domain entity
func (m *TimeEntryModel) ToDomain() *timetracking.TimeEntry {
	return &timetracking.TimeEntry{
		ID:          m.ID,
		LicenseID:   m.LicenseID,
		UserID:      m.UserID,
		ClientID:    m.ClientID,
		TaskID:      m.TaskID,
		Date:        m.Date,
		Minutes:     m.Minutes,
		Billable:    m.Billable,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TimeEntryModel) FromDomain(e *timetracking.TimeEntry) {
	m.ID = e.ID
	m.LicenseID = e.LicenseID
	m.UserID = e.UserID
	m.ClientID = e.ClientID
	m.TaskID = e.TaskID
	m.Date = e.Date
	m.Minutes = e.Minutes
	m.Billable = e.Billable
	m.Description = e.Description
	m.CreatedAt = e.CreatedAt
}
