package models

import (
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
)

// TaskModel is the GORM database model for tasks
type TaskModel struct {
	ID             string     `gorm:"primaryKey;type:uuid"`
	LicenseID      string     `gorm:"not null;index;type:uuid"`
	ClientID       string     `gorm:"not null;index;type:uuid"`
	Title          string     `gorm:"not null;type:varchar(255)"`
	Description    string     `gorm:"type:text"`
	AssigneeID     *string    `gorm:"type:uuid;index"`
	Status         string     `gorm:"not null;type:varchar(20);index"`
	Priority       string     `gorm:"not null;type:varchar(10)"`
	DueDate        *time.Time `gorm:"index"`
	RecurrenceRule string     `gorm:"not null;type:varchar(12)"`
	CompletedAt    *time.Time
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts GORM model to domain entity
func (m *TaskModel) ToDomain() *tasks.Task {
	return &tasks.Task{
		ID:             m.ID,
		LicenseID:      m.LicenseID,
		ClientID:       m.ClientID,
		Title:          m.Title,
		Description:    m.Description,
		AssigneeID:     m.AssigneeID,
		Status:         m.Status,
		Priority:       m.Priority,
		DueDate:        m.DueDate,
		RecurrenceRule: m.RecurrenceRule,
		CompletedAt:    m.CompletedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TaskModel) FromDomain(t *tasks.Task) {
	m.ID = t.ID
	m.LicenseID = t.LicenseID
	m.ClientID = t.ClientID
	m.Title = t.Title
	m.Description = t.Description
	m.AssigneeID = t.AssigneeID
	m.Status = t.Status
	m.Priority = t.Priority
	m.DueDate = t.DueDate
	m.RecurrenceRule = t.RecurrenceRule
	m.CompletedAt = t.CompletedAt
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}

// ChecklistItemModel is the GORM database model for checklist items
type ChecklistItemModel struct {
	ID           string     `gorm:"primaryKey;type:uuid"`
	TaskID       string     `gorm:"not null;index;type:uuid"`
	Label        string     `gorm:"not null;type:varchar(255)"`
	Done         bool       `gorm:"not null;default:false"`
	DoneByUserID *string    `gorm:"type:uuid"`
	DoneAt       *time.Time
	Position     int `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (ChecklistItemModel) TableName() string {
	return "checklist_items"
}

// ToDomain converts GORM model to domain entity
func (m *ChecklistItemModel) ToDomain() *tasks.ChecklistItem {
	return &tasks.ChecklistItem{
		ID:           m.ID,
		TaskID:       m.TaskID,
		Label:        m.Label,
		Done:         m.Done,
		DoneByUserID: m.DoneByUserID,
		DoneAt:       m.DoneAt,
		Position:     m.Position,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ChecklistItemModel) FromDomain(i *tasks.ChecklistItem) {
	m.ID = i.ID
	m.TaskID = i.TaskID
	m.Label = i.Label
	m.Done = i.Done
	m.DoneByUserID = i.DoneByUserID
	m.DoneAt = i.DoneAt
	m.Position = i.Position
}
