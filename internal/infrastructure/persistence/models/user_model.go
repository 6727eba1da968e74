package models

import (
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	LicenseID    string    `gorm:"not null;index;type:uuid"`
	Email        string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Name         string    `gorm:"not null;type:varchar(255)"`
	Role         string    `gorm:"not null;type:varchar(20)"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		LicenseID:    m.LicenseID,
		Email:        m.Email,
		Name:         m.Name,
		Role:         m.Role,
		PasswordHash: m.PasswordHash,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.LicenseID = u.LicenseID
	m.Email = u.Email
	m.Name = u.Name
	m.Role = u.Role
	m.PasswordHash = u.PasswordHash
	m.Active = u.Active
	m.CreatedAt = u.CreatedAt
}

// ApiTokenModel is the GORM database model for API tokens
type ApiTokenModel struct {
	ID         string     `gorm:"primaryKey;type:uuid"`
	UserID     string     `gorm:"not null;index;type:uuid"`
	LicenseID  string     `gorm:"not null;index;type:uuid"`
	TokenHash  string     `gorm:"not null;uniqueIndex;type:char(64)"`
	Name       string     `gorm:"not null;type:varchar(255)"`
	ExpiresAt  time.Time  `gorm:"not null"`
	LastUsedAt *time.Time
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ApiTokenModel) TableName() string {
	return "api_tokens"
}

// ToDomain converts GORM model to domain entity
func (m *ApiTokenModel) ToDomain() *users.ApiToken {
	return &users.ApiToken{
		ID:         m.ID,
		UserID:     m.UserID,
		LicenseID:  m.LicenseID,
		TokenHash:  m.TokenHash,
		Name:       m.Name,
		ExpiresAt:  m.ExpiresAt,
		LastUsedAt: m.LastUsedAt,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ApiTokenModel) FromDomain(t *users.ApiToken) {
	m.ID = t.ID
	m.UserID = t.UserID
	m.LicenseID = t.LicenseID
	m.TokenHash = t.TokenHash
	m.Name = t.Name
	m.ExpiresAt = t.ExpiresAt
	m.LastUsedAt = t.LastUsedAt
	m.CreatedAt = t.CreatedAt
}
