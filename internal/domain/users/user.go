package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Role constants
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// ErrInvalidCredentials is returned on failed login attempts. The message is
// deliberately the same for unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User entity. PasswordHash holds a bcrypt digest and never leaves the service layer.
type User struct {
	ID           string    `validate:"required,uuid4"`
	LicenseID    string    `validate:"required,uuid4"`
	Email        string    `validate:"required,email,max=255"`
	Name         string    `validate:"required,min=1,max=255"`
	Role         string    `validate:"required,oneof=admin employee"`
	PasswordHash string    `validate:"required"`
	Active       bool
	CreatedAt    time.Time `validate:"required"`
}

// Validate checks the user against its field constraints.
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// ApiToken is an opaque bearer token issued to a user. Only the SHA-256
// digest of the token is stored.
type ApiToken struct {
	ID         string    `validate:"required,uuid4"`
	UserID     string    `validate:"required,uuid4"`
	LicenseID  string    `validate:"required,uuid4"`
	TokenHash  string    `validate:"required,len=64,hexadecimal"`
	Name       string    `validate:"required,min=1,max=255"`
	ExpiresAt  time.Time `validate:"required"`
	LastUsedAt *time.Time
	CreatedAt  time.Time `validate:"required"`
}

// Validate checks the token against its field constraints.
func (t *ApiToken) Validate() error {
	validate := validator.New()

	err := validate.Struct(t)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *ApiToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
