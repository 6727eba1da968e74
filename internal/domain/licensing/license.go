package licensing

import (
	"errors"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Subscription plan constants
const (
	PlanBasic    = "basic"
	PlanStandard = "standard"
	PlanPremium  = "premium"
)

// License status constants
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusCancelled = "cancelled"
)

// ErrNotFound is returned when no license matches the given ID.
var ErrNotFound = errors.New("license not found")

// ErrSeatLimitReached is returned when activating a user would exceed the
// license's seat limit.
var ErrSeatLimitReached = errors.New("seat limit reached")

// License entity: a subscribing accounting firm and the unit of tenancy.
type License struct {
	ID        string    `validate:"required,uuid4"`
	FirmName  string    `validate:"required,min=1,max=255"`
	OrgNumber string    `validate:"required,orgnr"`
	Plan      string    `validate:"required,oneof=basic standard premium"`
	SeatLimit int       `validate:"required,min=1"`
	Status    string    `validate:"required,oneof=active suspended cancelled"`
	RenewsAt  time.Time `validate:"required"`
	CreatedAt time.Time `validate:"required"`
}

// Validate checks the license against its field constraints.
func (l *License) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("orgnr", validators.OrgNumberValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(l)
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

// SeatUsage describes how many of a license's seats are occupied.
type SeatUsage struct {
	SeatLimit   int
	ActiveUsers int
	UsedPercent float64
}

// NewSeatUsage computes the usage percentage, rounded to one decimal.
func NewSeatUsage(seatLimit, activeUsers int) SeatUsage {
	usage := SeatUsage{SeatLimit: seatLimit, ActiveUsers: activeUsers}
	if seatLimit > 0 {
		usage.UsedPercent = float64(int(float64(activeUsers)/float64(seatLimit)*1000+0.5)) / 10
	}
	return usage
}
