package licensing

import "context"

// LicenseService defines operations on the tenant license.
type LicenseService interface {
	// Create registers a new subscribing firm.
	Create(ctx context.Context, firmName, orgNumber, plan string, seatLimit int) (*License, error)

	// GetByID retrieves a license by ID.
	GetByID(ctx context.Context, licenseID string) (*License, error)

	// UpdatePlan changes plan and seat limit. Lowering the seat limit below
	// the current active user count fails with ErrSeatLimitReached.
	UpdatePlan(ctx context.Context, licenseID, plan string, seatLimit int) (*License, error)

	// SetStatus suspends, reactivates or cancels a license.
	SetStatus(ctx context.Context, licenseID, status string) (*License, error)

	// SeatUsage reports seat occupancy for the license.
	SeatUsage(ctx context.Context, licenseID string) (*SeatUsage, error)
}

// LicenseRepository defines the persistence interface for licenses.
type LicenseRepository interface {
	// Create adds a new License to the database
	Create(ctx context.Context, license *License) error
	// GetByID retrieves a License from the database by ID
	GetByID(ctx context.Context, licenseID string) (*License, error)
	// ListActive lists all licenses with active status
	ListActive(ctx context.Context) ([]*License, error)
	// UpdateByID updates a License in the database by ID
	UpdateByID(ctx context.Context, license *License) error
	// CountActiveUsers counts non-deactivated users belonging to the license
	CountActiveUsers(ctx context.Context, licenseID string) (int, error)
}
