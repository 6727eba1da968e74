package aml

import "context"

// AmlService defines KYC/AML compliance operations, all scoped to a license.
type AmlService interface {
	// GetByClientID retrieves the AML status of a client.
	GetByClientID(ctx context.Context, licenseID, clientID string) (*AmlStatus, error)

	// Assess records a review for a client, recomputing score, level and
	// next review deadline. Creates the status row on first assessment.
	Assess(ctx context.Context, licenseID, clientID, reviewerID string, assessment Assessment) (*AmlStatus, error)

	// ListByLevel retrieves statuses at the given risk level.
	ListByLevel(ctx context.Context, licenseID, level string) ([]*AmlStatus, error)

	// ListOverdue retrieves statuses past their next review deadline.
	ListOverdue(ctx context.Context, licenseID string) ([]*AmlStatus, error)
}

// AmlRepository defines the persistence interface for AML statuses.
type AmlRepository interface {
	Create(ctx context.Context, status *AmlStatus) error
	GetByClientID(ctx context.Context, licenseID, clientID string) (*AmlStatus, error)
	UpdateByID(ctx context.Context, status *AmlStatus) error
	ListByLevel(ctx context.Context, licenseID, level string) ([]*AmlStatus, error)
	ListOverdue(ctx context.Context, licenseID string) ([]*AmlStatus, error)
}
