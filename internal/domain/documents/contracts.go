package documents

import "context"

// EngagementService defines engagement-letter operations, all scoped to a license.
type EngagementService interface {
	// Render assembles a new letter version for a client, stores the HTML in
	// object storage and the metadata in the database.
	Render(ctx context.Context, licenseID, clientID, userID string, terms Terms) (*EngagementLetter, error)

	// ListVersions retrieves a client's letter versions, newest first.
	ListVersions(ctx context.Context, licenseID, clientID string) ([]*EngagementLetter, error)

	// Download retrieves the rendered HTML of one version.
	Download(ctx context.Context, licenseID, letterID string) (*EngagementLetter, []byte, error)
}

// EngagementRepository defines the persistence interface for letter metadata.
type EngagementRepository interface {
	Create(ctx context.Context, letter *EngagementLetter) error
	ListByClient(ctx context.Context, licenseID, clientID string) ([]*EngagementLetter, error)
	GetByID(ctx context.Context, licenseID, letterID string) (*EngagementLetter, error)
	// LatestVersion returns 0 when the client has no letters yet
	LatestVersion(ctx context.Context, licenseID, clientID string) (int, error)
}

// DocumentConnector is the object-storage interface for rendered documents.
type DocumentConnector interface {
	// Upload stores content under key and returns the stored size.
	Upload(ctx context.Context, key string, content []byte, contentType string) (int64, error)

	// Download retrieves the content stored under key.
	Download(ctx context.Context, key string) ([]byte, error)

	// Delete removes the content stored under key.
	Delete(ctx context.Context, key string) error
}
