package clients

import "context"

// ClientService defines CRM operations, all scoped to a license.
type ClientService interface {
	// Create registers a new client for the license.
	Create(ctx context.Context, licenseID string, client *Client) (*Client, error)

	// List retrieves clients matching the query filter.
	List(ctx context.Context, licenseID string, query *ClientQuery) ([]*Client, error)

	// GetByID retrieves a client by ID.
	GetByID(ctx context.Context, licenseID, clientID string) (*Client, error)

	// UpdateByID updates mutable client fields.
	UpdateByID(ctx context.Context, licenseID string, client *Client) (*Client, error)

	// DeleteByID archives an active client; deleting an already archived
	// client removes the row when nothing references it.
	DeleteByID(ctx context.Context, licenseID, clientID string) error
}

// ClientRepository defines the persistence interface for clients.
type ClientRepository interface {
	// Create adds a new Client to the database
	Create(ctx context.Context, client *Client) error
	// List lists Clients in the database with optional filter
	List(ctx context.Context, licenseID string, query *ClientQuery) ([]*Client, error)
	// GetByID retrieves a Client from the database by ID within the license
	GetByID(ctx context.Context, licenseID, clientID string) (*Client, error)
	// GetByOrgNumber retrieves a Client by organisation number within the license
	GetByOrgNumber(ctx context.Context, licenseID, orgNumber string) (*Client, error)
	// UpdateByID updates a Client in the database by ID
	UpdateByID(ctx context.Context, client *Client) error
	// DeleteByID deletes a Client in the database by ID
	DeleteByID(ctx context.Context, licenseID, clientID string) error
	// CountReferences counts tasks and time entries referencing the client
	CountReferences(ctx context.Context, clientID string) (int64, error)
}
