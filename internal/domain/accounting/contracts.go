package accounting

import (
	"context"
	"errors"
	"time"
)

// ErrNotSupported is returned by adapter methods the vendor API does not
// support (or that are not wired up yet).
var ErrNotSupported = errors.New("operation not supported by this vendor")

// ErrVendorNotRegistered is returned when resolving a vendor key with no
// registered adapter.
var ErrVendorNotRegistered = errors.New("no adapter registered for vendor")

// ExternalClient is a customer record as the vendor system reports it.
type ExternalClient struct {
	ExternalRef string
	Name        string
	OrgNumber   string
	Email       string
}

// ExternalInvoice is an invoice as the vendor system reports it.
type ExternalInvoice struct {
	ExternalRef string
	ClientRef   string
	IssuedAt    time.Time
	DueAt       time.Time
	AmountNOK   float64
	Paid        bool
}

// Adapter is the per-vendor integration strategy.
type Adapter interface {
	// VendorName returns the registry key, e.g. "fiken".
	VendorName() string

	// TestConnection verifies credentials against the vendor API.
	TestConnection(ctx context.Context) error

	// FetchClients retrieves the vendor's customer registry.
	FetchClients(ctx context.Context) ([]ExternalClient, error)

	// FetchInvoices retrieves invoices issued since the given instant.
	// Vendors without invoice support return ErrNotSupported.
	FetchInvoices(ctx context.Context, since time.Time) ([]ExternalInvoice, error)
}

// SyncResult summarises one registry sync run for a client.
type SyncResult struct {
	Vendor      string
	Matched     bool
	ExternalRef string
	ClientsSeen int
	SyncedAt    time.Time
}

// IntegrationService defines the accounting-integration operations.
type IntegrationService interface {
	// Vendors lists the registered vendor keys.
	Vendors(ctx context.Context) []string

	// TestConnection checks the adapter configured for a client's
	// accounting system.
	TestConnection(ctx context.Context, licenseID, clientID string) error

	// SyncClient pulls the vendor registry and matches the client by
	// organisation number, storing the external reference on match.
	SyncClient(ctx context.Context, licenseID, clientID, userID string) (*SyncResult, error)
}
