package timetracking

import "context"

// TimeEntryService defines time registration operations, all scoped to a license.
type TimeEntryService interface {
	// Create registers worked time. The entry date must not be in the future.
	Create(ctx context.Context, licenseID string, entry *TimeEntry) (*TimeEntry, error)

	// List retrieves entries matching the query filter.
	List(ctx context.Context, licenseID string, query *TimeEntryQuery) ([]*TimeEntry, error)

	// GetByID retrieves an entry by ID.
	GetByID(ctx context.Context, licenseID, entryID string) (*TimeEntry, error)

	// UpdateByID updates an entry. Only the entry's owner or an admin may update.
	UpdateByID(ctx context.Context, licenseID string, entry *TimeEntry) (*TimeEntry, error)

	// DeleteByID deletes an entry.
	DeleteByID(ctx context.Context, licenseID, entryID string) error

	// TotalsForQuery aggregates minutes over entries matching the filter.
	TotalsForQuery(ctx context.Context, licenseID string, query *TimeEntryQuery) (*Totals, error)
}

// TimeEntryRepository defines the persistence interface for time entries.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *TimeEntry) error
	List(ctx context.Context, licenseID string, query *TimeEntryQuery) ([]*TimeEntry, error)
	GetByID(ctx context.Context, licenseID, entryID string) (*TimeEntry, error)
	UpdateByID(ctx context.Context, entry *TimeEntry) error
	DeleteByID(ctx context.Context, licenseID, entryID string) error
	// Totals aggregates minutes (total, billable) over the matching entries
	Totals(ctx context.Context, licenseID string, query *TimeEntryQuery) (*Totals, error)
}
