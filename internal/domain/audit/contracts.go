package audit

import "context"

// Recorder is the write side of the audit trail, used by the other services.
// Recording failures must not fail the underlying business operation.
type Recorder interface {
	Record(ctx context.Context, licenseID, userID, entity, entityID, action, details string)
}

// AuditService defines the read side, admin only.
type AuditService interface {
	List(ctx context.Context, licenseID string, query *EntryQuery) ([]*Entry, error)
}

// AuditRepository defines the persistence interface for audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *Entry) error
	List(ctx context.Context, licenseID string, query *EntryQuery) ([]*Entry, error)
}
