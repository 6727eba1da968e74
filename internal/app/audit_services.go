package app

import (
	"context"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/domain/users"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/google/uuid"
)

// recordAsActor writes an audit entry attributed to the authenticated
// identity on the context. Unauthenticated contexts (CLI, scheduler) skip
// the entry.
func recordAsActor(ctx context.Context, recorder audit.Recorder, licenseID, entity, entityID, action, details string) {
	identity, ok := users.IdentityFromContext(ctx)
	if !ok {
		return
	}
	recorder.Record(ctx, licenseID, identity.UserID, entity, entityID, action, details)
}

// auditRecorder implements the audit.Recorder interface. A failed write is
// logged and swallowed so the business operation it annotates still succeeds.
type auditRecorder struct {
	auditRepo audit.AuditRepository
	logger    logger.Logger
}

// NewAuditRecorder creates a new instance of audit.Recorder
func NewAuditRecorder(auditRepo audit.AuditRepository, logger logger.Logger) (audit.Recorder, error) {
	return &auditRecorder{
		auditRepo: auditRepo,
		logger:    logger,
	}, nil
}

// Record writes one audit entry.
func (r *auditRecorder) Record(ctx context.Context, licenseID, userID, entity, entityID, action, details string) {
	entry := &audit.Entry{
		ID:        uuid.New().String(),
		LicenseID: licenseID,
		UserID:    userID,
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	}

	if err := r.auditRepo.Create(ctx, entry); err != nil {
		r.logger.Error("failed to record audit entry", "entity", entity, "entity_id", entityID, "action", action, "error", err)
	}
}

// auditService implements the AuditService interface
type auditService struct {
	auditRepo audit.AuditRepository
	logger    logger.Logger
}

// NewAuditService creates a new instance of AuditService
func NewAuditService(auditRepo audit.AuditRepository, logger logger.Logger) (audit.AuditService, error) {
	return &auditService{
		auditRepo: auditRepo,
		logger:    logger,
	}, nil
}

// List retrieves audit entries matching the query filter.
func (s *auditService) List(ctx context.Context, licenseID string, query *audit.EntryQuery) ([]*audit.Entry, error) {
	if query == nil {
		query = audit.NewEntryQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.auditRepo.List(ctx, licenseID, query)
}
