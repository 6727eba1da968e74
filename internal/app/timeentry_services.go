package app

import (
	"context"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/domain/timetracking"
	"github.com/StianAK82/regnskapsky/internal/domain/users"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/google/uuid"
)

// timeEntryService implements the TimeEntryService interface
type timeEntryService struct {
	timeEntryRepo timetracking.TimeEntryRepository
	clientRepo    clients.ClientRepository
	recorder      audit.Recorder
	logger        logger.Logger
}

// NewTimeEntryService creates a new instance of TimeEntryService
func NewTimeEntryService(timeEntryRepo timetracking.TimeEntryRepository, clientRepo clients.ClientRepository, recorder audit.Recorder, logger logger.Logger) (timetracking.TimeEntryService, error) {
	return &timeEntryService{
		timeEntryRepo: timeEntryRepo,
		clientRepo:    clientRepo,
		recorder:      recorder,
		logger:        logger,
	}, nil
}

// Create registers worked time. The entry date must not be in the future.
func (s *timeEntryService) Create(ctx context.Context, licenseID string, entry *timetracking.TimeEntry) (*timetracking.TimeEntry, error) {
	if entry.Date.After(endOfToday()) {
		return nil, timetracking.ErrFutureDate
	}
	if _, err := s.clientRepo.GetByID(ctx, licenseID, entry.ClientID); err != nil {
		return nil, err
	}

	entry.ID = uuid.New().String()
	entry.LicenseID = licenseID
	entry.CreatedAt = time.Now()

	if err := s.timeEntryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	s.logger.Info("time entry created", "entry_id", entry.ID, "client_id", entry.ClientID, "minutes", entry.Minutes)
	return entry, nil
}

// List retrieves entries matching the query filter.
func (s *timeEntryService) List(ctx context.Context, licenseID string, query *timetracking.TimeEntryQuery) ([]*timetracking.TimeEntry, error) {
	if query == nil {
		query = timetracking.NewTimeEntryQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.timeEntryRepo.List(ctx, licenseID, query)
}

// GetByID retrieves an entry by ID.
func (s *timeEntryService) GetByID(ctx context.Context, licenseID, entryID string) (*timetracking.TimeEntry, error) {
	return s.timeEntryRepo.GetByID(ctx, licenseID, entryID)
}

// UpdateByID updates an entry. Only the entry's owner or an admin may update.
func (s *timeEntryService) UpdateByID(ctx context.Context, licenseID string, entry *timetracking.TimeEntry) (*timetracking.TimeEntry, error) {
	existing, err := s.timeEntryRepo.GetByID(ctx, licenseID, entry.ID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwner(ctx, existing); err != nil {
		return nil, err
	}
	if entry.Date.After(endOfToday()) {
		return nil, timetracking.ErrFutureDate
	}

	entry.LicenseID = licenseID
	entry.UserID = existing.UserID
	entry.CreatedAt = existing.CreatedAt

	if err := s.timeEntryRepo.UpdateByID(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}

	recordAsActor(ctx, s.recorder, licenseID, "time_entry", entry.ID, audit.ActionUpdate, fmt.Sprintf("%d minutes", entry.Minutes))
	return entry, nil
}

// DeleteByID deletes an entry. Only the entry's owner or an admin may delete.
func (s *timeEntryService) DeleteByID(ctx context.Context, licenseID, entryID string) error {
	existing, err := s.timeEntryRepo.GetByID(ctx, licenseID, entryID)
	if err != nil {
		return err
	}
	if err := s.authorizeOwner(ctx, existing); err != nil {
		return err
	}

	if err := s.timeEntryRepo.DeleteByID(ctx, licenseID, entryID); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	recordAsActor(ctx, s.recorder, licenseID, "time_entry", entryID, audit.ActionDelete, "")
	return nil
}

// TotalsForQuery aggregates minutes over entries matching the filter.
func (s *timeEntryService) TotalsForQuery(ctx context.Context, licenseID string, query *timetracking.TimeEntryQuery) (*timetracking.Totals, error) {
	if query == nil {
		query = timetracking.NewTimeEntryQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.timeEntryRepo.Totals(ctx, licenseID, query)
}

func (s *timeEntryService) authorizeOwner(ctx context.Context, entry *timetracking.TimeEntry) error {
	identity, ok := users.IdentityFromContext(ctx)
	if !ok {
		return nil
	}
	if identity.IsAdmin() || identity.UserID == entry.UserID {
		return nil
	}
	return fmt.Errorf("only the entry owner or an admin may modify a time entry")
}

func endOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
}
