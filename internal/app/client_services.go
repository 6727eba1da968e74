package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/google/uuid"
)

// clientService implements the ClientService interface
type clientService struct {
	clientRepo clients.ClientRepository
	recorder   audit.Recorder
	logger     logger.Logger
}

// NewClientService creates a new instance of ClientService
func NewClientService(clientRepo clients.ClientRepository, recorder audit.Recorder, logger logger.Logger) (clients.ClientService, error) {
	return &clientService{
		clientRepo: clientRepo,
		recorder:   recorder,
		logger:     logger,
	}, nil
}

// Create registers a new client for the license. The organisation number
// must be unique within the license.
func (s *clientService) Create(ctx context.Context, licenseID string, client *clients.Client) (*clients.Client, error) {
	existing, err := s.clientRepo.GetByOrgNumber(ctx, licenseID, client.OrgNumber)
	if err != nil && !errors.Is(err, clients.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("client with org number %s already exists", client.OrgNumber)
	}

	client.ID = uuid.New().String()
	client.LicenseID = licenseID
	if client.Status == "" {
		client.Status = clients.StatusActive
	}
	if client.AccountingSystem == "" {
		client.AccountingSystem = clients.SystemNone
	}
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.logger.Info("client created", "client_id", client.ID, "license_id", licenseID, "org_number", client.OrgNumber)
	recordAsActor(ctx, s.recorder, licenseID, "client", client.ID, audit.ActionCreate, client.Name)
	return client, nil
}

// List retrieves clients matching the query filter.
func (s *clientService) List(ctx context.Context, licenseID string, query *clients.ClientQuery) ([]*clients.Client, error) {
	if query == nil {
		query = clients.NewClientQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.clientRepo.List(ctx, licenseID, query)
}

// GetByID retrieves a client by ID.
func (s *clientService) GetByID(ctx context.Context, licenseID, clientID string) (*clients.Client, error) {
	return s.clientRepo.GetByID(ctx, licenseID, clientID)
}

// UpdateByID updates mutable client fields.
func (s *clientService) UpdateByID(ctx context.Context, licenseID string, client *clients.Client) (*clients.Client, error) {
	existing, err := s.clientRepo.GetByID(ctx, licenseID, client.ID)
	if err != nil {
		return nil, err
	}

	if client.OrgNumber != existing.OrgNumber {
		conflict, err := s.clientRepo.GetByOrgNumber(ctx, licenseID, client.OrgNumber)
		if err != nil && !errors.Is(err, clients.ErrNotFound) {
			return nil, err
		}
		if conflict != nil {
			return nil, fmt.Errorf("client with org number %s already exists", client.OrgNumber)
		}
	}

	client.LicenseID = licenseID
	client.CreatedAt = existing.CreatedAt
	client.UpdatedAt = time.Now()

	if err := s.clientRepo.UpdateByID(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	recordAsActor(ctx, s.recorder, licenseID, "client", client.ID, audit.ActionUpdate, client.Name)
	return client, nil
}

// DeleteByID archives an active client. Deleting an already archived client
// removes the row for good, which is only allowed when nothing references it.
func (s *clientService) DeleteByID(ctx context.Context, licenseID, clientID string) error {
	client, err := s.clientRepo.GetByID(ctx, licenseID, clientID)
	if err != nil {
		return err
	}

	if client.Status == clients.StatusActive {
		client.Status = clients.StatusArchived
		client.UpdatedAt = time.Now()
		if err := s.clientRepo.UpdateByID(ctx, client); err != nil {
			return fmt.Errorf("failed to archive client: %w", err)
		}
		s.logger.Info("client archived", "client_id", clientID)
		recordAsActor(ctx, s.recorder, licenseID, "client", clientID, audit.ActionUpdate, "archived")
		return nil
	}

	references, err := s.clientRepo.CountReferences(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to count references: %w", err)
	}
	if references > 0 {
		return clients.ErrHasReferences
	}

	if err := s.clientRepo.DeleteByID(ctx, licenseID, clientID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.logger.Info("client deleted", "client_id", clientID)
	recordAsActor(ctx, s.recorder, licenseID, "client", clientID, audit.ActionDelete, client.Name)
	return nil
}
