package app

import (
	"context"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/accounting"
	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"
)

// integrationService implements the IntegrationService interface
type integrationService struct {
	registry   *accounting.Registry
	clientRepo clients.ClientRepository
	recorder   audit.Recorder
	logger     logger.Logger
}

// NewIntegrationService creates a new instance of IntegrationService
func NewIntegrationService(registry *accounting.Registry, clientRepo clients.ClientRepository, recorder audit.Recorder, logger logger.Logger) (accounting.IntegrationService, error) {
	return &integrationService{
		registry:   registry,
		clientRepo: clientRepo,
		recorder:   recorder,
		logger:     logger,
	}, nil
}

// Vendors lists the registered vendor keys.
func (s *integrationService) Vendors(ctx context.Context) []string {
	return s.registry.Vendors()
}

// TestConnection checks the adapter configured for a client's accounting system.
func (s *integrationService) TestConnection(ctx context.Context, licenseID, clientID string) error {
	adapter, _, err := s.adapterForClient(ctx, licenseID, clientID)
	if err != nil {
		return err
	}
	return adapter.TestConnection(ctx)
}

// SyncClient pulls the vendor registry and matches the client by organisation
// number, storing the external reference on match.
func (s *integrationService) SyncClient(ctx context.Context, licenseID, clientID, userID string) (*accounting.SyncResult, error) {
	adapter, client, err := s.adapterForClient(ctx, licenseID, clientID)
	if err != nil {
		return nil, err
	}

	externalClients, err := adapter.FetchClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s clients: %w", adapter.VendorName(), err)
	}

	result := &accounting.SyncResult{
		Vendor:      adapter.VendorName(),
		ClientsSeen: len(externalClients),
		SyncedAt:    time.Now(),
	}

	for _, external := range externalClients {
		if external.OrgNumber != client.OrgNumber {
			continue
		}
		result.Matched = true
		result.ExternalRef = external.ExternalRef
		break
	}

	if result.Matched {
		client.ExternalRef = &result.ExternalRef
		client.UpdatedAt = time.Now()
		if err := s.clientRepo.UpdateByID(ctx, client); err != nil {
			return nil, fmt.Errorf("failed to store external ref: %w", err)
		}
	}

	s.logger.Info("client sync finished",
		"client_id", clientID,
		"vendor", result.Vendor,
		"matched", result.Matched,
		"clients_seen", result.ClientsSeen)
	s.recorder.Record(ctx, licenseID, userID, "client", clientID, audit.ActionSync,
		fmt.Sprintf("vendor %s matched %t", result.Vendor, result.Matched))

	return result, nil
}

func (s *integrationService) adapterForClient(ctx context.Context, licenseID, clientID string) (accounting.Adapter, *clients.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, licenseID, clientID)
	if err != nil {
		return nil, nil, err
	}
	if client.AccountingSystem == clients.SystemNone {
		return nil, nil, fmt.Errorf("client has no accounting system configured")
	}

	adapter, err := s.registry.Resolve(client.AccountingSystem)
	if err != nil {
		return nil, nil, err
	}
	return adapter, client, nil
}
