package app

import (
	"context"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/domain/documents"
	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/google/uuid"
)

// engagementService implements the EngagementService interface. The document
// connector is nil on deployments without object storage; rendering then
// fails with ErrStoreUnconfigured.
type engagementService struct {
	engagementRepo documents.EngagementRepository
	licenseRepo    licensing.LicenseRepository
	clientRepo     clients.ClientRepository
	connector      documents.DocumentConnector
	recorder       audit.Recorder
	logger         logger.Logger
}

// NewEngagementService creates a new instance of EngagementService
func NewEngagementService(
	engagementRepo documents.EngagementRepository,
	licenseRepo licensing.LicenseRepository,
	clientRepo clients.ClientRepository,
	connector documents.DocumentConnector,
	recorder audit.Recorder,
	logger logger.Logger,
) (documents.EngagementService, error) {
	return &engagementService{
		engagementRepo: engagementRepo,
		licenseRepo:    licenseRepo,
		clientRepo:     clientRepo,
		connector:      connector,
		recorder:       recorder,
		logger:         logger,
	}, nil
}

// Render assembles a new letter version for a client, stores the HTML in
// object storage and the metadata in the database.
func (s *engagementService) Render(ctx context.Context, licenseID, clientID, userID string, terms documents.Terms) (*documents.EngagementLetter, error) {
	if s.connector == nil {
		return nil, documents.ErrStoreUnconfigured
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	license, err := s.licenseRepo.GetByID(ctx, licenseID)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.GetByID(ctx, licenseID, clientID)
	if err != nil {
		return nil, err
	}

	latest, err := s.engagementRepo.LatestVersion(ctx, licenseID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve latest version: %w", err)
	}
	version := latest + 1
	now := time.Now()

	content, err := documents.RenderLetter(documents.LetterData{
		FirmName:        license.FirmName,
		FirmOrgNumber:   license.OrgNumber,
		ClientName:      client.Name,
		ClientOrgNumber: client.OrgNumber,
		Terms:           terms,
		Version:         version,
		Rendered:        now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render letter: %w", err)
	}

	objectKey := fmt.Sprintf("licenses/%s/clients/%s/oppdragsavtale-v%d.html", licenseID, clientID, version)
	size, err := s.connector.Upload(ctx, objectKey, content, "text/html; charset=utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to store letter: %w", err)
	}

	letter := &documents.EngagementLetter{
		ID:         uuid.New().String(),
		LicenseID:  licenseID,
		ClientID:   clientID,
		Version:    version,
		ObjectKey:  objectKey,
		SizeBytes:  size,
		RenderedAt: now,
		RenderedBy: userID,
	}

	if err := s.engagementRepo.Create(ctx, letter); err != nil {
		// The object is orphaned without its metadata row
		if deleteErr := s.connector.Delete(ctx, objectKey); deleteErr != nil {
			s.logger.Error("failed to remove orphaned letter object", "object_key", objectKey, "error", deleteErr)
		}
		return nil, fmt.Errorf("failed to store letter metadata: %w", err)
	}

	s.logger.Info("engagement letter rendered", "letter_id", letter.ID, "client_id", clientID, "version", version)
	s.recorder.Record(ctx, licenseID, userID, "engagement_letter", letter.ID, audit.ActionCreate, fmt.Sprintf("version %d", version))
	return letter, nil
}

// ListVersions retrieves a client's letter versions, newest first.
func (s *engagementService) ListVersions(ctx context.Context, licenseID, clientID string) ([]*documents.EngagementLetter, error) {
	if _, err := s.clientRepo.GetByID(ctx, licenseID, clientID); err != nil {
		return nil, err
	}
	return s.engagementRepo.ListByClient(ctx, licenseID, clientID)
}

// Download retrieves the rendered HTML of one version.
func (s *engagementService) Download(ctx context.Context, licenseID, letterID string) (*documents.EngagementLetter, []byte, error) {
	if s.connector == nil {
		return nil, nil, documents.ErrStoreUnconfigured
	}

	letter, err := s.engagementRepo.GetByID(ctx, licenseID, letterID)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.connector.Download(ctx, letter.ObjectKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to download letter: %w", err)
	}

	return letter, content, nil
}
