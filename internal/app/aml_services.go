package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/aml"
	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/google/uuid"
)

// amlService implements the AmlService interface
type amlService struct {
	amlRepo    aml.AmlRepository
	clientRepo clients.ClientRepository
	recorder   audit.Recorder
	logger     logger.Logger
}

// NewAmlService creates a new instance of AmlService
func NewAmlService(amlRepo aml.AmlRepository, clientRepo clients.ClientRepository, recorder audit.Recorder, logger logger.Logger) (aml.AmlService, error) {
	return &amlService{
		amlRepo:    amlRepo,
		clientRepo: clientRepo,
		recorder:   recorder,
		logger:     logger,
	}, nil
}

// GetByClientID retrieves the AML status of a client.
func (s *amlService) GetByClientID(ctx context.Context, licenseID, clientID string) (*aml.AmlStatus, error) {
	if _, err := s.clientRepo.GetByID(ctx, licenseID, clientID); err != nil {
		return nil, err
	}
	return s.amlRepo.GetByClientID(ctx, licenseID, clientID)
}

// Assess records a review for a client, recomputing score, level and next
// review deadline. Creates the status row on first assessment.
func (s *amlService) Assess(ctx context.Context, licenseID, clientID, reviewerID string, assessment aml.Assessment) (*aml.AmlStatus, error) {
	if err := assessment.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.clientRepo.GetByID(ctx, licenseID, clientID); err != nil {
		return nil, err
	}

	now := time.Now()
	score, level, nextReview := aml.Evaluate(assessment, now)

	isNew := false
	status, err := s.amlRepo.GetByClientID(ctx, licenseID, clientID)
	if err != nil {
		if !errors.Is(err, aml.ErrNotFound) {
			return nil, err
		}
		isNew = true
		status = &aml.AmlStatus{
			ID:        uuid.New().String(),
			LicenseID: licenseID,
			ClientID:  clientID,
		}
	}

	status.GeographyRisk = assessment.GeographyRisk
	status.IndustryRisk = assessment.IndustryRisk
	status.OwnershipRisk = assessment.OwnershipRisk
	status.TransactionRisk = assessment.TransactionRisk
	status.PepConfirmed = assessment.PepConfirmed
	status.IdentityVerified = assessment.IdentityVerified
	status.RiskScore = score
	status.RiskLevel = level
	status.LastReviewedAt = now
	status.NextReviewAt = nextReview
	status.ReviewedBy = reviewerID

	if isNew {
		if err := s.amlRepo.Create(ctx, status); err != nil {
			return nil, fmt.Errorf("failed to create aml status: %w", err)
		}
	} else {
		if err := s.amlRepo.UpdateByID(ctx, status); err != nil {
			return nil, fmt.Errorf("failed to update aml status: %w", err)
		}
	}

	s.logger.Info("aml assessment recorded",
		"client_id", clientID,
		"risk_score", score,
		"risk_level", level,
		"pep", assessment.PepConfirmed,
		"next_review", nextReview.Format("2006-01-02"))
	s.recorder.Record(ctx, licenseID, reviewerID, "aml_status", status.ID, audit.ActionAssess, fmt.Sprintf("level %s score %.2f", level, score))

	return status, nil
}

// ListByLevel retrieves statuses at the given risk level.
func (s *amlService) ListByLevel(ctx context.Context, licenseID, level string) ([]*aml.AmlStatus, error) {
	switch level {
	case aml.RiskLow, aml.RiskMedium, aml.RiskHigh:
	default:
		return nil, fmt.Errorf("unsupported risk level: %s", level)
	}
	return s.amlRepo.ListByLevel(ctx, licenseID, level)
}

// ListOverdue retrieves statuses past their next review deadline.
func (s *amlService) ListOverdue(ctx context.Context, licenseID string) ([]*aml.AmlStatus, error) {
	return s.amlRepo.ListOverdue(ctx, licenseID)
}
