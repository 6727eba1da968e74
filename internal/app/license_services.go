package app

import (
	"context"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/google/uuid"
)

// licenseService implements the LicenseService interface
type licenseService struct {
	licenseRepo licensing.LicenseRepository
	logger      logger.Logger
}

// NewLicenseService creates a new instance of LicenseService
func NewLicenseService(licenseRepo licensing.LicenseRepository, logger logger.Logger) (licensing.LicenseService, error) {
	return &licenseService{
		licenseRepo: licenseRepo,
		logger:      logger,
	}, nil
}

// Create registers a new subscribing firm.
func (s *licenseService) Create(ctx context.Context, firmName, orgNumber, plan string, seatLimit int) (*licensing.License, error) {
	license := &licensing.License{
		ID:        uuid.New().String(),
		FirmName:  firmName,
		OrgNumber: orgNumber,
		Plan:      plan,
		SeatLimit: seatLimit,
		Status:    licensing.StatusActive,
		RenewsAt:  time.Now().AddDate(1, 0, 0),
		CreatedAt: time.Now(),
	}

	if err := s.licenseRepo.Create(ctx, license); err != nil {
		return nil, fmt.Errorf("failed to create license: %w", err)
	}

	s.logger.Info("license created", "license_id", license.ID, "firm", license.FirmName, "plan", license.Plan)
	return license, nil
}

// GetByID retrieves a license by ID.
func (s *licenseService) GetByID(ctx context.Context, licenseID string) (*licensing.License, error) {
	license, err := s.licenseRepo.GetByID(ctx, licenseID)
	if err != nil {
		return nil, err
	}
	return license, nil
}

// UpdatePlan changes plan and seat limit. Lowering the seat limit below the
// current active user count fails with ErrSeatLimitReached.
func (s *licenseService) UpdatePlan(ctx context.Context, licenseID, plan string, seatLimit int) (*licensing.License, error) {
	license, err := s.licenseRepo.GetByID(ctx, licenseID)
	if err != nil {
		return nil, err
	}

	activeUsers, err := s.licenseRepo.CountActiveUsers(ctx, licenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	if seatLimit < activeUsers {
		return nil, licensing.ErrSeatLimitReached
	}

	license.Plan = plan
	license.SeatLimit = seatLimit
	if err := s.licenseRepo.UpdateByID(ctx, license); err != nil {
		return nil, fmt.Errorf("failed to update license: %w", err)
	}

	s.logger.Info("license plan updated", "license_id", license.ID, "plan", plan, "seat_limit", seatLimit)
	return license, nil
}

// SetStatus suspends, reactivates or cancels a license.
func (s *licenseService) SetStatus(ctx context.Context, licenseID, status string) (*licensing.License, error) {
	license, err := s.licenseRepo.GetByID(ctx, licenseID)
	if err != nil {
		return nil, err
	}

	license.Status = status
	if err := s.licenseRepo.UpdateByID(ctx, license); err != nil {
		return nil, fmt.Errorf("failed to update license: %w", err)
	}

	s.logger.Info("license status changed", "license_id", license.ID, "status", status)
	return license, nil
}

// SeatUsage reports seat occupancy for the license.
func (s *licenseService) SeatUsage(ctx context.Context, licenseID string) (*licensing.SeatUsage, error) {
	license, err := s.licenseRepo.GetByID(ctx, licenseID)
	if err != nil {
		return nil, err
	}

	activeUsers, err := s.licenseRepo.CountActiveUsers(ctx, licenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	usage := licensing.NewSeatUsage(license.SeatLimit, activeUsers)
	return &usage, nil
}
