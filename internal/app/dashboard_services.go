package app

import (
	"context"

	"github.com/StianAK82/regnskapsky/internal/domain/dashboard"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"
)

// dashboardService implements the DashboardService interface
type dashboardService struct {
	dashboardRepo dashboard.DashboardRepository
	logger        logger.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(dashboardRepo dashboard.DashboardRepository, logger logger.Logger) (dashboard.DashboardService, error) {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}, nil
}

// Summary assembles the per-license aggregate view.
func (s *dashboardService) Summary(ctx context.Context, licenseID, userID string) (*dashboard.Summary, error) {
	return s.dashboardRepo.Summary(ctx, licenseID, userID)
}
