package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/aml"
	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/domain/dashboard"
	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormDashboardRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDashboardRepository creates a new GORM-based DashboardRepository implementation
func NewGormDashboardRepository(db *gorm.DB, logger logger.Logger) (dashboard.DashboardRepository, error) {
	return &gormDashboardRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDashboardRepository) Summary(ctx context.Context, licenseID, userID string) (*dashboard.Summary, error) {
	now := time.Now()
	weekEnd := now.AddDate(0, 0, 7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	summary := &dashboard.Summary{}
	db := r.db.WithContext(ctx)

	openStatuses := []string{tasks.StatusOpen, tasks.StatusInProgress}

	err := db.Model(&models.TaskModel{}).
		Where("license_id = ? AND status IN ?", licenseID, openStatuses).
		Count(&summary.OpenTasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count open tasks: %w", err)
	}

	err = db.Model(&models.TaskModel{}).
		Where("license_id = ? AND status IN ? AND due_date < ?", licenseID, openStatuses, now).
		Count(&summary.OverdueTasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count overdue tasks: %w", err)
	}

	err = db.Model(&models.TaskModel{}).
		Where("license_id = ? AND status IN ? AND due_date >= ? AND due_date <= ?",
			licenseID, openStatuses, now, weekEnd).
		Count(&summary.TasksDueThisWeek).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks due this week: %w", err)
	}

	err = db.Model(&models.AmlStatusModel{}).
		Where("license_id = ? AND risk_level = ?", licenseID, aml.RiskHigh).
		Count(&summary.HighRiskClients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count high risk clients: %w", err)
	}

	err = db.Model(&models.AmlStatusModel{}).
		Where("license_id = ? AND next_review_at < ?", licenseID, now).
		Count(&summary.AmlReviewsOverdue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count overdue aml reviews: %w", err)
	}

	type minutesRow struct {
		Total    int64
		Billable int64
	}
	var minutes minutesRow
	err = db.Model(&models.TimeEntryModel{}).
		Where("license_id = ? AND date >= ?", licenseID, monthStart).
		Select("COALESCE(SUM(minutes), 0) AS total, " +
			"COALESCE(SUM(CASE WHEN billable THEN minutes ELSE 0 END), 0) AS billable").
		Scan(&minutes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly minutes: %w", err)
	}
	summary.MinutesThisMonth = minutes.Total
	summary.BillableMinutesMonth = minutes.Billable

	err = db.Model(&models.ClientModel{}).
		Where("license_id = ? AND status = ?", licenseID, clients.StatusActive).
		Count(&summary.ActiveClients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count active clients: %w", err)
	}

	err = db.Model(&models.UserModel{}).
		Where("license_id = ? AND active = ?", licenseID, true).
		Count(&summary.ActiveUsers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	var license models.LicenseModel
	if err := db.Where("id = ?", licenseID).First(&license).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch license: %w", err)
	}
	summary.SeatLimit = license.SeatLimit
	summary.SeatUsagePercent = licensing.NewSeatUsage(license.SeatLimit, int(summary.ActiveUsers)).UsedPercent

	err = db.Model(&models.NotificationModel{}).
		Where("license_id = ? AND user_id = ? AND read_at IS NULL", licenseID, userID).
		Count(&summary.UnreadNotifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return summary, nil
}
