//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/aml"
	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/domain/dashboard"
	"github.com/StianAK82/regnskapsky/internal/domain/flags"
	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/domain/notifications"
	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
	"github.com/StianAK82/regnskapsky/internal/domain/timetracking"
	"github.com/StianAK82/regnskapsky/internal/domain/users"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence"
	"github.com/StianAK82/regnskapsky/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and the underlying database
// context for integration tests
type TestServices struct {
	LicenseService      licensing.LicenseService
	UserService         users.UserService
	AuthService         users.AuthService
	ClientService       clients.ClientService
	TaskService         tasks.TaskService
	TimeEntryService    timetracking.TimeEntryService
	AmlService          aml.AmlService
	NotificationService notifications.NotificationService
	FlagService         flags.FlagService
	AuditService        audit.AuditService
	DashboardService    dashboard.DashboardService
	Recorder            audit.Recorder

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	recorder, err := NewAuditRecorder(dbContext.AuditRepo, log)
	require.NoError(t, err, "Failed to create audit recorder")

	licenseService, err := NewLicenseService(dbContext.LicenseRepo, log)
	require.NoError(t, err, "Failed to create LicenseService")

	userService, err := NewUserService(dbContext.UserRepo, dbContext.TokenRepo, dbContext.LicenseRepo, log)
	require.NoError(t, err, "Failed to create UserService")

	authService, err := NewAuthService(dbContext.UserRepo, dbContext.TokenRepo, 90, log)
	require.NoError(t, err, "Failed to create AuthService")

	clientService, err := NewClientService(dbContext.ClientRepo, recorder, log)
	require.NoError(t, err, "Failed to create ClientService")

	taskService, err := NewTaskService(dbContext.TaskRepo, dbContext.ClientRepo, recorder, log)
	require.NoError(t, err, "Failed to create TaskService")

	timeEntryService, err := NewTimeEntryService(dbContext.TimeEntryRepo, dbContext.ClientRepo, recorder, log)
	require.NoError(t, err, "Failed to create TimeEntryService")

	amlService, err := NewAmlService(dbContext.AmlRepo, dbContext.ClientRepo, recorder, log)
	require.NoError(t, err, "Failed to create AmlService")

	notificationService, err := NewNotificationService(dbContext.NotificationRepo, log)
	require.NoError(t, err, "Failed to create NotificationService")

	flagService, err := NewFlagService(dbContext.FlagRepo, log)
	require.NoError(t, err, "Failed to create FlagService")

	auditService, err := NewAuditService(dbContext.AuditRepo, log)
	require.NoError(t, err, "Failed to create AuditService")

	dashboardService, err := NewDashboardService(dbContext.DashboardRepo, log)
	require.NoError(t, err, "Failed to create DashboardService")

	return &TestServices{
		LicenseService:      licenseService,
		UserService:         userService,
		AuthService:         authService,
		ClientService:       clientService,
		TaskService:         taskService,
		TimeEntryService:    timeEntryService,
		AmlService:          amlService,
		NotificationService: notificationService,
		FlagService:         flagService,
		AuditService:        auditService,
		DashboardService:    dashboardService,
		Recorder:            recorder,
		DBContext:           dbContext,
	}
}

// SetupTestTenant creates a license with one admin user and one client,
// the baseline most service tests need.
func SetupTestTenant(t *testing.T, services *TestServices) (*licensing.License, *users.User, *clients.Client) {
	t.Helper()
	ctx := context.Background()

	license, err := services.LicenseService.Create(ctx, "Testbyrå AS", persistence.TestOrgNumber, licensing.PlanStandard, 10)
	require.NoError(t, err)

	admin, err := services.UserService.Create(ctx, license.ID, "admin@testbyraa.no", "Admin Bruker", users.RoleAdmin, "hemmelig-passord")
	require.NoError(t, err)

	client, err := services.ClientService.Create(ctx, license.ID, &clients.Client{
		Name:      "Testkunde AS",
		OrgNumber: persistence.TestClientOrgNumber,
	})
	require.NoError(t, err)

	return license, admin, client
}

// NewDueTask creates a task due in the given number of days.
func NewDueTask(t *testing.T, services *TestServices, licenseID, clientID string, dueInDays int) *tasks.Task {
	t.Helper()

	due := time.Now().AddDate(0, 0, dueInDays)
	task, err := services.TaskService.Create(context.Background(), licenseID, &tasks.Task{
		ClientID: clientID,
		Title:    "Levere MVA-melding",
		DueDate:  &due,
	})
	require.NoError(t, err)
	return task
}
