//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/aml"
	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/domain/dashboard"
	"github.com/StianAK82/regnskapsky/internal/domain/documents"
	"github.com/StianAK82/regnskapsky/internal/domain/flags"
	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/domain/notifications"
	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
	"github.com/StianAK82/regnskapsky/internal/domain/timetracking"
	"github.com/StianAK82/regnskapsky/internal/domain/users"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"
	"github.com/StianAK82/regnskapsky/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Valid organisation numbers for test fixtures
const (
	TestOrgNumber       = "974761076"
	TestClientOrgNumber = "974760673"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB               *gorm.DB
	LicenseRepo      licensing.LicenseRepository
	UserRepo         users.UserRepository
	TokenRepo        users.TokenRepository
	ClientRepo       clients.ClientRepository
	TaskRepo         tasks.TaskRepository
	TimeEntryRepo    timetracking.TimeEntryRepository
	AmlRepo          aml.AmlRepository
	NotificationRepo notifications.NotificationRepository
	FlagRepo         flags.FlagRepository
	AuditRepo        audit.AuditRepository
	DashboardRepo    dashboard.DashboardRepository
	EngagementRepo   documents.EngagementRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(AllModels()...)
	require.NoError(t, err, "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	licenseRepo, err := NewGormLicenseRepository(db, log)
	require.NoError(t, err)
	userRepo, err := NewGormUserRepository(db, log)
	require.NoError(t, err)
	tokenRepo, err := NewGormTokenRepository(db, log)
	require.NoError(t, err)
	clientRepo, err := NewGormClientRepository(db, log)
	require.NoError(t, err)
	taskRepo, err := NewGormTaskRepository(db, log)
	require.NoError(t, err)
	timeEntryRepo, err := NewGormTimeEntryRepository(db, log)
	require.NoError(t, err)
	amlRepo, err := NewGormAmlRepository(db, log)
	require.NoError(t, err)
	notificationRepo, err := NewGormNotificationRepository(db, log)
	require.NoError(t, err)
	flagRepo, err := NewGormFlagRepository(db, log)
	require.NoError(t, err)
	auditRepo, err := NewGormAuditRepository(db, log)
	require.NoError(t, err)
	dashboardRepo, err := NewGormDashboardRepository(db, log)
	require.NoError(t, err)
	engagementRepo, err := NewGormEngagementRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:               db,
		LicenseRepo:      licenseRepo,
		UserRepo:         userRepo,
		TokenRepo:        tokenRepo,
		ClientRepo:       clientRepo,
		TaskRepo:         taskRepo,
		TimeEntryRepo:    timeEntryRepo,
		AmlRepo:          amlRepo,
		NotificationRepo: notificationRepo,
		FlagRepo:         flagRepo,
		AuditRepo:        auditRepo,
		DashboardRepo:    dashboardRepo,
		EngagementRepo:   engagementRepo,
	}
}

// CreateTestLicense creates a license fixture
func CreateTestLicense(t *testing.T) *licensing.License {
	t.Helper()

	return &licensing.License{
		ID:        uuid.NewString(),
		FirmName:  "Testbyrå AS",
		OrgNumber: TestOrgNumber,
		Plan:      licensing.PlanStandard,
		SeatLimit: 10,
		Status:    licensing.StatusActive,
		RenewsAt:  time.Now().AddDate(1, 0, 0),
		CreatedAt: time.Now(),
	}
}

// CreateTestClient creates a client fixture under the given license
func CreateTestClient(t *testing.T, licenseID string) *clients.Client {
	t.Helper()

	return &clients.Client{
		ID:               uuid.NewString(),
		LicenseID:        licenseID,
		Name:             "Testkunde AS",
		OrgNumber:        TestClientOrgNumber,
		AccountingSystem: clients.SystemNone,
		Status:           clients.StatusActive,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

// CreateTestTask creates a task fixture for the given client
func CreateTestTask(t *testing.T, licenseID, clientID string) *tasks.Task {
	t.Helper()

	due := time.Now().AddDate(0, 0, 14)
	return &tasks.Task{
		ID:             uuid.NewString(),
		LicenseID:      licenseID,
		ClientID:       clientID,
		Title:          "MVA-melding termin 3",
		Status:         tasks.StatusOpen,
		Priority:       tasks.PriorityMedium,
		DueDate:        &due,
		RecurrenceRule: tasks.RecurrenceNone,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}
