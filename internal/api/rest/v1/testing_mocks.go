//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/StianAK82/regnskapsky/internal/domain/accounting"
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

	"github.com/stretchr/testify/mock"
)

// MockClientService is a mock implementation of ClientService
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Create(ctx context.Context, licenseID string, client *clients.Client) (*clients.Client, error) {
	args := m.Called(ctx, licenseID, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.Client), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context, licenseID string, query *clients.ClientQuery) ([]*clients.Client, error) {
	args := m.Called(ctx, licenseID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clients.Client), args.Error(1)
}

func (m *MockClientService) GetByID(ctx context.Context, licenseID, clientID string) (*clients.Client, error) {
	args := m.Called(ctx, licenseID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.Client), args.Error(1)
}

func (m *MockClientService) UpdateByID(ctx context.Context, licenseID string, client *clients.Client) (*clients.Client, error) {
	args := m.Called(ctx, licenseID, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.Client), args.Error(1)
}

func (m *MockClientService) DeleteByID(ctx context.Context, licenseID, clientID string) error {
	args := m.Called(ctx, licenseID, clientID)
	return args.Error(0)
}

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, licenseID string, task *tasks.Task) (*tasks.Task, error) {
	args := m.Called(ctx, licenseID, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.Task), args.Error(1)
}

func (m *MockTaskService) List(ctx context.Context, licenseID string, query *tasks.TaskQuery) ([]*tasks.Task, error) {
	args := m.Called(ctx, licenseID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tasks.Task), args.Error(1)
}

func (m *MockTaskService) GetByID(ctx context.Context, licenseID, taskID string) (*tasks.Task, []*tasks.ChecklistItem, error) {
	args := m.Called(ctx, licenseID, taskID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*tasks.Task), args.Get(1).([]*tasks.ChecklistItem), args.Error(2)
}

func (m *MockTaskService) UpdateByID(ctx context.Context, licenseID string, task *tasks.Task) (*tasks.Task, error) {
	args := m.Called(ctx, licenseID, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.Task), args.Error(1)
}

func (m *MockTaskService) Complete(ctx context.Context, licenseID, taskID, userID string) (*tasks.Task, error) {
	args := m.Called(ctx, licenseID, taskID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.Task), args.Error(1)
}

func (m *MockTaskService) DeleteByID(ctx context.Context, licenseID, taskID string) error {
	args := m.Called(ctx, licenseID, taskID)
	return args.Error(0)
}

func (m *MockTaskService) AddChecklistItem(ctx context.Context, licenseID, taskID, label string) (*tasks.ChecklistItem, error) {
	args := m.Called(ctx, licenseID, taskID, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.ChecklistItem), args.Error(1)
}

func (m *MockTaskService) ToggleChecklistItem(ctx context.Context, licenseID, taskID, itemID, userID string, done bool) (*tasks.ChecklistItem, error) {
	args := m.Called(ctx, licenseID, taskID, itemID, userID, done)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.ChecklistItem), args.Error(1)
}

func (m *MockTaskService) RemoveChecklistItem(ctx context.Context, licenseID, taskID, itemID string) error {
	args := m.Called(ctx, licenseID, taskID, itemID)
	return args.Error(0)
}

// MockTimeEntryService is a mock implementation of TimeEntryService
type MockTimeEntryService struct {
	mock.Mock
}

func (m *MockTimeEntryService) Create(ctx context.Context, licenseID string, entry *timetracking.TimeEntry) (*timetracking.TimeEntry, error) {
	args := m.Called(ctx, licenseID, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timetracking.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryService) List(ctx context.Context, licenseID string, query *timetracking.TimeEntryQuery) ([]*timetracking.TimeEntry, error) {
	args := m.Called(ctx, licenseID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*timetracking.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryService) GetByID(ctx context.Context, licenseID, entryID string) (*timetracking.TimeEntry, error) {
	args := m.Called(ctx, licenseID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timetracking.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryService) UpdateByID(ctx context.Context, licenseID string, entry *timetracking.TimeEntry) (*timetracking.TimeEntry, error) {
	args := m.Called(ctx, licenseID, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timetracking.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryService) DeleteByID(ctx context.Context, licenseID, entryID string) error {
	args := m.Called(ctx, licenseID, entryID)
	return args.Error(0)
}

func (m *MockTimeEntryService) TotalsForQuery(ctx context.Context, licenseID string, query *timetracking.TimeEntryQuery) (*timetracking.Totals, error) {
	args := m.Called(ctx, licenseID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timetracking.Totals), args.Error(1)
}

// MockAmlService is a mock implementation of AmlService
type MockAmlService struct {
	mock.Mock
}

func (m *MockAmlService) GetByClientID(ctx context.Context, licenseID, clientID string) (*aml.AmlStatus, error) {
	args := m.Called(ctx, licenseID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*aml.AmlStatus), args.Error(1)
}

func (m *MockAmlService) Assess(ctx context.Context, licenseID, clientID, reviewerID string, assessment aml.Assessment) (*aml.AmlStatus, error) {
	args := m.Called(ctx, licenseID, clientID, reviewerID, assessment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*aml.AmlStatus), args.Error(1)
}

func (m *MockAmlService) ListByLevel(ctx context.Context, licenseID, level string) ([]*aml.AmlStatus, error) {
	args := m.Called(ctx, licenseID, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*aml.AmlStatus), args.Error(1)
}

func (m *MockAmlService) ListOverdue(ctx context.Context, licenseID string) ([]*aml.AmlStatus, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*aml.AmlStatus), args.Error(1)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, licenseID, email, name, role, password string) (*users.User, error) {
	args := m.Called(ctx, licenseID, email, name, role, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, licenseID string) ([]*users.User, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, licenseID, userID string) (*users.User, error) {
	args := m.Called(ctx, licenseID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) SetActive(ctx context.Context, licenseID, userID string, active bool) (*users.User, error) {
	args := m.Called(ctx, licenseID, userID, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password, tokenName string) (string, *users.ApiToken, error) {
	args := m.Called(ctx, email, password, tokenName)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*users.ApiToken), args.Error(2)
}

func (m *MockAuthService) IssueToken(ctx context.Context, licenseID, userID, tokenName string) (string, *users.ApiToken, error) {
	args := m.Called(ctx, licenseID, userID, tokenName)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*users.ApiToken), args.Error(2)
}

func (m *MockAuthService) RevokeToken(ctx context.Context, licenseID, tokenID string) error {
	args := m.Called(ctx, licenseID, tokenID)
	return args.Error(0)
}

func (m *MockAuthService) ListTokens(ctx context.Context, licenseID, userID string) ([]*users.ApiToken, error) {
	args := m.Called(ctx, licenseID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.ApiToken), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, plainToken string) (*users.Identity, error) {
	args := m.Called(ctx, plainToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Identity), args.Error(1)
}

// MockLicenseService is a mock implementation of LicenseService
type MockLicenseService struct {
	mock.Mock
}

func (m *MockLicenseService) Create(ctx context.Context, firmName, orgNumber, plan string, seatLimit int) (*licensing.License, error) {
	args := m.Called(ctx, firmName, orgNumber, plan, seatLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licensing.License), args.Error(1)
}

func (m *MockLicenseService) GetByID(ctx context.Context, licenseID string) (*licensing.License, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licensing.License), args.Error(1)
}

func (m *MockLicenseService) UpdatePlan(ctx context.Context, licenseID, plan string, seatLimit int) (*licensing.License, error) {
	args := m.Called(ctx, licenseID, plan, seatLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licensing.License), args.Error(1)
}

func (m *MockLicenseService) SetStatus(ctx context.Context, licenseID, status string) (*licensing.License, error) {
	args := m.Called(ctx, licenseID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licensing.License), args.Error(1)
}

func (m *MockLicenseService) SeatUsage(ctx context.Context, licenseID string) (*licensing.SeatUsage, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licensing.SeatUsage), args.Error(1)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) ListForUser(ctx context.Context, licenseID, userID string, unreadOnly bool) ([]*notifications.Notification, error) {
	args := m.Called(ctx, licenseID, userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, licenseID, userID, notificationID string) error {
	args := m.Called(ctx, licenseID, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, licenseID, userID string) error {
	args := m.Called(ctx, licenseID, userID)
	return args.Error(0)
}

func (m *MockNotificationService) Notify(ctx context.Context, n *notifications.Notification) (*notifications.Notification, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifications.Notification), args.Error(1)
}

// MockFlagService is a mock implementation of FlagService
type MockFlagService struct {
	mock.Mock
}

func (m *MockFlagService) ListEffective(ctx context.Context, licenseID string) ([]*flags.FeatureFlag, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*flags.FeatureFlag), args.Error(1)
}

func (m *MockFlagService) IsEnabled(ctx context.Context, licenseID, key string) (bool, error) {
	args := m.Called(ctx, licenseID, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlagService) Set(ctx context.Context, licenseID *string, key string, enabled bool, description string) (*flags.FeatureFlag, error) {
	args := m.Called(ctx, licenseID, key, enabled, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flags.FeatureFlag), args.Error(1)
}

func (m *MockFlagService) Unset(ctx context.Context, licenseID *string, key string) error {
	args := m.Called(ctx, licenseID, key)
	return args.Error(0)
}

// MockAuditService is a mock implementation of AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) List(ctx context.Context, licenseID string, query *audit.EntryQuery) ([]*audit.Entry, error) {
	args := m.Called(ctx, licenseID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, licenseID, userID string) (*dashboard.Summary, error) {
	args := m.Called(ctx, licenseID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Summary), args.Error(1)
}

// MockEngagementService is a mock implementation of EngagementService
type MockEngagementService struct {
	mock.Mock
}

func (m *MockEngagementService) Render(ctx context.Context, licenseID, clientID, userID string, terms documents.Terms) (*documents.EngagementLetter, error) {
	args := m.Called(ctx, licenseID, clientID, userID, terms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.EngagementLetter), args.Error(1)
}

func (m *MockEngagementService) ListVersions(ctx context.Context, licenseID, clientID string) ([]*documents.EngagementLetter, error) {
	args := m.Called(ctx, licenseID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.EngagementLetter), args.Error(1)
}

func (m *MockEngagementService) Download(ctx context.Context, licenseID, letterID string) (*documents.EngagementLetter, []byte, error) {
	args := m.Called(ctx, licenseID, letterID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*documents.EngagementLetter), args.Get(1).([]byte), args.Error(2)
}

// MockIntegrationService is a mock implementation of IntegrationService
type MockIntegrationService struct {
	mock.Mock
}

func (m *MockIntegrationService) Vendors(ctx context.Context) []string {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockIntegrationService) TestConnection(ctx context.Context, licenseID, clientID string) error {
	args := m.Called(ctx, licenseID, clientID)
	return args.Error(0)
}

func (m *MockIntegrationService) SyncClient(ctx context.Context, licenseID, clientID, userID string) (*accounting.SyncResult, error) {
	args := m.Called(ctx, licenseID, clientID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.SyncResult), args.Error(1)
}
