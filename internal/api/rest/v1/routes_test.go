//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StianAK82/regnskapsky/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockUserService := new(MockUserService)
	mockLicenseService := new(MockLicenseService)
	mockClientService := new(MockClientService)
	mockTaskService := new(MockTaskService)
	mockTimeEntryService := new(MockTimeEntryService)
	mockAmlService := new(MockAmlService)
	mockNotificationService := new(MockNotificationService)
	mockFlagService := new(MockFlagService)
	mockAuditService := new(MockAuditService)
	mockDashboardService := new(MockDashboardService)
	mockEngagementService := new(MockEngagementService)
	mockIntegrationService := new(MockIntegrationService)

	r := gin.Default()

	// Unauthenticated requests are rejected by the middleware, which is
	// enough to show the route exists
	mockAuthService.On("Authenticate", mock.Anything, mock.Anything).Return(nil, users.ErrInvalidCredentials)

	SetupRoutes(r,
		mockAuthService,
		mockUserService,
		mockLicenseService,
		mockClientService,
		mockTaskService,
		mockTimeEntryService,
		mockAmlService,
		mockNotificationService,
		mockFlagService,
		mockAuditService,
		mockDashboardService,
		mockEngagementService,
		mockIntegrationService)

	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/regnskapsky/auth/login"},
		{"GET", "/api/v1/regnskapsky/clients"},
		{"POST", "/api/v1/regnskapsky/tasks"},
		{"GET", "/api/v1/regnskapsky/time-entries"},
		{"GET", "/api/v1/regnskapsky/aml/overdue"},
		{"GET", "/api/v1/regnskapsky/notifications"},
		{"GET", "/api/v1/regnskapsky/flags"},
		{"GET", "/api/v1/regnskapsky/audit"},
		{"GET", "/api/v1/regnskapsky/dashboard"},
		{"GET", "/api/v1/regnskapsky/license"},
		{"GET", "/api/v1/regnskapsky/integrations/vendors"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

// TestSetupRoutes_ProtectedRoutesRequireAuth verifies the middleware guards
// everything except login
func TestSetupRoutes_ProtectedRoutesRequireAuth(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockUserService := new(MockUserService)
	mockLicenseService := new(MockLicenseService)
	mockClientService := new(MockClientService)
	mockTaskService := new(MockTaskService)
	mockTimeEntryService := new(MockTimeEntryService)
	mockAmlService := new(MockAmlService)
	mockNotificationService := new(MockNotificationService)
	mockFlagService := new(MockFlagService)
	mockAuditService := new(MockAuditService)
	mockDashboardService := new(MockDashboardService)
	mockEngagementService := new(MockEngagementService)
	mockIntegrationService := new(MockIntegrationService)

	r := gin.New()

	SetupRoutes(r,
		mockAuthService,
		mockUserService,
		mockLicenseService,
		mockClientService,
		mockTaskService,
		mockTimeEntryService,
		mockAmlService,
		mockNotificationService,
		mockFlagService,
		mockAuditService,
		mockDashboardService,
		mockEngagementService,
		mockIntegrationService)

	req, _ := http.NewRequest("GET", "/api/v1/regnskapsky/clients", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockClientService.AssertNotCalled(t, "List")
}
