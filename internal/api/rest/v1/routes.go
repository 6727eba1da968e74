package v1

import (
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

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1. Extra authenticators
// (e.g. the OIDC verifier) are tried after the opaque token service.
func SetupRoutes(r *gin.Engine,
	authService users.AuthService,
	userService users.UserService,
	licenseService licensing.LicenseService,
	clientService clients.ClientService,
	taskService tasks.TaskService,
	timeEntryService timetracking.TimeEntryService,
	amlService aml.AmlService,
	notificationService notifications.NotificationService,
	flagService flags.FlagService,
	auditService audit.AuditService,
	dashboardService dashboard.DashboardService,
	engagementService documents.EngagementService,
	integrationService accounting.IntegrationService,
	extraAuthenticators ...TokenAuthenticator) {

	v1 := r.Group(BasePath) // lookup in version file

	// Login is the only unauthenticated route
	authHandler := NewAuthHandler(authService)
	v1.POST("/auth/login", authHandler.Login)

	authenticators := append([]TokenAuthenticator{authService}, extraAuthenticators...)
	protected := v1.Group("", AuthMiddleware(authenticators...))
	admin := protected.Group("", RequireAdmin())

	// Token Routes
	protected.POST("/auth/tokens", authHandler.IssueToken)
	protected.GET("/auth/tokens", authHandler.ListTokens)
	protected.DELETE("/auth/tokens/:id", authHandler.RevokeToken)

	// User Routes
	userHandler := NewUserHandler(userService)
	admin.POST("/users", userHandler.Create)
	protected.GET("/users", userHandler.List)
	protected.GET("/users/:id", userHandler.GetByID)
	admin.PATCH("/users/:id/active", userHandler.SetActive)

	// License Routes
	licenseHandler := NewLicenseHandler(licenseService)
	protected.GET("/license", licenseHandler.Get)
	protected.GET("/license/seats", licenseHandler.SeatUsage)
	admin.PUT("/license/plan", licenseHandler.UpdatePlan)
	admin.PUT("/license/status", licenseHandler.SetStatus)

	// Client Routes
	clientHandler := NewClientHandler(clientService)
	protected.POST("/clients", clientHandler.Create)
	protected.GET("/clients", clientHandler.List)
	protected.GET("/clients/:id", clientHandler.GetByID)
	protected.PUT("/clients/:id", clientHandler.UpdateByID)
	protected.DELETE("/clients/:id", clientHandler.DeleteByID)

	// Task Routes
	taskHandler := NewTaskHandler(taskService)
	protected.POST("/tasks", taskHandler.Create)
	protected.GET("/tasks", taskHandler.List)
	protected.GET("/tasks/:id", taskHandler.GetByID)
	protected.PUT("/tasks/:id", taskHandler.UpdateByID)
	protected.POST("/tasks/:id/complete", taskHandler.Complete)
	protected.DELETE("/tasks/:id", taskHandler.DeleteByID)
	protected.POST("/tasks/:id/checklist", taskHandler.AddChecklistItem)
	protected.PATCH("/tasks/:id/checklist/:itemId", taskHandler.ToggleChecklistItem)
	protected.DELETE("/tasks/:id/checklist/:itemId", taskHandler.RemoveChecklistItem)

	// Time Entry Routes
	timeEntryHandler := NewTimeEntryHandler(timeEntryService)
	protected.POST("/time-entries", timeEntryHandler.Create)
	protected.GET("/time-entries", timeEntryHandler.List)
	protected.GET("/time-entries/totals", timeEntryHandler.Totals)
	protected.GET("/time-entries/:id", timeEntryHandler.GetByID)
	protected.PUT("/time-entries/:id", timeEntryHandler.UpdateByID)
	protected.DELETE("/time-entries/:id", timeEntryHandler.DeleteByID)

	// AML Routes
	amlHandler := NewAmlHandler(amlService)
	protected.GET("/clients/:id/aml", amlHandler.GetByClientID)
	protected.POST("/clients/:id/aml", amlHandler.Assess)
	protected.GET("/aml", amlHandler.ListByLevel)
	protected.GET("/aml/overdue", amlHandler.ListOverdue)

	// Notification Routes
	notificationHandler := NewNotificationHandler(notificationService)
	protected.GET("/notifications", notificationHandler.List)
	protected.POST("/notifications/:id/read", notificationHandler.MarkRead)
	protected.POST("/notifications/read-all", notificationHandler.MarkAllRead)

	// Flag Routes
	flagHandler := NewFlagHandler(flagService)
	protected.GET("/flags", flagHandler.List)
	admin.PUT("/flags/:key", flagHandler.Set)
	admin.DELETE("/flags/:key", flagHandler.Unset)

	// Audit Routes
	auditHandler := NewAuditHandler(auditService)
	admin.GET("/audit", auditHandler.List)

	// Dashboard Routes
	dashboardHandler := NewDashboardHandler(dashboardService)
	protected.GET("/dashboard", dashboardHandler.Summary)

	// Engagement Letter Routes
	engagementHandler := NewEngagementHandler(engagementService)
	protected.POST("/clients/:id/letters", engagementHandler.Render)
	protected.GET("/clients/:id/letters", engagementHandler.ListVersions)
	protected.GET("/letters/:id/file", engagementHandler.DownloadByID)

	// Integration Routes
	integrationHandler := NewIntegrationHandler(integrationService)
	protected.GET("/integrations/vendors", integrationHandler.Vendors)
	protected.POST("/clients/:id/integration/test", integrationHandler.TestConnection)
	protected.POST("/clients/:id/integration/sync", integrationHandler.SyncClient)
}
