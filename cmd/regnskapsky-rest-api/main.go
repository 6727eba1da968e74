// cmd/regnskapsky-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/StianAK82/regnskapsky/internal/api/rest/v1"
	"github.com/StianAK82/regnskapsky/internal/app"
	domainaccounting "github.com/StianAK82/regnskapsky/internal/domain/accounting"
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
	"github.com/StianAK82/regnskapsky/internal/infrastructure/accounting"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/auth"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/connector"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"
	"github.com/gin-contrib/cors"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services      *appServices
	scheduler     *app.NotificationScheduler
	oidcExtraAuth []v1.TokenAuthenticator
}

type appServices struct {
	auth         users.AuthService
	user         users.UserService
	license      licensing.LicenseService
	client       clients.ClientService
	task         tasks.TaskService
	timeEntry    timetracking.TimeEntryService
	aml          aml.AmlService
	notification notifications.NotificationService
	flag         flags.FlagService
	audit        audit.AuditService
	dashboard    dashboard.DashboardService
	engagement   documents.EngagementService
	integration  domainaccounting.IntegrationService
}

// appRepositories holds the persistence layer handles used during wiring
type appRepositories struct {
	user         users.UserRepository
	token        users.TokenRepository
	license      licensing.LicenseRepository
	client       clients.ClientRepository
	task         tasks.TaskRepository
	timeEntry    timetracking.TimeEntryRepository
	aml          aml.AmlRepository
	notification notifications.NotificationRepository
	flag         flags.FlagRepository
	audit        audit.AuditRepository
	dashboard    dashboard.DashboardRepository
	engagement   documents.EngagementRepository
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(persistence.AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, err
	}

	// Initialize connectors
	ctx := context.Background()
	documentConnector, err := initializeDocumentConnector(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	registry, err := initializeAccountingRegistry(cfg, log)
	if err != nil {
		return nil, err
	}

	// Initialize services
	services, err := initializeApplicationServices(cfg, repos, documentConnector, registry, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	// Optional OIDC token verification alongside opaque API tokens
	var extraAuth []v1.TokenAuthenticator
	if cfg.Auth.Mode == config.AuthModeOIDC {
		verifier, err := auth.NewOIDCVerifier(ctx, &cfg.Auth, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create OIDC verifier: %w", err)
		}
		authenticator, err := auth.NewOIDCAuthenticator(verifier, repos.user, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create OIDC authenticator: %w", err)
		}
		extraAuth = append(extraAuth, authenticator)
		log.Info("OIDC authentication enabled for issuer ", cfg.Auth.OIDCIssuer)
	}

	// Background notifications for due tasks and stale AML reviews
	var scheduler *app.NotificationScheduler
	if cfg.Scheduler.Enabled {
		scheduler, err = app.NewNotificationScheduler(
			repos.license, repos.user, repos.client, repos.task, repos.aml,
			repos.notification, services.notification,
			cfg.Scheduler.CronSpec, cfg.Scheduler.DueSoonDays, log,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create notification scheduler: %w", err)
		}
	}

	return &appDependencies{
		services:      services,
		scheduler:     scheduler,
		oidcExtraAuth: extraAuth,
	}, nil
}

// initializeRepositories sets up the GORM-backed repositories
func initializeRepositories(db *gorm.DB, log logger.Logger) (*appRepositories, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	tokenRepo, err := persistence.NewGormTokenRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create token repository: %w", err)
	}
	licenseRepo, err := persistence.NewGormLicenseRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create license repository: %w", err)
	}
	clientRepo, err := persistence.NewGormClientRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create client repository: %w", err)
	}
	taskRepo, err := persistence.NewGormTaskRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task repository: %w", err)
	}
	timeEntryRepo, err := persistence.NewGormTimeEntryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create time entry repository: %w", err)
	}
	amlRepo, err := persistence.NewGormAmlRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create aml repository: %w", err)
	}
	notificationRepo, err := persistence.NewGormNotificationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}
	flagRepo, err := persistence.NewGormFlagRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create flag repository: %w", err)
	}
	auditRepo, err := persistence.NewGormAuditRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit repository: %w", err)
	}
	dashboardRepo, err := persistence.NewGormDashboardRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard repository: %w", err)
	}
	engagementRepo, err := persistence.NewGormEngagementRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create engagement repository: %w", err)
	}

	return &appRepositories{
		user:         userRepo,
		token:        tokenRepo,
		license:      licenseRepo,
		client:       clientRepo,
		task:         taskRepo,
		timeEntry:    timeEntryRepo,
		aml:          amlRepo,
		notification: notificationRepo,
		flag:         flagRepo,
		audit:        auditRepo,
		dashboard:    dashboardRepo,
		engagement:   engagementRepo,
	}, nil
}

// initializeDocumentConnector sets up the MinIO document store when configured
func initializeDocumentConnector(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (documents.DocumentConnector, error) {
	if cfg.DocumentStore.Endpoint == "" {
		log.Info("Document store not configured, engagement letter rendering disabled")
		return nil, nil
	}

	documentConnector, err := connector.NewMinioDocumentConnector(ctx, &cfg.DocumentStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO document connector: %w", err)
	}

	log.Info("MinIO document connector initialized successfully")
	return documentConnector, nil
}

// initializeAccountingRegistry registers the accounting adapters that have credentials
func initializeAccountingRegistry(cfg *config.RestConfig, log logger.Logger) (*domainaccounting.Registry, error) {
	registry := domainaccounting.NewRegistry()

	if cfg.Accounting.Fiken.APIToken != "" {
		fikenClient, err := accounting.NewFikenClient(&cfg.Accounting.Fiken, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create Fiken client: %w", err)
		}
		if err := registry.Register(fikenClient); err != nil {
			return nil, fmt.Errorf("failed to register Fiken adapter: %w", err)
		}
	}

	if cfg.Accounting.Tripletex.ConsumerToken != "" {
		tripletexClient, err := accounting.NewTripletexClient(&cfg.Accounting.Tripletex, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create Tripletex client: %w", err)
		}
		if err := registry.Register(tripletexClient); err != nil {
			return nil, fmt.Errorf("failed to register Tripletex adapter: %w", err)
		}
	}

	log.Info("Accounting registry initialized with vendors ", registry.Vendors())
	return registry, nil
}

// initializeApplicationServices sets up the application service layer
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *appRepositories,
	documentConnector documents.DocumentConnector,
	registry *domainaccounting.Registry,
	log logger.Logger,
) (*appServices, error) {
	recorder, err := app.NewAuditRecorder(repos.audit, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit recorder: %w", err)
	}

	authService, err := app.NewAuthService(repos.user, repos.token, cfg.Auth.TokenTTLDaysOrDefault(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	userService, err := app.NewUserService(repos.user, repos.token, repos.license, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	licenseService, err := app.NewLicenseService(repos.license, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create license service: %w", err)
	}
	clientService, err := app.NewClientService(repos.client, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create client service: %w", err)
	}
	taskService, err := app.NewTaskService(repos.task, repos.client, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}
	timeEntryService, err := app.NewTimeEntryService(repos.timeEntry, repos.client, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create time entry service: %w", err)
	}
	amlService, err := app.NewAmlService(repos.aml, repos.client, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create aml service: %w", err)
	}
	notificationService, err := app.NewNotificationService(repos.notification, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}
	flagService, err := app.NewFlagService(repos.flag, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create flag service: %w", err)
	}
	auditService, err := app.NewAuditService(repos.audit, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit service: %w", err)
	}
	dashboardService, err := app.NewDashboardService(repos.dashboard, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}
	engagementService, err := app.NewEngagementService(repos.engagement, repos.license, repos.client, documentConnector, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create engagement service: %w", err)
	}
	integrationService, err := app.NewIntegrationService(registry, repos.client, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create integration service: %w", err)
	}

	return &appServices{
		auth:         authService,
		user:         userService,
		license:      licenseService,
		client:       clientService,
		task:         taskService,
		timeEntry:    timeEntryService,
		aml:          amlService,
		notification: notificationService,
		flag:         flagService,
		audit:        auditService,
		dashboard:    dashboardService,
		engagement:   engagementService,
		integration:  integrationService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.auth,
		deps.services.user,
		deps.services.license,
		deps.services.client,
		deps.services.task,
		deps.services.timeEntry,
		deps.services.aml,
		deps.services.notification,
		deps.services.flag,
		deps.services.audit,
		deps.services.dashboard,
		deps.services.engagement,
		deps.services.integration,
		deps.oidcExtraAuth...,
	)

	// Start background notification jobs
	if deps.scheduler != nil {
		if err := deps.scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start notification scheduler: %w", err)
		}
		log.Info("Notification scheduler started with spec ", cfg.Scheduler.CronSpec)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if deps.scheduler != nil {
		deps.scheduler.Stop()
	}

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
