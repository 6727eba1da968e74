package commands

import (
	"fmt"
	"os"

	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

// In commands/common.go
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupBackend loads the configuration and opens the database connection
// shared by all administrative commands.
func setupBackend() (*config.RestConfig, *gorm.DB, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return cfg, db, nil
}
