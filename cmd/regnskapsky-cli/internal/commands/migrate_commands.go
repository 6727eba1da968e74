package commands

import (
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// MigrateCommandHandler encapsulates logic for running schema migrations via CLI.
type MigrateCommandHandler struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewMigrateCommandHandler initializes and returns a MigrateCommandHandler instance with
// configured logger and database connection.
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	_, db, err := setupBackend()
	if err != nil {
		return nil, err
	}

	return &MigrateCommandHandler{
		db:     db,
		logger: loggerInstance,
	}, nil
}

// MigrateCmd applies the full database schema
func (commandHandler *MigrateCommandHandler) MigrateCmd(_ *cobra.Command, _ []string) {
	if err := commandHandler.db.AutoMigrate(persistence.AllModels()...); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Database migrations completed successfully")
}

// InitMigrateCommands registers migration-related commands
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create migrate command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Run:   handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
