package commands

import (
	"context"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/app"
	"github.com/StianAK82/regnskapsky/internal/domain/users"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// UserCommandHandler encapsulates logic for managing user accounts via CLI.
type UserCommandHandler struct {
	userService users.UserService
	logger      logger.Logger
}

// NewUserCommandHandler initializes and returns a UserCommandHandler instance with
// configured logger and user service.
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	_, db, err := setupBackend()
	if err != nil {
		return nil, err
	}

	userRepo, err := persistence.NewGormUserRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	tokenRepo, err := persistence.NewGormTokenRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create token repository: %w", err)
	}
	licenseRepo, err := persistence.NewGormLicenseRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create license repository: %w", err)
	}

	userService, err := app.NewUserService(userRepo, tokenRepo, licenseRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &UserCommandHandler{
		userService: userService,
		logger:      loggerInstance,
	}, nil
}

// CreateUserCmd creates a user account under a license
func (commandHandler *UserCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) {
	licenseID, err := cmd.Flags().GetString("license-id")
	if err != nil {
		commandHandler.logger.Error("invalid license-id flag ", err)
		return
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		commandHandler.logger.Error("invalid email flag ", err)
		return
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	role, err := cmd.Flags().GetString("role")
	if err != nil {
		commandHandler.logger.Error("invalid role flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}

	user, err := commandHandler.userService.Create(context.Background(), licenseID, email, name, role, password)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("User ", user.Email, " created with id ", user.ID)
}

// DeactivateUserCmd deactivates a user account, freeing its seat
func (commandHandler *UserCommandHandler) DeactivateUserCmd(cmd *cobra.Command, _ []string) {
	licenseID, err := cmd.Flags().GetString("license-id")
	if err != nil {
		commandHandler.logger.Error("invalid license-id flag ", err)
		return
	}
	userID, err := cmd.Flags().GetString("user-id")
	if err != nil {
		commandHandler.logger.Error("invalid user-id flag ", err)
		return
	}

	user, err := commandHandler.userService.SetActive(context.Background(), licenseID, userID, false)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("User ", user.Email, " deactivated")
}

// InitUserCommands registers user-related commands
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create user command handler %w", err)
	}

	var createUserCmd = &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account under a license",
		Run:   handler.CreateUserCmd,
	}
	createUserCmd.Flags().StringP("license-id", "", "", "License id the user belongs to")
	createUserCmd.Flags().StringP("email", "", "", "User email address")
	createUserCmd.Flags().StringP("name", "", "", "Display name")
	createUserCmd.Flags().StringP("role", "", "employee", "Role (admin or employee)")
	createUserCmd.Flags().StringP("password", "", "", "Initial password (min 8 characters)")
	rootCmd.AddCommand(createUserCmd)

	var deactivateUserCmd = &cobra.Command{
		Use:   "deactivate-user",
		Short: "Deactivate a user account",
		Run:   handler.DeactivateUserCmd,
	}
	deactivateUserCmd.Flags().StringP("license-id", "", "", "License id the user belongs to")
	deactivateUserCmd.Flags().StringP("user-id", "", "", "User id")
	rootCmd.AddCommand(deactivateUserCmd)

	return nil
}
