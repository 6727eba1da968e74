package commands

import (
	"context"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/app"
	"github.com/StianAK82/regnskapsky/internal/domain/flags"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// FlagCommandHandler encapsulates logic for managing feature flags via CLI.
// Flags set without a license id are global defaults for all firms.
type FlagCommandHandler struct {
	flagService flags.FlagService
	logger      logger.Logger
}

// NewFlagCommandHandler initializes and returns a FlagCommandHandler instance with
// configured logger and flag service.
func NewFlagCommandHandler() (*FlagCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	_, db, err := setupBackend()
	if err != nil {
		return nil, err
	}

	flagRepo, err := persistence.NewGormFlagRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create flag repository: %w", err)
	}

	flagService, err := app.NewFlagService(flagRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create flag service: %w", err)
	}

	return &FlagCommandHandler{
		flagService: flagService,
		logger:      loggerInstance,
	}, nil
}

// licenseScope converts the license-id flag into the optional scope argument
func licenseScope(cmd *cobra.Command) (*string, error) {
	licenseID, err := cmd.Flags().GetString("license-id")
	if err != nil {
		return nil, fmt.Errorf("invalid license-id flag %w", err)
	}
	if licenseID == "" {
		return nil, nil
	}
	return &licenseID, nil
}

// SetFlagCmd enables or disables a feature flag
func (commandHandler *FlagCommandHandler) SetFlagCmd(cmd *cobra.Command, _ []string) {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}
	enabled, err := cmd.Flags().GetBool("enabled")
	if err != nil {
		commandHandler.logger.Error("invalid enabled flag ", err)
		return
	}
	description, err := cmd.Flags().GetString("description")
	if err != nil {
		commandHandler.logger.Error("invalid description flag ", err)
		return
	}
	scope, err := licenseScope(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	flag, err := commandHandler.flagService.Set(context.Background(), scope, key, enabled, description)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if scope == nil {
		commandHandler.logger.Info("Global flag ", flag.Key, " set to ", flag.Enabled)
	} else {
		commandHandler.logger.Info("Flag ", flag.Key, " set to ", flag.Enabled, " for license ", *scope)
	}
}

// UnsetFlagCmd removes a feature flag override
func (commandHandler *FlagCommandHandler) UnsetFlagCmd(cmd *cobra.Command, _ []string) {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}
	scope, err := licenseScope(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.flagService.Unset(context.Background(), scope, key); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Flag ", key, " removed")
}

// ListFlagsCmd lists the effective flags for a license
func (commandHandler *FlagCommandHandler) ListFlagsCmd(cmd *cobra.Command, _ []string) {
	licenseID, err := cmd.Flags().GetString("license-id")
	if err != nil {
		commandHandler.logger.Error("invalid license-id flag ", err)
		return
	}

	effectiveFlags, err := commandHandler.flagService.ListEffective(context.Background(), licenseID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, flag := range effectiveFlags {
		commandHandler.logger.Info("Flag ", flag.Key, " enabled ", flag.Enabled)
	}
}

// InitFlagCommands registers feature-flag-related commands
func InitFlagCommands(rootCmd *cobra.Command) error {
	handler, err := NewFlagCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create flag command handler %w", err)
	}

	var setFlagCmd = &cobra.Command{
		Use:   "set-flag",
		Short: "Enable or disable a feature flag",
		Run:   handler.SetFlagCmd,
	}
	setFlagCmd.Flags().StringP("key", "", "", "Flag key")
	setFlagCmd.Flags().BoolP("enabled", "", false, "Whether the flag is enabled")
	setFlagCmd.Flags().StringP("description", "", "", "Human readable description")
	setFlagCmd.Flags().StringP("license-id", "", "", "License id for a per-firm override, empty for a global default")
	rootCmd.AddCommand(setFlagCmd)

	var unsetFlagCmd = &cobra.Command{
		Use:   "unset-flag",
		Short: "Remove a feature flag override",
		Run:   handler.UnsetFlagCmd,
	}
	unsetFlagCmd.Flags().StringP("key", "", "", "Flag key")
	unsetFlagCmd.Flags().StringP("license-id", "", "", "License id for a per-firm override, empty for a global default")
	rootCmd.AddCommand(unsetFlagCmd)

	var listFlagsCmd = &cobra.Command{
		Use:   "list-flags",
		Short: "List the effective flags for a license",
		Run:   handler.ListFlagsCmd,
	}
	listFlagsCmd.Flags().StringP("license-id", "", "", "License id")
	rootCmd.AddCommand(listFlagsCmd)

	return nil
}
