package commands

import (
	"context"
	"fmt"

	"github.com/StianAK82/regnskapsky/internal/app"
	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// LicenseCommandHandler encapsulates logic for managing firm licenses via CLI.
type LicenseCommandHandler struct {
	licenseService licensing.LicenseService
	logger         logger.Logger
}

// NewLicenseCommandHandler initializes and returns a LicenseCommandHandler instance with
// configured logger and license service.
func NewLicenseCommandHandler() (*LicenseCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	_, db, err := setupBackend()
	if err != nil {
		return nil, err
	}

	licenseRepo, err := persistence.NewGormLicenseRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create license repository: %w", err)
	}

	licenseService, err := app.NewLicenseService(licenseRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create license service: %w", err)
	}

	return &LicenseCommandHandler{
		licenseService: licenseService,
		logger:         loggerInstance,
	}, nil
}

// CreateLicenseCmd provisions a new firm license
func (commandHandler *LicenseCommandHandler) CreateLicenseCmd(cmd *cobra.Command, _ []string) {
	firmName, err := cmd.Flags().GetString("firm-name")
	if err != nil {
		commandHandler.logger.Error("invalid firm-name flag ", err)
		return
	}
	orgNumber, err := cmd.Flags().GetString("org-number")
	if err != nil {
		commandHandler.logger.Error("invalid org-number flag ", err)
		return
	}
	plan, err := cmd.Flags().GetString("plan")
	if err != nil {
		commandHandler.logger.Error("invalid plan flag ", err)
		return
	}
	seatLimit, err := cmd.Flags().GetInt("seat-limit")
	if err != nil {
		commandHandler.logger.Error("invalid seat-limit flag ", err)
		return
	}

	license, err := commandHandler.licenseService.Create(context.Background(), firmName, orgNumber, plan, seatLimit)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("License created with id ", license.ID)
}

// UpdateLicensePlanCmd changes the plan and seat limit of a license
func (commandHandler *LicenseCommandHandler) UpdateLicensePlanCmd(cmd *cobra.Command, _ []string) {
	licenseID, err := cmd.Flags().GetString("license-id")
	if err != nil {
		commandHandler.logger.Error("invalid license-id flag ", err)
		return
	}
	plan, err := cmd.Flags().GetString("plan")
	if err != nil {
		commandHandler.logger.Error("invalid plan flag ", err)
		return
	}
	seatLimit, err := cmd.Flags().GetInt("seat-limit")
	if err != nil {
		commandHandler.logger.Error("invalid seat-limit flag ", err)
		return
	}

	license, err := commandHandler.licenseService.UpdatePlan(context.Background(), licenseID, plan, seatLimit)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("License ", license.ID, " moved to plan ", license.Plan, " with ", license.SeatLimit, " seats")
}

// SetLicenseStatusCmd suspends, cancels or reactivates a license
func (commandHandler *LicenseCommandHandler) SetLicenseStatusCmd(cmd *cobra.Command, _ []string) {
	licenseID, err := cmd.Flags().GetString("license-id")
	if err != nil {
		commandHandler.logger.Error("invalid license-id flag ", err)
		return
	}
	status, err := cmd.Flags().GetString("status")
	if err != nil {
		commandHandler.logger.Error("invalid status flag ", err)
		return
	}

	license, err := commandHandler.licenseService.SetStatus(context.Background(), licenseID, status)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("License ", license.ID, " status set to ", license.Status)
}

// SeatUsageCmd reports occupied and available seats for a license
func (commandHandler *LicenseCommandHandler) SeatUsageCmd(cmd *cobra.Command, _ []string) {
	licenseID, err := cmd.Flags().GetString("license-id")
	if err != nil {
		commandHandler.logger.Error("invalid license-id flag ", err)
		return
	}

	usage, err := commandHandler.licenseService.SeatUsage(context.Background(), licenseID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Seats used ", usage.ActiveUsers, " of ", usage.SeatLimit, " (", usage.UsedPercent, "%)")
}

// InitLicenseCommands registers license-related commands
func InitLicenseCommands(rootCmd *cobra.Command) error {
	handler, err := NewLicenseCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create license command handler %w", err)
	}

	var createLicenseCmd = &cobra.Command{
		Use:   "create-license",
		Short: "Provision a new firm license",
		Run:   handler.CreateLicenseCmd,
	}
	createLicenseCmd.Flags().StringP("firm-name", "", "", "Name of the accounting firm")
	createLicenseCmd.Flags().StringP("org-number", "", "", "Norwegian organization number of the firm")
	createLicenseCmd.Flags().StringP("plan", "", "basic", "Subscription plan (basic, standard or premium)")
	createLicenseCmd.Flags().IntP("seat-limit", "", 5, "Maximum number of active users")
	rootCmd.AddCommand(createLicenseCmd)

	var updateLicensePlanCmd = &cobra.Command{
		Use:   "update-license-plan",
		Short: "Change the plan and seat limit of a license",
		Run:   handler.UpdateLicensePlanCmd,
	}
	updateLicensePlanCmd.Flags().StringP("license-id", "", "", "License id")
	updateLicensePlanCmd.Flags().StringP("plan", "", "", "Subscription plan (basic, standard or premium)")
	updateLicensePlanCmd.Flags().IntP("seat-limit", "", 0, "Maximum number of active users")
	rootCmd.AddCommand(updateLicensePlanCmd)

	var setLicenseStatusCmd = &cobra.Command{
		Use:   "set-license-status",
		Short: "Suspend, cancel or reactivate a license",
		Run:   handler.SetLicenseStatusCmd,
	}
	setLicenseStatusCmd.Flags().StringP("license-id", "", "", "License id")
	setLicenseStatusCmd.Flags().StringP("status", "", "", "New status (active, suspended or cancelled)")
	rootCmd.AddCommand(setLicenseStatusCmd)

	var seatUsageCmd = &cobra.Command{
		Use:   "seat-usage",
		Short: "Report seat usage for a license",
		Run:   handler.SeatUsageCmd,
	}
	seatUsageCmd.Flags().StringP("license-id", "", "", "License id")
	rootCmd.AddCommand(seatUsageCmd)

	return nil
}
