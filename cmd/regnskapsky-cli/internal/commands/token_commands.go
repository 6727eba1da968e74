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

// TokenCommandHandler encapsulates logic for managing API tokens via CLI.
type TokenCommandHandler struct {
	authService users.AuthService
	logger      logger.Logger
}

// NewTokenCommandHandler initializes and returns a TokenCommandHandler instance with
// configured logger and auth service.
func NewTokenCommandHandler() (*TokenCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	cfg, db, err := setupBackend()
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

	authService, err := app.NewAuthService(userRepo, tokenRepo, cfg.Auth.TokenTTLDaysOrDefault(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	return &TokenCommandHandler{
		authService: authService,
		logger:      loggerInstance,
	}, nil
}

// IssueTokenCmd issues a new API token for a user and prints the plain value once
func (commandHandler *TokenCommandHandler) IssueTokenCmd(cmd *cobra.Command, _ []string) {
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
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}

	plainToken, token, err := commandHandler.authService.IssueToken(context.Background(), licenseID, userID, name)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Token ", token.ID, " issued, expires at ", token.ExpiresAt)
	// The plain value is only recoverable here; the database stores a hash.
	fmt.Println(plainToken)
}

// RevokeTokenCmd revokes an API token
func (commandHandler *TokenCommandHandler) RevokeTokenCmd(cmd *cobra.Command, _ []string) {
	licenseID, err := cmd.Flags().GetString("license-id")
	if err != nil {
		commandHandler.logger.Error("invalid license-id flag ", err)
		return
	}
	tokenID, err := cmd.Flags().GetString("token-id")
	if err != nil {
		commandHandler.logger.Error("invalid token-id flag ", err)
		return
	}

	if err := commandHandler.authService.RevokeToken(context.Background(), licenseID, tokenID); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Token ", tokenID, " revoked")
}

// ListTokensCmd lists the API tokens of a user
func (commandHandler *TokenCommandHandler) ListTokensCmd(cmd *cobra.Command, _ []string) {
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

	tokens, err := commandHandler.authService.ListTokens(context.Background(), licenseID, userID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, token := range tokens {
		commandHandler.logger.Info("Token ", token.ID, " name ", token.Name, " expires at ", token.ExpiresAt)
	}
}

// InitTokenCommands registers token-related commands
func InitTokenCommands(rootCmd *cobra.Command) error {
	handler, err := NewTokenCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create token command handler %w", err)
	}

	var issueTokenCmd = &cobra.Command{
		Use:   "issue-token",
		Short: "Issue a new API token for a user",
		Run:   handler.IssueTokenCmd,
	}
	issueTokenCmd.Flags().StringP("license-id", "", "", "License id the user belongs to")
	issueTokenCmd.Flags().StringP("user-id", "", "", "User id the token is issued for")
	issueTokenCmd.Flags().StringP("name", "", "cli", "Token name")
	rootCmd.AddCommand(issueTokenCmd)

	var revokeTokenCmd = &cobra.Command{
		Use:   "revoke-token",
		Short: "Revoke an API token",
		Run:   handler.RevokeTokenCmd,
	}
	revokeTokenCmd.Flags().StringP("license-id", "", "", "License id the token belongs to")
	revokeTokenCmd.Flags().StringP("token-id", "", "", "Token id")
	rootCmd.AddCommand(revokeTokenCmd)

	var listTokensCmd = &cobra.Command{
		Use:   "list-tokens",
		Short: "List the API tokens of a user",
		Run:   handler.ListTokensCmd,
	}
	listTokensCmd.Flags().StringP("license-id", "", "", "License id the user belongs to")
	listTokensCmd.Flags().StringP("user-id", "", "", "User id")
	rootCmd.AddCommand(listTokensCmd)

	return nil
}
