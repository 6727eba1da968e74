// Package main is the entry point for the regnskapsky-cli application.
// It initializes the root command and registers the administrative sub-commands
// (migrations, licenses, users, tokens, feature flags), then executes the
// command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/StianAK82/regnskapsky/cmd/regnskapsky-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "regnskapsky-cli",
		Short: "Administrative CLI for the RegnskapSky backend",
		Long: `regnskapsky-cli is a command-line tool for operating a RegnskapSky deployment.
It applies database migrations, provisions firm licenses, manages user accounts
and API tokens, and controls global and per-firm feature flags.

The tool reads the same configuration file as the REST API. Set CONFIG_PATH to
point at it, otherwise ../../configs/rest-app.yaml is used.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register migration commands
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	// Register license commands
	if err := commands.InitLicenseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize license commands: %w", err)
	}

	// Register user commands
	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	// Register token commands
	if err := commands.InitTokenCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize token commands: %w", err)
	}

	// Register feature flag commands
	if err := commands.InitFlagCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize flag commands: %w", err)
	}

	return nil
}
