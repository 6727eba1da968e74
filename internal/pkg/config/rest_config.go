package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// SchedulerSettings controls the background notification jobs.
type SchedulerSettings struct {
	Enabled      bool   `mapstructure:"enabled"`
	CronSpec     string `mapstructure:"cron_spec"`
	DueSoonDays  int    `mapstructure:"due_soon_days"`
}

// RestConfig aggregates all settings for the REST API server.
type RestConfig struct {
	Port          string                `mapstructure:"port"`
	Logger        LoggerSettings        `mapstructure:"logger"`
	Database      DatabaseSettings      `mapstructure:"database"`
	Auth          AuthSettings          `mapstructure:"auth"`
	DocumentStore DocumentStoreSettings `mapstructure:"document_store"`
	Accounting    AccountingSettings    `mapstructure:"accounting"`
	Scheduler     SchedulerSettings     `mapstructure:"scheduler"`
}

// InitializeRestConfig reads and validates the REST API configuration from
// the YAML file at configPath.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("auth.mode", AuthModeToken)
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.cron_spec", "0 6 * * *")
	v.SetDefault("scheduler.due_soon_days", 3)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks all nested settings.
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Accounting.Validate(); err != nil {
		return err
	}
	// Document storage is optional; deployments without MinIO leave it empty
	// and the engagement-letter endpoints report it as unconfigured.
	if c.DocumentStore.Endpoint != "" {
		if err := c.DocumentStore.Validate(); err != nil {
			return err
		}
	}
	if c.Scheduler.Enabled && c.Scheduler.CronSpec == "" {
		return fmt.Errorf("scheduler cron_spec is required when the scheduler is enabled")
	}
	return nil
}
