package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Email     EmailConfig     `yaml:"email"`
	JWT       JWTConfig       `yaml:"jwt"`
	Storage   StorageConfig   `yaml:"storage"`
	Admin     AdminConfig     `yaml:"admin"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains record store settings. Driver "memory" runs the
// in-process store; "postgres" requires the connection fields.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// EmailConfig contains SendGrid settings. An empty API key disables outbound
// email (the noop email service is wired instead).
type EmailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
	AdminEmail     string `yaml:"admin_email"`
}

// JWTConfig contains session token settings
type JWTConfig struct {
	Secret               string `yaml:"secret"`
	SessionExpiryMinutes int    `yaml:"session_expiry_minutes"`
}

// StorageConfig contains document storage settings
type StorageConfig struct {
	Type      string `yaml:"type"`       // "local" is the only implemented backend
	UploadDir string `yaml:"upload_dir"` // For local storage
	BaseURL   string `yaml:"base_url"`   // Server base URL for download/upload URLs
}

// AdminConfig holds the placeholder administrator credential. PasswordHash
// (bcrypt) is preferred; Password is a dev convenience that gets hashed at
// startup. A production deployment replaces this whole block with a real
// identity provider.
type AdminConfig struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
	DisplayName  string `yaml:"display_name"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	PendingReminder        string `yaml:"pending_reminder"`
	PendingReminderAgeDays int    `yaml:"pending_reminder_age_days"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_DRIVER"); val != "" {
		c.Database.Driver = val
	}
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Email
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridAPIKey = val
	}
	if val := os.Getenv("EMAIL_FROM"); val != "" {
		c.Email.FromEmail = val
	}
	if val := os.Getenv("EMAIL_ADMIN"); val != "" {
		c.Email.AdminEmail = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Storage
	if val := os.Getenv("UPLOAD_DIR"); val != "" {
		c.Storage.UploadDir = val
	}

	// Admin credential placeholder
	if val := os.Getenv("ADMIN_USERNAME"); val != "" {
		c.Admin.Username = val
	}
	if val := os.Getenv("ADMIN_PASSWORD"); val != "" {
		c.Admin.Password = val
	}
	if val := os.Getenv("ADMIN_PASSWORD_HASH"); val != "" {
		c.Admin.PasswordHash = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	case "memory":
		// No connection settings needed.
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.SessionExpiryMinutes <= 0 {
		c.JWT.SessionExpiryMinutes = 60
	}

	// Storage validation
	if c.Storage.Type == "" {
		c.Storage.Type = "local"
	}
	if c.Storage.UploadDir == "" {
		return fmt.Errorf("upload directory is required")
	}

	// Admin credential placeholder validation
	if c.Admin.Username == "" {
		return fmt.Errorf("admin username is required")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return fmt.Errorf("admin password or password hash is required")
	}
	if c.Admin.DisplayName == "" {
		c.Admin.DisplayName = "Administrator"
	}

	// Scheduler defaults
	if c.Scheduler.PendingReminder == "" {
		c.Scheduler.PendingReminder = "0 0 8 * * *" // 8 AM UTC
	}
	if c.Scheduler.PendingReminderAgeDays <= 0 {
		c.Scheduler.PendingReminderAgeDays = 3
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
