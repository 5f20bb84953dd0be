package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage backend selectors.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Reporting ReportingConfig
	Notify    NotifyConfig
	Sheets    SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// StorageConfig selects and parameterizes the key-value backend.
type StorageConfig struct {
	Backend  string
	DataFile string
	MongoURI string
	MongoDB  string
}

// ReportingConfig holds the scheduled report export settings. An empty cron
// schedule disables the scheduler.
type ReportingConfig struct {
	CronSchedule string
	OutputDir    string
}

// NotifyConfig holds the optional report-summary webhook target.
type NotifyConfig struct {
	WebhookURL string
}

// SheetsConfig holds the optional Google Sheets sale ledger settings. Both
// fields must be set for the ledger to be enabled.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Storage: StorageConfig{
			Backend:  getenvWithDefault("STORAGE_BACKEND", BackendFile),
			DataFile: getenvWithDefault("DATA_FILE", "data/farmtrack.json"),
			MongoURI: os.Getenv("MONGODB_URI"),
			MongoDB:  getenvWithDefault("MONGODB_DB_NAME", "farmtrack"),
		},
		Reporting: ReportingConfig{
			CronSchedule: os.Getenv("REPORT_CRON_SCHEDULE"),
			OutputDir:    getenvWithDefault("REPORT_OUTPUT_DIR", "reports"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_LEDGER_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.DataFile == "" {
			return errors.New("DATA_FILE must be provided for the file backend")
		}
	case BackendMemory:
		// Nothing to validate; data is lost on restart.
	case BackendMongo:
		if c.Storage.MongoURI == "" {
			return errors.New("MONGODB_URI must be provided for the mongo backend")
		}
		if c.Storage.MongoDB == "" {
			return errors.New("MONGODB_DB_NAME must be provided for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Reporting.CronSchedule != "" && c.Reporting.OutputDir == "" {
		return errors.New("REPORT_OUTPUT_DIR must be provided when report scheduling is enabled")
	}

	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_LEDGER_ID must be set together")
	}

	return nil
}

// SheetsEnabled reports whether the sale ledger should be wired.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
