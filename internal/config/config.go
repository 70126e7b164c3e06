package config

import "time"

// Audit backends.
const (
	AuditBackendFile   = "file"
	AuditBackendSQLite = "sqlite"
)

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	// Exchange rate lookup.
	ExchangeAPIURL  string        `mapstructure:"exchange_api_url" yaml:"exchange_api_url"`
	ExchangeTimeout time.Duration `mapstructure:"exchange_timeout" yaml:"exchange_timeout"`
	MaxLookbackDays int           `mapstructure:"max_lookback_days" yaml:"max_lookback_days"`

	// Audit log of exchange command attempts.
	AuditBackend string `mapstructure:"audit_backend" yaml:"audit_backend"`
	AuditPath    string `mapstructure:"audit_path" yaml:"audit_path"`
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		ExchangeAPIURL:    "https://api.privatbank.ua",
		ExchangeTimeout:   10 * time.Second,
		MaxLookbackDays:   10,
		AuditBackend:      AuditBackendFile,
		AuditPath:         "info.txt",
		DatabasePath:      "ratechat.db",
	}
}
