package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the noclaf CLI.
//
// Fields:
//   - BaseURL: scheme://host[/prefix] of the backend; endpoint paths are appended to it.
//   - DatabasePath: SQLite file holding the durable session.
//   - RequestTimeout: per-request transport timeout.
//   - LogLevel: one of debug, info, warn, error.
type Config struct {
	BaseURL        string        `env:"BASE_URL"`
	DatabasePath   string        `env:"DATABASE_PATH"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// EnvPrefix is prepended to every environment variable name read by parseEnv.
const EnvPrefix = "NOCLAF_"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://unifesoios.noclaf.com.br/core"
	c.DatabasePath = "session.db"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file
// named by -c/-config, NOCLAF_* environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if cfg.RequestTimeout < 0 {
		return nil, fmt.Errorf("request timeout must not be negative: %s", cfg.RequestTimeout)
	}
	return cfg, nil
}
