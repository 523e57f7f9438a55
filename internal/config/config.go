package config

import "time"

// Config holds runtime settings for the authkeep CLI.
//
// Fields:
//   - DatabaseDSN: path (or sqlite DSN) of the local auth database.
//   - OperationTimeout: per-operation deadline the CLI applies to calls
//     into the session manager. The core itself enforces no timeouts.
//   - LogLevel: minimum level for the structured logger (debug, info,
//     warn, error).
type Config struct {
	DatabaseDSN      string
	OperationTimeout time.Duration
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "auth.db"
	c.OperationTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
