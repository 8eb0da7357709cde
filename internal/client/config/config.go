package config

import "time"

// Config holds runtime settings for the Mimamsa CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, e.g. https://host/api.
//   - DatabasePath: SQLite file holding the persisted session.
//   - RequestTimeout: upper bound for a single backend call.
//   - LogLevel: debug, info, warn or error.
//   - LogFormat: text, json or zap.
//   - LogFile: append log output here instead of stderr. Empty means stderr.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	LogFile        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://mimamsabackend.onrender.com/api"
	c.DatabasePath = "mimamsa.db"
	c.RequestTimeout = 20 * time.Second
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
