package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvAPIBaseURL     = "MIMAMSA_API_BASE_URL"
	EnvDatabasePath   = "MIMAMSA_DB_PATH"
	EnvRequestTimeout = "MIMAMSA_REQUEST_TIMEOUT"
	EnvLogLevel       = "MIMAMSA_LOG_LEVEL"
	EnvLogFormat      = "MIMAMSA_LOG_FORMAT"
	EnvLogFile        = "MIMAMSA_LOG_FILE"
)

// dotEnvFile is loaded, if it exists, before the environment is read.
// Variables already set in the process environment win over the file.
var dotEnvFile = ".env"

// parseEnv overlays Config with MIMAMSA_* environment variables. A malformed
// MIMAMSA_REQUEST_TIMEOUT panics, like malformed JSON or flags do.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(dotEnvFile)

	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(EnvRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvRequestTimeout, err))
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok && v != "" {
		cfg.LogFile = v
	}
}
