// Package config loads runtime configuration for the Mimamsa CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Environment variables MIMAMSA_*, optionally from a .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend API base URL
//	-d string   local session database path
//	-t int      request timeout (seconds)
//	-l string   log level
//	-f string   log format
//	-o string   log file (stderr when empty)
//
// # JSON schema
//
// request_timeout accepts strings like "20s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://mimamsabackend.onrender.com/api",
//	  "database_path": "mimamsa.db",
//	  "request_timeout": "20s",
//	  "log_level": "warn",
//	  "log_format": "text",
//	  "log_file": "mimamsa.log"
//	}
package config
