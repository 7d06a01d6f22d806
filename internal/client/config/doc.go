// Package config loads runtime configuration for the noclaf CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. NOCLAF_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   session database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "base_url": "https://unifesoios.noclaf.com.br/core",
//	  "database_path": "session.db",
//	  "request_timeout": "30s",
//	  "log_level": "info"
//	}
package config
