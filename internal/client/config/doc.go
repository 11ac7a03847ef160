// Package config loads runtime configuration for the shortlink CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables: SHORTLINK_API_URL, SHORTLINK_DB,
//     SHORTLINK_REFRESH_INTERVAL.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything.
//
// Supported flags
//
//	-a string   base URL of the shortlink API
//	-d string   path to the local sqlite database
//	-i int      dashboard refresh interval (seconds)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:3000",
//	  "database_dsn": "shortlink.db",
//	  "refresh_interval": "10s"
//	}
package config
