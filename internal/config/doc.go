// Package config manages application configuration for the ThemePick API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - SamplerConfig: random theme sampling page size and batch cap
//   - JobsConfig: background job intervals
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT              - HTTP server port (default: 8080)
//	SERVER_ENV               - development, production, or test
//	DB_HOST / DB_PORT        - SurrealDB endpoint
//	DB_NAMESPACE / DB_DATABASE
//	DB_USER / DB_PASSWORD
//	SAMPLER_PAGE_SIZE        - scan page size (default: 1000)
//	SAMPLER_BATCH_CAP        - ids accumulated per sampler invocation (default: 1000)
//	INTEGRITY_SWEEP_INTERVAL - dangling-reference sweep interval (default: 1h)
//
// # Default Values
//
// Sensible defaults are provided for development, so a bare environment
// points at a local SurrealDB instance with root credentials.
package config
