// Package config manages application configuration for the activities API.
//
// The config package loads and validates configuration from environment
// variables, reading a local .env file first when one exists.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, env, timeouts, CORS, static dir)
//   - RateLimitConfig: request rate limiting knobs
//
// # Environment Variables
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development, production, or test
//	SERVER_READ_TIMEOUT   - read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT  - write timeout (default: 15s)
//	CORS_ALLOWED_ORIGINS  - comma-separated origin allow list
//	STATIC_DIR            - directory served under /static/ (default: ./static)
//	RATE_LIMIT_RATE       - requests per window (default: 100)
//	RATE_LIMIT_WINDOW     - window duration (default: 1m)
//	RATE_LIMIT_BURST      - burst allowance (default: 20)
package config
