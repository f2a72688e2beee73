// Package logging provides structured logging utilities for bloomctl.
//
// # Overview
//
// This package wraps the standard library slog package with tool-wide
// defaults and conventions. It supports environment-based log level
// configuration, module/version context injection, and automatic source
// location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("bloomctl", version)
//
//	    slog.Info("fetching recipe", "token", token)
//	    slog.Error("upload failed", "error", err)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("bloomctl", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug bloomctl fetch <token>
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format with module and version
// attributes attached to every record. stdout stays reserved for command
// output so piping works.
package logging
