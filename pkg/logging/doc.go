// Package logging provides structured logging utilities for vertag components.
//
// # Overview
//
// This package wraps the standard library slog package with vertag-specific
// defaults and conventions for consistent logging across the CLI and the
// watch daemon. It supports environment-based log level configuration,
// module/version context injection, and automatic source location tracking
// for debug logs.
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
//	    logging.SetDefaultStructuredLogger("vertag", version)
//
//	    slog.Info("processing component", "name", "gpu-operator")
//	    slog.Debug("detailed state", "catalog", cat)
//	    slog.Error("lookup failed", "error", err)
//	}
//
// Setting an explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("vertag", version, "warn")
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("vertagd", "v1.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug vertag check
//	LOG_LEVEL=error vertagd
//
// If LOG_LEVEL is not set, the level defaults to INFO.
//
// # Output Format
//
// All logs are written to stderr in JSON format so that command results on
// stdout stay machine-readable:
//
//	{
//	    "time": "2026-08-25T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "catalog loaded",
//	    "module": "vertag",
//	    "version": "v1.0.0",
//	    "components": 6
//	}
//
// Debug-enabled loggers additionally include the source location of each
// record.
package logging
