// Package api provides the HTTP API layer for the vertag version daemon.
//
// This package acts as a thin wrapper around the reusable pkg/server
// package, configuring it with the catalog watcher and its route handlers.
// It exposes the cached version report over REST while the watcher keeps
// the report fresh in the background.
//
// # Usage
//
// To start the daemon:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/fineswap/vertag/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Loading the catalog and building the upstream release source
//   - Registering the watcher as a background worker
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//   - systemd readiness and watchdog notifications
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/versions - Version report for every catalog component
//   - GET /v1/catalog  - The catalog the daemon checks against
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The daemon is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - VERTAG_CATALOG: Path to a catalog file (default: embedded catalog)
//   - VERTAG_CHECK_INTERVAL: Refresh interval, Go duration syntax (default: 15m)
//   - GITHUB_TOKEN: GitHub API token for higher rate limits
//   - SHUTDOWN_TIMEOUT_SECONDS: Graceful shutdown bound (default: 30)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/fineswap/vertag/pkg/api.version=1.0.0'"
package api
