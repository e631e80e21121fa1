// Copyright (c) 2026, Fineswap.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the HTTP server hosting the vertag daemon.
//
// The server carries route handlers supplied by the caller plus a built-in
// operational surface, and can run background workers (such as the catalog
// watcher) under the same lifecycle.
//
// # Architecture
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking via X-Request-Id headers (github.com/google/uuid)
//   - Panic recovery with structured error responses
//   - Prometheus instrumentation for every registered route
//   - Graceful shutdown on SIGINT/SIGTERM
//   - systemd readiness and watchdog notification (sd_notify); both are
//     no-ops outside systemd
//
// # Usage
//
//	s := server.New(
//	    server.WithName("vertagd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/versions": watcher.HandleVersions,
//	    }),
//	    server.WithWorker("watcher", watcher.Run),
//	)
//
//	if err := s.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Run blocks until a termination signal arrives or a component fails. The
// HTTP server and all registered workers share one errgroup: the first
// error cancels the rest.
//
// # Built-in Endpoints
//
// GET /health, GET /healthz - liveness probe
//
//	Always returns 200 OK with {"status": "healthy", "timestamp": "..."}
//
// GET /ready - readiness probe
//
//	Returns 200 OK once the server accepts traffic, 503 before that and
//	during shutdown
//
// GET /metrics - Prometheus metrics in the standard text format
//
// GET / - route index
//
//	Lists the registered routes with the server name and version. Only
//	installed when the caller registers no root handler of its own.
//
// # Middleware
//
// Registered handlers run behind a fixed chain: metrics, request ID,
// panic recovery, rate limiting, and request logging. The built-in
// endpoints bypass the chain; probes are never rate limited.
//
// Rate limit state is exposed through response headers:
//
//	X-RateLimit-Limit: requests allowed per second
//	X-RateLimit-Remaining: tokens remaining in the bucket
//	X-RateLimit-Reset: Unix timestamp when the bucket refills
//
// When rate limited the server responds 429 with a Retry-After header.
//
// # Error Handling
//
// All errors use one JSON document shape:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "catalog is required",
//	  "details": {"error": "..."},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-08-25T12:00:00Z",
//	  "retryable": false
//	}
//
// Handlers outside this package write errors through WriteError or
// WriteErrorFromErr; the latter derives the HTTP status from the
// structured error code in the error chain (pkg/errors).
//
// # Configuration
//
// NewConfig seeds timeouts from pkg/defaults and honors two environment
// variables: PORT and SHUTDOWN_TIMEOUT_SECONDS.
package server
