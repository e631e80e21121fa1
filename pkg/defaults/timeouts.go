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

package defaults

import "time"

// Upstream timeouts for release source queries.
const (
	// UpstreamTimeout is the default timeout for a single release lookup.
	// Lookups should respect parent context deadlines when shorter.
	UpstreamTimeout = 10 * time.Second

	// UpstreamListTimeout is the timeout for paginated tag listings, which
	// may require multiple round trips.
	UpstreamListTimeout = 30 * time.Second
)

// Checker timeouts for catalog-wide version checks.
const (
	// CheckTimeout is the timeout for a full catalog check across
	// all components.
	CheckTimeout = 60 * time.Second

	// CheckComponentTimeout is the per-component timeout within a check.
	// Should be less than CheckTimeout to allow error handling.
	CheckComponentTimeout = 15 * time.Second

	// CheckRefreshInterval is the default interval between background
	// catalog checks in the daemon.
	CheckRefreshInterval = 15 * time.Minute
)

// Handler timeouts for HTTP request processing.
const (
	// VersionsHandlerTimeout is the timeout for version report requests.
	VersionsHandlerTimeout = 30 * time.Second

	// ReportCacheTTL is the default cache duration for version reports
	// served between background refreshes.
	ReportCacheTTL = 10 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Registry timeouts for catalog artifact operations.
const (
	// RegistryPushTimeout is the timeout for pushing a catalog artifact.
	RegistryPushTimeout = 60 * time.Second

	// RegistryPullTimeout is the timeout for pulling a catalog artifact.
	RegistryPullTimeout = 60 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLICheckTimeout is the default timeout for the check command.
	CLICheckTimeout = 2 * time.Minute

	// CLIPushTimeout is the default timeout for catalog push operations.
	CLIPushTimeout = 2 * time.Minute
)
