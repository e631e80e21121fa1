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

// Package defaults provides centralized configuration constants for vertag.
//
// This package defines timeout values, refresh intervals, and other
// configuration defaults used across the codebase. Centralizing these values
// ensures consistency and makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Upstream timeouts: For release source queries
//   - Checker timeouts: For catalog-wide version checks
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Registry timeouts: For catalog artifact push and pull
//   - HTTP client timeouts: For outbound HTTP requests
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/fineswap/vertag/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.UpstreamTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - Upstream lookups: 10s default, respects parent context deadline
//   - Catalog checks: 15s per component, 60s for the full catalog
//   - Registry operations: 60s for push and pull
//   - Server shutdown: 30s for graceful shutdown
package defaults
