// Package cli implements the command-line interface for the vertag tool.
//
// # Overview
//
// The vertag CLI works with labeled semantic versions: a component label
// plus a major.minor.patch triple, e.g. CUDA-12.3.1. It parses and compares
// individual versions, resolves the latest releases of GitHub repositories,
// and tracks whole catalogs of pinned components against their upstreams.
// Catalogs can be distributed through OCI registries.
//
// # Commands
//
// parse - Parse a version string:
//
//	vertag parse LABEL VERSION [--output FILE] [--format yaml|json|table]
//
// Splits the version text on dots into major, minor, and patch and prints
// the components together with the short, full, and display renderings and
// the version hash.
//
// compare - Compare two versions under one label:
//
//	vertag compare LABEL VERSION_A VERSION_B [--ignore-patch]
//
// Reports whether A is newer than, older than, or equal to B. The label
// never participates in the ordering. With --ignore-patch only the
// major.minor pair is compared.
//
// latest - Resolve the newest upstream release:
//
//	vertag latest OWNER/REPO [--label LABEL] [--token TOKEN]
//
// Resolves the latest release of a GitHub repository, falling back to the
// tag list when the repository publishes no releases.
//
// catalog - Inspect version catalogs:
//
//	vertag catalog list [--catalog FILE]
//	vertag catalog get NAME [--catalog FILE]
//
// Prints the whole catalog or a single component. Without --catalog the
// embedded default catalog is used.
//
// check - Check a catalog against upstream:
//
//	vertag check [--catalog FILE] [--token TOKEN] [--fail-on-outdated]
//
// Resolves the latest version of every catalog component and classifies
// each pinned version as current, older, newer, or unknown.
//
// push / pull - Distribute catalogs through OCI registries:
//
//	vertag push REFERENCE [--catalog FILE] [--plain-http] [--insecure-tls]
//	vertag pull REFERENCE [--output FILE]
//
// Packages a catalog as an OCI artifact and pushes it to a registry, or
// fetches and validates one that was pushed earlier.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--debug        Enable debug logging
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Usage Examples
//
// Parse a CUDA version to JSON:
//
//	vertag parse CUDA 12.3.1 --format json
//
// Gate a CI pipeline on catalog freshness:
//
//	vertag check --catalog ./my-stack.yaml --fail-on-outdated
//
// Publish a catalog and consume it elsewhere:
//
//	vertag push ghcr.io/acme/my-stack:v1.0.0 --catalog ./my-stack.yaml
//	vertag pull ghcr.io/acme/my-stack:v1.0.0 --output ./my-stack.yaml
//
// # Environment Variables
//
//	LOG_LEVEL       Set logging verbosity (debug, info, warn, error)
//	VERTAG_CATALOG  Default catalog file path for --catalog
//	GITHUB_TOKEN    Default GitHub API token for --token
//
// # Exit Codes
//
//	0  Success
//	1  Error (invalid arguments, execution failure, outdated components
//	   with --fail-on-outdated)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/version - Version parsing and comparison
//   - pkg/catalog - Catalog loading and validation
//   - pkg/upstream - GitHub release resolution
//   - pkg/checker - Catalog freshness checks
//   - pkg/registry - OCI artifact push and pull
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/fineswap/vertag/pkg/cli.version=1.0.0'"
package cli
