// Package upstream resolves the latest published version of catalog components
// from their release sources.
//
// # Overview
//
// The upstream package queries GitHub for the newest version of a component.
// It prefers the repository's latest release; repositories that publish no
// releases, or whose release tags are not semantic versions, fall back to a
// bounded scan of the tag list where unparseable tags are skipped.
//
// # Usage
//
// Unauthenticated lookups:
//
//	src := upstream.NewGitHub(nil)
//	v, err := src.LatestVersion(ctx, "containerd", "containerd", "containerd")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v.String()) // containerd-2.0.2
//
// Authenticated lookups raise the API quota:
//
//	src := upstream.NewGitHubWithToken(ctx, os.Getenv("GITHUB_TOKEN"))
//
// # Lookup Strategy
//
// 1. Query the latest release and parse its tag (leading "v" trimmed)
// 2. On 404 or an unparseable release tag, list tags page by page
// 3. Keep the newest parseable tag, skipping the rest
// 4. Fail with NOT_FOUND when no tag parses at all
//
// Outbound calls share a client-side rate limiter so catalog-wide checks stay
// inside the API quota. Timeouts come from pkg/defaults.
//
// # Observability
//
// The package exports Prometheus metrics:
//   - vertag_upstream_lookup_duration_seconds: Lookup latency
//   - vertag_upstream_lookups_total: Total lookups
//   - vertag_upstream_tag_fallbacks_total: Lookups that scanned tags
//   - vertag_upstream_failures_total: Failed lookups
//
// # Integration
//
// The upstream package is used by:
//   - pkg/checker - catalog-wide version checks
//   - pkg/cli - latest command
package upstream
