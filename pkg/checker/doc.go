// Package checker compares a catalog's pinned component versions against
// their upstream release sources.
//
// # Overview
//
// A Checker fans out over the catalog with a bounded number of concurrent
// lookups and classifies every component:
//
//   - current: the pinned version matches the latest release
//   - older: a newer version is available upstream
//   - newer: the pin is ahead of the latest release
//   - unknown: the pin failed to resolve or the lookup failed
//
// Lookup failures never abort the check; the affected component degrades to
// unknown and its error text is carried in the result. Only context
// cancellation stops a check early.
//
// # Usage
//
//	cat, err := catalog.Load(ctx, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	chk := checker.New(upstream.NewGitHub(nil), buildVersion)
//	report, err := chk.Check(ctx, cat)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if report.HasUpdates() {
//	    fmt.Printf("%d components outdated\n", report.Summary.Older)
//	}
//
// Reports carry the standard document header and serialize to JSON, YAML,
// or a table through pkg/serializer.
//
// # Watcher
//
// A Watcher wraps a Checker for daemon use: it re-checks the catalog on a
// fixed interval, keeps the last good report across failed refreshes, and
// serves the cached report through HandleVersions. Run follows the server
// worker contract, so the watcher plugs straight into server.WithWorker.
//
// # Integration
//
// The checker package is used by:
//   - pkg/cli - check command
//   - pkg/api - background refresh loop and the /v1/versions endpoint
package checker
