// Package version provides an immutable, labeled semantic version value type
// with parsing, rendering, and ordering comparisons.
//
// # Overview
//
// A Version pairs an identifying label with a (major, minor, patch) integer
// triple. The label names the object the version belongs to (a component, an
// image, a file) and is opaque to the ordering logic: two versions order by
// their triples alone, while equality and hashing consider the label as well.
//
// Components are plain signed integers. Minor and patch default to 0 when not
// supplied, both at construction and when parsing short version strings.
//
// # Usage
//
// Construct from discrete components:
//
//	v, err := version.New("cuda", 12, 4, 1)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.Full()) // Output: 12.4.1
//
// Parse from a dotted string:
//
//	v, err := version.Parse("cuda", "12.4")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: cuda-12.4.0
//
// Compare versions:
//
//	pinned := version.MustParse("cuda", "12.4.1")
//	latest := version.MustParse("cuda", "12.6.0")
//	if latest.IsNewerThan(pinned) {
//	    fmt.Println("update available")
//	}
//
// # Renderings
//
// Three renderings exist, all derived from the same components:
//
//   - Short:  "major.minor" (e.g., "12.4")
//   - Full:   "major.minor.patch" (e.g., "12.4.1")
//   - String: "label-major.minor.patch" (e.g., "cuda-12.4.1")
//
// Parse accepts the Short and Full forms as well as a bare major component;
// it does not accept the String form, since the label travels separately.
//
// # Ordering Semantics
//
// Ordering is strictly lexicographic over (major, minor, patch). The
// predicates come in three shapes:
//
//   - IsNewerThan / IsOlderThan take another Version and compare full triples.
//   - IsNewerThanFull / IsOlderThanFull take explicit major, minor, patch.
//   - IsNewerThanShort / IsOlderThanShort take only major and minor; the
//     patch component is ignored entirely, so versions differing only in
//     patch compare as neither newer nor older.
//
// Equal triples answer false to every predicate in both directions, even when
// the labels differ.
//
// # Not Supported
//
//   - Prerelease identifiers (e.g., "1.2.3-alpha")
//   - Build metadata (e.g., "1.2.3+build.123")
//   - Version ranges or constraints
//
// # Error Handling
//
// Construction errors fall into two kinds, exposed as wrapping sentinels:
//
//   - ErrInvalidArgument: a required argument was absent
//     (ErrEmptyLabel, ErrEmptyText)
//   - ErrFormat: version text was present but malformed
//     (ErrNonNumeric, carrying the offending segment)
//
// Match either level with errors.Is:
//
//	if _, err := version.Parse(label, text); errors.Is(err, version.ErrFormat) {
//	    // malformed text, not an absent argument
//	}
//
// For constant initialization, use MustParse which panics on error:
//
//	var MinSupported = version.MustParse("driver", "535.0.0")
package version
