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

package version

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Error kinds for construction failures. The specific errors below wrap one of
// these two, so callers can match either the exact error or its kind with
// errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrFormat          = errors.New("invalid version format")
)

// Specific construction and parse errors.
var (
	ErrEmptyLabel = fmt.Errorf("%w: empty label", ErrInvalidArgument)
	ErrEmptyText  = fmt.Errorf("%w: empty version text", ErrInvalidArgument)
	ErrNonNumeric = fmt.Errorf("%w: non-numeric component", ErrFormat)
)

// componentLimit caps how many dot-separated segments Parse splits out.
// Anything past the third dot stays attached to the patch segment.
const componentLimit = 3

// Version is an immutable semantic version tagged with an identifying label.
// The label names the object the version belongs to and takes part in equality
// and hashing but never in ordering. The zero Version carries no label and is
// not valid; use New, Parse, or MustParse to construct one.
type Version struct {
	label string
	major int
	minor int
	patch int
}

// New creates a Version for the given label and major component. Up to two
// additional components may follow: the first is the minor and the second the
// patch, each defaulting to 0 when omitted.
func New(label string, major int, rest ...int) (Version, error) {
	if label == "" {
		return Version{}, ErrEmptyLabel
	}
	if len(rest) > 2 {
		return Version{}, fmt.Errorf("%w: at most three numeric components", ErrInvalidArgument)
	}

	v := Version{label: label, major: major}
	if len(rest) > 0 {
		v.minor = rest[0]
	}
	if len(rest) > 1 {
		v.patch = rest[1]
	}
	return v, nil
}

// Parse creates a Version for the given label from a dotted version string.
// The text is split on "." into at most three segments: major (required),
// minor, and patch, the latter two defaulting to 0 when absent. Each segment
// must be a base-10, optionally signed integer. Since the split stops at three
// segments, a fourth dot leaves its remainder glued to the patch segment and
// the parse fails with ErrNonNumeric.
func Parse(label, text string) (Version, error) {
	if label == "" {
		return Version{}, ErrEmptyLabel
	}
	if text == "" {
		return Version{}, ErrEmptyText
	}

	parts := strings.SplitN(text, ".", componentLimit)

	nums := make([]int, len(parts))
	for i, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		nums[i] = num
	}

	v := Version{label: label, major: nums[0]}
	if len(nums) > 1 {
		v.minor = nums[1]
	}
	if len(nums) > 2 {
		v.patch = nums[2]
	}
	return v, nil
}

// MustParse parses a labeled version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use Parse and handle errors explicitly.
func MustParse(label, text string) Version {
	v, err := Parse(label, text)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// Label returns the identifying label.
func (v Version) Label() string {
	return v.label
}

// Major returns the major component.
func (v Version) Major() int {
	return v.major
}

// Minor returns the minor component.
func (v Version) Minor() int {
	return v.minor
}

// Patch returns the patch component.
func (v Version) Patch() int {
	return v.patch
}

// Short returns the two-component rendering, "major.minor".
func (v Version) Short() string {
	return fmt.Sprintf("%d.%d", v.major, v.minor)
}

// Full returns the three-component rendering, "major.minor.patch".
func (v Version) Full() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// String returns the display rendering, "label-major.minor.patch".
func (v Version) String() string {
	return v.label + "-" + v.Full()
}

// Equals returns true if other carries the same label and the same
// major, minor, and patch components.
func (v Version) Equals(other Version) bool {
	return v.label == other.label &&
		v.major == other.major &&
		v.minor == other.minor &&
		v.patch == other.patch
}

// Hash returns a 64-bit FNV-1a hash of the display rendering. Two versions
// that compare equal with Equals always hash to the same value. The hash is
// taken over String() rather than the individual fields.
func (v Version) Hash() uint64 {
	h := fnv.New64a()
	// hash.Hash Write never returns an error
	_, _ = h.Write([]byte(v.String()))
	return h.Sum64()
}

// IsNewerThanShort returns true if v is newer than the given major.minor
// pair. The patch component does not participate in this comparison: two
// versions that differ only in patch are neither newer nor older here.
func (v Version) IsNewerThanShort(major, minor int) bool {
	return v.major > major || (v.major == major && v.minor > minor)
}

// IsNewerThanFull returns true if v is newer than the given major.minor.patch
// triple, comparing components lexicographically in that order.
func (v Version) IsNewerThanFull(major, minor, patch int) bool {
	return v.IsNewerThanShort(major, minor) ||
		(v.major == major && v.minor == minor && v.patch > patch)
}

// IsNewerThan returns true if v is newer than other. Labels are ignored.
func (v Version) IsNewerThan(other Version) bool {
	return v.IsNewerThanFull(other.major, other.minor, other.patch)
}

// IsOlderThanShort returns true if v is older than the given major.minor
// pair. The patch component does not participate in this comparison.
func (v Version) IsOlderThanShort(major, minor int) bool {
	return v.major < major || (v.major == major && v.minor < minor)
}

// IsOlderThanFull returns true if v is older than the given major.minor.patch
// triple, comparing components lexicographically in that order.
func (v Version) IsOlderThanFull(major, minor, patch int) bool {
	return v.IsOlderThanShort(major, minor) ||
		(v.major == major && v.minor == minor && v.patch < patch)
}

// IsOlderThan returns true if v is older than other. Labels are ignored.
func (v Version) IsOlderThan(other Version) bool {
	return v.IsOlderThanFull(other.major, other.minor, other.patch)
}

// Compare returns -1 if v is older than other, 1 if newer, and 0 when the
// triples match. Like the ordering predicates it never considers the label.
// Useful for sorting versions.
func (v Version) Compare(other Version) int {
	if v.IsNewerThan(other) {
		return 1
	}
	if v.IsOlderThan(other) {
		return -1
	}
	return 0
}

// IsValid returns true if the version carries a label. The zero Version is
// not valid; every Version returned by New, Parse, or MustParse is.
func (v Version) IsValid() bool {
	return v.label != ""
}
