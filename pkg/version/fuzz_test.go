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
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("app", "1")
	f.Add("app", "1.2")
	f.Add("app", "1.2.3")
	f.Add("app", "0")
	f.Add("app", "0.0")
	f.Add("app", "0.0.0")
	f.Add("app", "999.999.999")
	f.Add("app", "-1")
	f.Add("app", "-1.2.-3")
	f.Add("app", "+1.2")
	f.Add("app", "")
	f.Add("", "1.2.3")
	f.Add("", "")
	f.Add("app", ".")
	f.Add("app", "..")
	f.Add("app", "1.")
	f.Add("app", ".1")
	f.Add("app", "1..2")
	f.Add("app", "a.b.c")
	f.Add("app", "1.2.3.4")
	f.Add("app", "1.2.3.4.5")
	f.Add("app", "   1.2.3")
	f.Add("app", "1.2.3   ")
	f.Add("app", "1. 2.3")
	f.Add("with-dash", "1.2.3")
	f.Add("with.dot", "1.2.3")

	f.Fuzz(func(t *testing.T, label, text string) {
		// Parse should never panic
		v, err := Parse(label, text)

		// If parsing succeeded, verify the version is well formed
		if err == nil {
			if label == "" || text == "" {
				t.Errorf("Parse(%q, %q) succeeded on an empty argument", label, text)
			}
			if !v.IsValid() {
				t.Errorf("Parse(%q, %q) returned invalid version: %+v", label, text, v)
			}
			if v.Label() != label {
				t.Errorf("Parse(%q, %q) changed label to %q", label, text, v.Label())
			}

			// Renderings should not panic
			_ = v.Short()
			s := v.Full()

			// Re-parsing the full rendering should produce an equal version
			v2, err2 := Parse(label, s)
			if err2 != nil {
				t.Errorf("Re-parsing %q (from %q) failed: %v", s, text, err2)
			} else if !v.Equals(v2) {
				t.Errorf("Round-trip mismatch for %q: %+v != %+v", text, v, v2)
			}

			// Equal versions must hash identically
			if err2 == nil && v.Hash() != v2.Hash() {
				t.Errorf("Equal versions hash differently for %q", text)
			}

			// Exactly one of newer, older, triple-equal must hold against
			// any fixed reference
			ref := MustParse("ref", "1.2.3")
			newer := v.IsNewerThan(ref)
			older := v.IsOlderThan(ref)
			equal := v.Compare(ref) == 0
			count := 0
			for _, p := range []bool{newer, older, equal} {
				if p {
					count++
				}
			}
			if count != 1 {
				t.Errorf("trichotomy violated for %q: newer=%v older=%v equal=%v",
					text, newer, older, equal)
			}
		}
	})
}

// FuzzNew verifies that constructed versions always round-trip through the
// full rendering
func FuzzNew(f *testing.F) {
	f.Add("app", 1, 2, 3)
	f.Add("app", 0, 0, 0)
	f.Add("app", -1, -2, -3)
	f.Add("x", 2147483647, 0, -2147483648)

	f.Fuzz(func(t *testing.T, label string, major, minor, patch int) {
		v, err := New(label, major, minor, patch)
		if err != nil {
			if label != "" {
				t.Errorf("New(%q, %d, %d, %d) failed unexpectedly: %v", label, major, minor, patch, err)
			}
			return
		}

		if v.Major() != major || v.Minor() != minor || v.Patch() != patch {
			t.Errorf("New(%q, %d, %d, %d) = %+v", label, major, minor, patch, v)
		}

		v2, err := Parse(label, v.Full())
		if err != nil {
			t.Errorf("Parse(%q, %q) failed: %v", label, v.Full(), err)
		} else if !v.Equals(v2) {
			t.Errorf("round-trip mismatch: %+v != %+v", v, v2)
		}
	})
}
