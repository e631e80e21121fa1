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

package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Acronyms that should stay uppercase in display names.
var acronyms = map[string]string{
	"gpu":  "GPU",
	"cpu":  "CPU",
	"cuda": "CUDA",
	"dcgm": "DCGM",
	"cni":  "CNI",
	"csi":  "CSI",
	"oci":  "OCI",
	"api":  "API",
	"cli":  "CLI",
	"nfd":  "NFD",
	"gfd":  "GFD",
	"runc": "runc",
}

// DisplayName converts a component name to a human-readable display name.
// Examples:
//   - "gpu-operator" -> "GPU Operator"
//   - "dcgm-exporter" -> "DCGM Exporter"
//   - "containerd" -> "Containerd"
func DisplayName(name string) string {
	nameLower := strings.ToLower(name)

	// Check if the whole name is a known acronym
	if acronym, found := acronyms[nameLower]; found {
		return acronym
	}

	titleCaser := cases.Title(language.English)

	// Handle dash- and underscore-separated words (e.g., "gpu-operator" -> "GPU Operator")
	if strings.ContainsAny(name, "-_") {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '-' || r == '_'
		})
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if acronym, found := acronyms[strings.ToLower(part)]; found {
				out = append(out, acronym)
			} else {
				out = append(out, titleCaser.String(part))
			}
		}
		return strings.Join(out, " ")
	}

	// Simple title case
	return titleCaser.String(name)
}
