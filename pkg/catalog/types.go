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
	"fmt"
	"strings"

	apperrors "github.com/fineswap/vertag/pkg/errors"
	"github.com/fineswap/vertag/pkg/header"
	"github.com/fineswap/vertag/pkg/imageref"
	"github.com/fineswap/vertag/pkg/version"
)

// FullAPIVersion is the schema version for VersionCatalog resources.
const FullAPIVersion = "vertag.fineswap.com/v1alpha1"

// Catalog is a named set of pinned component versions.
type Catalog struct {
	header.Header `json:",inline" yaml:",inline"`

	// Components are the pinned entries, one per tracked component.
	Components []Component `json:"components" yaml:"components"`
}

// Component pins a single tracked component to a version.
type Component struct {
	// Name identifies the component within the catalog.
	Name string `json:"name" yaml:"name"`

	// Label overrides the version label. Defaults to Name when empty.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Repo is the upstream GitHub repository in "owner/name" form.
	Repo string `json:"repo,omitempty" yaml:"repo,omitempty"`

	// Image is an optional container image reference whose tag tracks
	// the pinned version.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`

	// Version is the pinned version text, e.g. "25.3.0" or "1.2".
	// Optional when Image carries the version in its tag.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// VersionLabel returns the label the component's versions carry:
// the explicit Label when set, otherwise the component Name.
func (c Component) VersionLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Name
}

// Resolve parses the pinned version text into a labeled Version. Components
// that pin no version text fall back to the tag of their image reference.
// A leading "v" on the version text is tolerated.
func (c Component) Resolve() (version.Version, error) {
	if c.Version == "" && c.Image != "" {
		v, err := imageref.FromRef(c.Image)
		if err != nil {
			return version.Version{}, err
		}
		if v.Label() == c.VersionLabel() {
			return v, nil
		}
		return version.New(c.VersionLabel(), v.Major(), v.Minor(), v.Patch())
	}
	return version.Parse(c.VersionLabel(), strings.TrimPrefix(c.Version, "v"))
}

// OwnerRepo splits the Repo field into its owner and repository parts.
func (c Component) OwnerRepo() (string, string, error) {
	owner, repo, found := strings.Cut(c.Repo, "/")
	if !found || owner == "" || repo == "" {
		return "", "", apperrors.NewWithContext(
			apperrors.ErrCodeInvalidRequest,
			"repo must be in owner/name form",
			map[string]any{"component": c.Name, "repo": c.Repo},
		)
	}
	return owner, repo, nil
}

// Validate checks the catalog for structural problems: wrong kind or
// apiVersion, missing or duplicate component names, and unparseable
// pinned versions. Empty Kind and APIVersion are accepted so plain
// component lists load without a header.
func (c *Catalog) Validate() error {
	if c.Kind != "" && c.Kind != header.KindVersionCatalog {
		return apperrors.NewWithContext(
			apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unexpected kind %q, want %q", c.Kind, header.KindVersionCatalog),
			map[string]any{"kind": string(c.Kind)},
		)
	}

	if c.APIVersion != "" && c.APIVersion != FullAPIVersion {
		return apperrors.NewWithContext(
			apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported apiVersion %q, want %q", c.APIVersion, FullAPIVersion),
			map[string]any{"apiVersion": c.APIVersion},
		)
	}

	if len(c.Components) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "catalog has no components")
	}

	seen := make(map[string]bool, len(c.Components))
	for _, comp := range c.Components {
		if comp.Name == "" {
			return apperrors.New(apperrors.ErrCodeInvalidRequest, "component with empty name")
		}
		if seen[comp.Name] {
			return apperrors.NewWithContext(
				apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate component %q", comp.Name),
				map[string]any{"component": comp.Name},
			)
		}
		seen[comp.Name] = true

		if _, err := comp.Resolve(); err != nil {
			return apperrors.WrapWithContext(
				apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("component %q has an invalid pinned version", comp.Name),
				err,
				map[string]any{"component": comp.Name, "version": comp.Version},
			)
		}
	}

	return nil
}
