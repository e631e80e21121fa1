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

// Package header provides common header types for vertag data structures.
//
// This package defines the Header type used across catalogs, version reports,
// and other vertag resources to provide consistent metadata and versioning
// information.
//
// # Header Structure
//
// The Header contains standard fields for API versioning and metadata:
//
//	type Header struct {
//	    Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
//	    APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
//	    Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
//	}
//
// # Usage
//
// Resources embed the Header inline and initialize it before serialization:
//
//	type Catalog struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Components    []Component `json:"components" yaml:"components"`
//	}
//
//	c.Init(header.KindVersionCatalog, catalog.FullAPIVersion, buildVersion)
//
// Init stamps a unique id, an RFC3339 timestamp, and the tool version into
// the Metadata map.
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "kind": "VersionCatalog",
//	  "apiVersion": "vertag.fineswap.com/v1alpha1",
//	  "metadata": {
//	    "id": "7f0a4c9e-2b1d-4f5a-9c3e-8d6b1a2c4e5f",
//	    "timestamp": "2026-08-25T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// # API Versioning
//
// The APIVersion field enables evolution of data formats. API version
// constants live in the resource-owning packages so each resource type can
// evolve independently. Consumers should check APIVersion before parsing:
//
//	if c.APIVersion != catalog.FullAPIVersion {
//	    return fmt.Errorf("unsupported API version: %s", c.APIVersion)
//	}
//
// # Kind Field
//
// The Kind field identifies the resource type:
//   - VersionCatalog: Pinned component versions
//   - VersionReport: Catalog check results
package header
