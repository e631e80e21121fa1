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

// Package serializer provides encoding and decoding of version data in multiple formats.
//
// # Overview
//
// The serializer package handles conversion between vertag data structures and
// various output formats including JSON, YAML, and human-readable tables. It
// supports both encoding (writing data) and decoding (reading data) operations
// with automatic format detection.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact representation
//   - Suitable for API responses and programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for catalog files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value text representation
//   - Suitable for terminal/console viewing
//   - Read-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout:
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, falling back to stdout when path is empty:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, outputPath)
//	defer w.Close()
//	if err := w.Serialize(ctx, catalog); err != nil {
//	    log.Fatal(err)
//	}
//
// # Usage - Decoding
//
// Read from file with automatic format detection:
//
//	catalog, err := serializer.FromFile[catalog.Catalog]("catalog.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Read with custom io.Reader:
//
//	reader, err := serializer.NewReader(serializer.FormatYAML, strings.NewReader(yamlData))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var c catalog.Catalog
//	if err := reader.Deserialize(&c); err != nil {
//	    log.Fatal(err)
//	}
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
//
// # Resource Management
//
// Always close writers and readers that manage files:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "report.json")
//	defer w.Close()
//
// Stdout writers don't require closing but Close() is safe to call.
//
// # Integration
//
// Used throughout vertag for data I/O:
//   - pkg/cli - Command output formatting
//   - pkg/catalog - Catalog file loading
//   - pkg/server - HTTP response encoding
//   - pkg/registry - Catalog artifact payloads
package serializer
