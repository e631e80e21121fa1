/*
Copyright © 2026 Fineswap
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fineswap/vertag/pkg/checker"
	"github.com/fineswap/vertag/pkg/header"
)

// writeLocalCatalog writes a catalog whose single component has no upstream
// repository, so checking it never leaves the process.
func writeLocalCatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `components:
  - name: local
    version: 1.0.0
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}

func TestCheckCommand(t *testing.T) {
	path := writeLocalCatalog(t)

	out := filepath.Join(filepath.Dir(path), "out")
	if err := runCLI(t, "check", "--catalog", path, "--format", "json", "--output", out); err != nil {
		t.Fatalf("check failed: %v", err)
	}

	var report checker.Report
	if err := json.Unmarshal([]byte(readFile(t, out)), &report); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}

	if report.Kind != header.KindVersionReport {
		t.Errorf("Kind = %q, want %q", report.Kind, header.KindVersionReport)
	}
	if report.Summary.Total != 1 || report.Summary.Unknown != 1 {
		t.Errorf("Summary = %+v, want 1 total and 1 unknown", report.Summary)
	}
	if len(report.Components) != 1 {
		t.Fatalf("got %d components, want 1", len(report.Components))
	}
	if report.Components[0].Name != "local" {
		t.Errorf("Name = %q, want %q", report.Components[0].Name, "local")
	}
	if report.Components[0].State != checker.StateUnknown {
		t.Errorf("State = %q, want %q", report.Components[0].State, checker.StateUnknown)
	}
	if report.Components[0].Error == "" {
		t.Error("expected the component error to explain the missing repository")
	}
}

func TestCheckCommandFailOnOutdated(t *testing.T) {
	// Unknown components are not outdated, so the gate must not trip.
	path := writeLocalCatalog(t)

	out := filepath.Join(filepath.Dir(path), "out")
	err := runCLI(t, "check", "--catalog", path, "--fail-on-outdated", "--format", "json", "--output", out)
	if err != nil {
		t.Fatalf("check --fail-on-outdated failed: %v", err)
	}
}

func TestCheckCommandMissingCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-catalog.yaml")

	err := runCLI(t, "check", "--catalog", path)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "failed to load catalog") {
		t.Errorf("error = %q, expected it to mention the catalog", err)
	}
}
