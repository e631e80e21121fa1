/*
Copyright © 2026 Fineswap
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/fineswap/vertag/pkg/catalog"
	"github.com/fineswap/vertag/pkg/logging"
	"github.com/fineswap/vertag/pkg/serializer"
	"github.com/fineswap/vertag/pkg/upstream"
)

const (
	name           = "vertag"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	// e.g., -X "github.com/fineswap/vertag/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags reused across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}

	catalogFlag = &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"f"},
		Sources: cli.EnvVars("VERTAG_CATALOG"),
		Usage:   "Path to a catalog file (default: embedded catalog)",
	}

	tokenFlag = &cli.StringFlag{
		Name:    "token",
		Sources: cli.EnvVars("GITHUB_TOKEN"),
		Usage:   "GitHub API token for higher rate limits",
	}

	plainHTTPFlag = &cli.BoolFlag{
		Name:  "plain-http",
		Usage: "Use HTTP instead of HTTPS for the registry (for local development)",
	}

	insecureTLSFlag = &cli.BoolFlag{
		Name:  "insecure-tls",
		Usage: "Skip TLS certificate verification for the registry",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging",
	}
)

// New builds the root command with all subcommands attached.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Track labeled component versions against their upstream releases",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `vertag works with labeled semantic versions: a component label plus a
major.minor.patch triple, e.g. CUDA-12.3.1. It parses and compares
individual versions, and tracks whole catalogs of pinned components
against their upstream GitHub releases.

Results can be output in JSON, YAML, or table format.`,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			debugFlag,
		},
		Before: setup,
		Commands: []*cli.Command{
			parseCmd(),
			compareCmd(),
			latestCmd(),
			catalogCmd(),
			checkCmd(),
			pushCmd(),
			pullCmd(),
		},
	}
}

// Run executes the CLI with the given arguments, handling SIGINT/SIGTERM
// for graceful cancellation. This is called by main.main().
func Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return New().Run(ctx, args)
}

// setup configures slog after flag parsing so --debug takes effect before
// any command executes. Without --debug the level comes from LOG_LEVEL.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("debug") {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, "debug")
	} else {
		logging.SetDefaultStructuredLogger(name, version)
	}
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date)

	return ctx, nil
}

// parseOutputFormat parses and validates the output format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// newWriter builds the output writer from the format and output flags.
func newWriter(cmd *cli.Command) (*serializer.Writer, error) {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	return serializer.NewFileWriterOrStdout(format, cmd.String("output")), nil
}

// closeWriter flushes and closes a command's output writer.
func closeWriter(w *serializer.Writer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close output writer", "error", err)
	}
}

// loadCatalog loads the catalog named by the catalog flag, falling back to
// the embedded default.
func loadCatalog(ctx context.Context, cmd *cli.Command) (*catalog.Catalog, error) {
	cat, err := catalog.Load(ctx, cmd.String("catalog"))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// newSource builds the upstream release source from the token flag.
func newSource(ctx context.Context, cmd *cli.Command) *upstream.GitHub {
	return upstream.NewGitHubWithToken(ctx, cmd.String("token"))
}
