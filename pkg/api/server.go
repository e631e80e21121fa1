package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/fineswap/vertag/pkg/catalog"
	"github.com/fineswap/vertag/pkg/checker"
	"github.com/fineswap/vertag/pkg/logging"
	"github.com/fineswap/vertag/pkg/server"
	"github.com/fineswap/vertag/pkg/upstream"
)

const (
	name           = "vertagd"
	versionDefault = "dev"

	// envCatalog points the daemon at a catalog file. Empty means the
	// embedded default catalog.
	envCatalog = "VERTAG_CATALOG"

	// envCheckInterval overrides the catalog refresh interval using Go
	// duration syntax, e.g. "30m".
	envCheckInterval = "VERTAG_CHECK_INTERVAL"

	// envGitHubToken carries an optional GitHub API token for higher
	// rate limits and private repositories.
	envGitHubToken = "GITHUB_TOKEN"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/fineswap/vertag/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the version daemon and blocks until shutdown.
// It loads the catalog, wires the watcher and its HTTP handlers into the
// server, and handles graceful shutdown. Returns an error if the server
// fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cat, err := catalog.Load(ctx, os.Getenv(envCatalog))
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		return err
	}

	source := upstream.NewGitHubWithToken(ctx, os.Getenv(envGitHubToken))
	chk := checker.New(source, version)
	w := checker.NewWatcher(chk, cat, checkInterval())

	r := map[string]http.HandlerFunc{
		"/v1/versions": w.HandleVersions,
		"/v1/catalog":  w.HandleCatalog,
	}

	// Create and run server with the watcher as a background worker
	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
		server.WithWorker("watcher", w.Run),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// checkInterval reads the refresh interval override from the environment.
// Zero means the watcher default.
func checkInterval() time.Duration {
	raw := os.Getenv(envCheckInterval)
	if raw == "" {
		return 0
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("invalid check interval, using default",
			"value", raw,
			"error", err.Error())
		return 0
	}

	return d
}
