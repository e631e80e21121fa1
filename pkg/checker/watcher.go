package checker

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fineswap/vertag/pkg/catalog"
	"github.com/fineswap/vertag/pkg/defaults"
	apperrors "github.com/fineswap/vertag/pkg/errors"
	"github.com/fineswap/vertag/pkg/serializer"
	"github.com/fineswap/vertag/pkg/server"
)

// Watcher keeps a version report fresh by re-checking the catalog on a
// fixed interval, and serves the cached report over HTTP. It satisfies
// the server worker contract: Run returns nil when the context ends.
type Watcher struct {
	checker  *Checker
	catalog  *catalog.Catalog
	interval time.Duration

	mu     sync.RWMutex
	report *Report
}

// NewWatcher creates a watcher over the given catalog. A non-positive
// interval falls back to the default refresh interval.
func NewWatcher(chk *Checker, cat *catalog.Catalog, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = defaults.CheckRefreshInterval
	}

	return &Watcher{
		checker:  chk,
		catalog:  cat,
		interval: interval,
	}
}

// Run checks the catalog immediately and then on every tick until ctx is
// canceled. A failed refresh keeps the previous report.
func (wt *Watcher) Run(ctx context.Context) error {
	slog.Info("watcher starting",
		"interval", wt.interval.String(),
		"components", len(wt.catalog.Components))

	wt.refresh(ctx)

	ticker := time.NewTicker(wt.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("watcher stopping")
			return nil
		case <-ticker.C:
			wt.refresh(ctx)
		}
	}
}

// Latest returns the most recent report, or nil when no check has
// completed yet.
func (wt *Watcher) Latest() *Report {
	wt.mu.RLock()
	defer wt.mu.RUnlock()
	return wt.report
}

// refresh runs one catalog check and swaps in the new report on success.
func (wt *Watcher) refresh(ctx context.Context) {
	report, err := wt.checker.Check(ctx, wt.catalog)
	if err != nil {
		watcherRefreshTotal.WithLabelValues("error").Inc()
		slog.Error("catalog refresh failed", "error", err.Error())
		return
	}

	wt.store(report)

	watcherRefreshTotal.WithLabelValues("success").Inc()
	watcherLastRefresh.SetToCurrentTime()

	slog.Info("catalog refreshed",
		"total", report.Summary.Total,
		"older", report.Summary.Older,
		"unknown", report.Summary.Unknown)
}

func (wt *Watcher) store(report *Report) {
	wt.mu.Lock()
	defer wt.mu.Unlock()
	wt.report = report
}

// HandleVersions serves the cached version report. When no scheduled
// check has completed yet the handler runs one on demand, bounded by its
// own timeout, so the endpoint is usable right after startup.
func (wt *Watcher) HandleVersions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	report := wt.Latest()
	if report == nil {
		ctx, cancel := context.WithTimeout(r.Context(), defaults.VersionsHandlerTimeout)
		defer cancel()

		fresh, err := wt.checker.Check(ctx, wt.catalog)
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Version report unavailable", nil)
			return
		}

		wt.store(fresh)
		report = fresh
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.ReportCacheTTL.Seconds())))

	serializer.RespondJSON(w, http.StatusOK, report)
}

// HandleCatalog serves the catalog the watcher checks against.
func (wt *Watcher) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.ReportCacheTTL.Seconds())))

	serializer.RespondJSON(w, http.StatusOK, wt.catalog)
}
