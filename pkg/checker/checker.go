package checker

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fineswap/vertag/pkg/catalog"
	"github.com/fineswap/vertag/pkg/defaults"
	apperrors "github.com/fineswap/vertag/pkg/errors"
	"github.com/fineswap/vertag/pkg/header"
	"github.com/fineswap/vertag/pkg/version"
)

// maxConcurrentChecks bounds the upstream fan-out so a large catalog does
// not burn through the release source's rate limit in one burst.
const maxConcurrentChecks = 4

// State describes a pinned version relative to the latest upstream release.
type State string

const (
	// StateCurrent means the pinned version matches the latest release.
	StateCurrent State = "current"

	// StateOlder means a newer version is available upstream.
	StateOlder State = "older"

	// StateNewer means the pinned version is ahead of the latest release.
	StateNewer State = "newer"

	// StateUnknown means the pinned version could not be compared.
	StateUnknown State = "unknown"
)

// Result is the check outcome for a single component.
type Result struct {
	Name    string `json:"name" yaml:"name"`
	Display string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Pinned  string `json:"pinned,omitempty" yaml:"pinned,omitempty"`
	Latest  string `json:"latest,omitempty" yaml:"latest,omitempty"`
	State   State  `json:"state" yaml:"state"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary aggregates component states across a report.
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Current int `json:"current" yaml:"current"`
	Older   int `json:"older" yaml:"older"`
	Newer   int `json:"newer" yaml:"newer"`
	Unknown int `json:"unknown" yaml:"unknown"`
}

// Report is the aggregate outcome of checking a catalog.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Summary    Summary  `json:"summary" yaml:"summary"`
	Components []Result `json:"components" yaml:"components"`
}

// HasUpdates reports whether any component is older than its latest release.
func (r *Report) HasUpdates() bool {
	return r.Summary.Older > 0
}

// Checker compares a catalog's pinned versions against their release sources.
type Checker struct {
	// Source resolves latest component versions. Required.
	Source Source

	// Version stamps generated report headers. Optional.
	Version string
}

// Source resolves the latest published version of a component.
// *upstream.GitHub satisfies this.
type Source interface {
	LatestVersion(ctx context.Context, owner, repo, label string) (version.Version, error)
}

// New creates a Checker backed by the given release source.
func New(source Source, buildVersion string) *Checker {
	return &Checker{
		Source:  source,
		Version: buildVersion,
	}
}

// Check resolves the latest version of every catalog component and classifies
// each pinned version as current, older, newer, or unknown. Lookups run
// concurrently with a bounded fan-out. Individual lookup failures degrade the
// component to the unknown state instead of failing the whole check; only
// context cancellation aborts it.
func (c *Checker) Check(ctx context.Context, cat *catalog.Catalog) (*Report, error) {
	if c.Source == nil {
		return nil, apperrors.New(apperrors.ErrCodeInternal, "checker has no release source")
	}
	if cat == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "catalog is required")
	}

	slog.Debug("starting catalog check", "components", len(cat.Components))

	start := time.Now()
	defer func() {
		checkDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, defaults.CheckTimeout)
	defer cancel()

	components := cat.List()
	results := make([]Result, len(components))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)

	for i, comp := range components {
		// Capture loop variables for goroutine
		i, comp := i, comp

		g.Go(func() error {
			results[i] = c.checkComponent(gctx, comp)
			return gctx.Err()
		})
	}

	// Per-component failures surface through the unknown state, so Wait
	// only returns an error when the context is gone.
	if err := g.Wait(); err != nil {
		checkTotal.WithLabelValues("error").Inc()
		return nil, apperrors.Wrap(apperrors.ErrCodeTimeout, "catalog check aborted", err)
	}

	report := &Report{Components: results}
	report.Init(header.KindVersionReport, catalog.FullAPIVersion, c.Version)

	for _, res := range results {
		report.Summary.Total++
		switch res.State {
		case StateCurrent:
			report.Summary.Current++
		case StateOlder:
			report.Summary.Older++
		case StateNewer:
			report.Summary.Newer++
		default:
			report.Summary.Unknown++
		}
		checkComponentTotal.WithLabelValues(string(res.State)).Inc()
	}

	checkTotal.WithLabelValues("success").Inc()
	checkOutdatedCount.Set(float64(report.Summary.Older))

	slog.Debug("catalog check complete",
		"total", report.Summary.Total,
		"older", report.Summary.Older,
		"unknown", report.Summary.Unknown)

	return report, nil
}

// checkComponent resolves one component against its release source.
func (c *Checker) checkComponent(ctx context.Context, comp catalog.Component) Result {
	ctx, cancel := context.WithTimeout(ctx, defaults.CheckComponentTimeout)
	defer cancel()

	res := Result{
		Name:    comp.Name,
		Display: catalog.DisplayName(comp.Name),
		State:   StateUnknown,
	}

	pinned, err := comp.Resolve()
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Pinned = pinned.Full()

	owner, repo, err := comp.OwnerRepo()
	if err != nil {
		res.Error = err.Error()
		return res
	}

	latest, err := c.Source.LatestVersion(ctx, owner, repo, comp.VersionLabel())
	if err != nil {
		slog.Warn("upstream lookup failed",
			"component", comp.Name,
			"error", err.Error())
		res.Error = err.Error()
		return res
	}
	res.Latest = latest.Full()

	switch {
	case pinned.IsOlderThan(latest):
		res.State = StateOlder
	case pinned.IsNewerThan(latest):
		res.State = StateNewer
	default:
		res.State = StateCurrent
	}

	return res
}
