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

package upstream

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v33/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/fineswap/vertag/pkg/defaults"
	apperrors "github.com/fineswap/vertag/pkg/errors"
	"github.com/fineswap/vertag/pkg/version"
)

const (
	// requestsPerSecond caps outbound GitHub API calls. The API allows
	// bursts well above this, but sustained checks across a large catalog
	// must stay inside the hourly quota.
	requestsPerSecond = 2
	requestBurst      = 4

	// tagPageSize is the page size for tag listings.
	tagPageSize = 100

	// maxTagPages bounds the tag fallback scan. Repositories with more
	// tags than this return the best match from the newest pages.
	maxTagPages = 3
)

// Source resolves the latest published version of a component.
type Source interface {
	LatestVersion(ctx context.Context, owner, repo, label string) (version.Version, error)
}

// GitHub resolves component versions from GitHub releases and tags.
type GitHub struct {
	client  *github.Client
	limiter *rate.Limiter
}

// NewGitHub creates a GitHub source using the provided HTTP client.
// A nil client falls back to http.DefaultClient.
func NewGitHub(httpClient *http.Client) *GitHub {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &GitHub{
		client:  github.NewClient(httpClient),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// NewGitHubWithToken creates a GitHub source authenticated with a personal
// access token. An empty token yields an unauthenticated source, which is
// subject to much lower API quotas.
func NewGitHubWithToken(ctx context.Context, token string) *GitHub {
	if token == "" {
		return NewGitHub(nil)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})

	return NewGitHub(oauth2.NewClient(ctx, ts))
}

// LatestVersion returns the newest published version of owner/repo, labeled
// with the given label. It prefers the latest release and falls back to
// scanning tags when the repository publishes no releases or the release tag
// is not a semantic version. Tags that do not parse are skipped.
func (g *GitHub) LatestVersion(ctx context.Context, owner, repo, label string) (version.Version, error) {
	if owner == "" || repo == "" {
		return version.Version{}, apperrors.New(apperrors.ErrCodeInvalidRequest,
			"owner and repo are required")
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return version.Version{}, apperrors.Wrap(apperrors.ErrCodeTimeout,
			"aborted while waiting for request slot", err)
	}

	start := time.Now()
	defer func() {
		upstreamLookupDuration.Observe(time.Since(start).Seconds())
	}()

	upstreamLookups.Inc()

	relCtx, cancel := context.WithTimeout(ctx, defaults.UpstreamTimeout)
	defer cancel()

	release, resp, err := g.client.Repositories.GetLatestRelease(relCtx, owner, repo)
	switch {
	case err == nil:
		v, parseErr := version.Parse(label, strings.TrimPrefix(release.GetTagName(), "v"))
		if parseErr == nil {
			return v, nil
		}
		slog.Debug("release tag is not a semantic version, scanning tags",
			"repo", owner+"/"+repo,
			"tag", release.GetTagName())
	case resp != nil && resp.StatusCode == http.StatusNotFound:
		slog.Debug("repository has no releases, scanning tags",
			"repo", owner+"/"+repo)
	default:
		upstreamFailures.Inc()
		return version.Version{}, apperrors.WrapWithContext(apperrors.ErrCodeUpstream,
			"failed to resolve latest release", err, map[string]any{
				"repo": owner + "/" + repo,
			})
	}

	return g.latestFromTags(ctx, owner, repo, label)
}

// latestFromTags scans the repository tag list and returns the newest
// parseable version.
func (g *GitHub) latestFromTags(ctx context.Context, owner, repo, label string) (version.Version, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.UpstreamListTimeout)
	defer cancel()

	upstreamTagFallbacks.Inc()

	var (
		best  version.Version
		found bool
	)

	opts := &github.ListOptions{PerPage: tagPageSize}
	for page := 0; page < maxTagPages; page++ {
		tags, resp, err := g.client.Repositories.ListTags(ctx, owner, repo, opts)
		if err != nil {
			upstreamFailures.Inc()
			return version.Version{}, apperrors.WrapWithContext(apperrors.ErrCodeUpstream,
				"failed to list repository tags", err, map[string]any{
					"repo": owner + "/" + repo,
				})
		}

		for _, tag := range tags {
			v, parseErr := version.Parse(label, strings.TrimPrefix(tag.GetName(), "v"))
			if parseErr != nil {
				continue
			}
			if !found || v.IsNewerThan(best) {
				best = v
				found = true
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if !found {
		return version.Version{}, apperrors.NewWithContext(apperrors.ErrCodeNotFound,
			"no semantic version tags found", map[string]any{
				"repo": owner + "/" + repo,
			})
	}

	return best, nil
}
