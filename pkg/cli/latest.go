/*
Copyright © 2026 Fineswap
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

var labelFlag = &cli.StringFlag{
	Name:  "label",
	Usage: "version label to attach, defaults to the repository name",
}

func latestCmd() *cli.Command {
	return &cli.Command{
		Name:      "latest",
		Usage:     "Resolve the newest published version of a GitHub repository",
		ArgsUsage: "OWNER/REPO",
		Description: `Resolve the newest published version of the given repository. The
latest release is preferred. When the repository publishes no releases,
or the release tag is not a semantic version, the tag list is scanned
instead.

Unauthenticated requests are subject to low GitHub API quotas; supply a
token with --token or GITHUB_TOKEN for anything beyond casual use.

Examples:

   vertag latest NVIDIA/gpu-operator

   vertag latest containerd/containerd --label runtime --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			tokenFlag,
			labelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected a single OWNER/REPO argument, got %d", cmd.Args().Len())
			}

			owner, repo, found := strings.Cut(cmd.Args().Get(0), "/")
			if !found || owner == "" || repo == "" {
				return fmt.Errorf("invalid repository %q, expected OWNER/REPO", cmd.Args().Get(0))
			}

			label := cmd.String("label")
			if label == "" {
				label = repo
			}

			v, err := newSource(ctx, cmd).LatestVersion(ctx, owner, repo, label)
			if err != nil {
				return fmt.Errorf("failed to resolve latest version of %s/%s: %w", owner, repo, err)
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(w)

			return w.Serialize(ctx, newVersionDocument(v))
		},
	}
}
