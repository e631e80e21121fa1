/*
Copyright © 2026 Fineswap
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/fineswap/vertag/pkg/registry"
)

func pullCmd() *cli.Command {
	return &cli.Command{
		Name:      "pull",
		Usage:     "Pull a catalog from an OCI registry",
		ArgsUsage: "REFERENCE",
		Description: `Fetch a catalog artifact from a registry, validate it, and print the
decoded catalog. Use --output to write it to a file that later commands
can consume through --catalog.

Examples:

   vertag pull ghcr.io/acme/my-stack:v1.0.0

   vertag pull ghcr.io/acme/my-stack:v1.0.0 --output ./my-stack.yaml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			plainHTTPFlag,
			insecureTLSFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected a single REFERENCE argument, got %d", cmd.Args().Len())
			}

			result, err := registry.Pull(ctx, registry.PullOptions{
				Reference:   cmd.Args().Get(0),
				PlainHTTP:   cmd.Bool("plain-http"),
				InsecureTLS: cmd.Bool("insecure-tls"),
			})
			if err != nil {
				return fmt.Errorf("failed to pull catalog: %w", err)
			}

			artifactVersion := ""
			if result.ArtifactVersion.IsValid() {
				artifactVersion = result.ArtifactVersion.String()
			}
			slog.Debug("pulled catalog",
				"reference", cmd.Args().Get(0),
				"digest", result.Digest,
				"artifactVersion", artifactVersion)

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(w)

			return w.Serialize(ctx, result.Catalog)
		},
	}
}
