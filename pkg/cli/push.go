/*
Copyright © 2026 Fineswap
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/fineswap/vertag/pkg/defaults"
	"github.com/fineswap/vertag/pkg/registry"
	"github.com/fineswap/vertag/pkg/serializer"
)

// pushDocument is the serializable outcome of a catalog push.
type pushDocument struct {
	Reference string `json:"reference" yaml:"reference"`
	Digest    string `json:"digest" yaml:"digest"`
	Format    string `json:"format" yaml:"format"`
}

func pushCmd() *cli.Command {
	return &cli.Command{
		Name:      "push",
		Usage:     "Push a catalog to an OCI registry",
		ArgsUsage: "REFERENCE",
		Description: `Package the catalog as an OCI artifact and push it to a registry.
Without --catalog the embedded default catalog is pushed.

The --format flag selects the artifact payload encoding as well as the
result output; only json and yaml are valid payload encodings.

Registry credentials are taken from the Docker credential store, the
same one "docker login" writes.

Examples:

   vertag push ghcr.io/acme/my-stack:v1.0.0 --catalog ./my-stack.yaml

   vertag push localhost:5000/stack:latest --plain-http`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			catalogFlag,
			plainHTTPFlag,
			insecureTLSFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected a single REFERENCE argument, got %d", cmd.Args().Len())
			}

			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if format != serializer.FormatJSON && format != serializer.FormatYAML {
				return fmt.Errorf("unsupported payload format %q (supported values: %s, %s)",
					format, serializer.FormatJSON, serializer.FormatYAML)
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIPushTimeout)
			defer cancel()

			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			result, err := registry.Push(ctx, cat, registry.PushOptions{
				Reference:   cmd.Args().Get(0),
				Format:      format,
				PlainHTTP:   cmd.Bool("plain-http"),
				InsecureTLS: cmd.Bool("insecure-tls"),
			})
			if err != nil {
				return fmt.Errorf("failed to push catalog: %w", err)
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(w)

			return w.Serialize(ctx, pushDocument{
				Reference: result.Reference,
				Digest:    result.Digest,
				Format:    string(format),
			})
		},
	}
}
