/*
Copyright © 2026 Fineswap
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Inspect version catalogs",
		Commands: []*cli.Command{
			catalogListCmd(),
			catalogGetCmd(),
		},
	}
}

func catalogListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print the catalog with all of its pinned components",
		Description: `Print the full catalog. Without --catalog the embedded default catalog
is used.

Examples:

   vertag catalog list

   vertag catalog list --catalog ./my-stack.yaml --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			catalogFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(w)

			return w.Serialize(ctx, cat)
		},
	}
}

func catalogGetCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print a single catalog component",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			catalogFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected a single NAME argument, got %d", cmd.Args().Len())
			}

			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			comp, err := cat.Get(cmd.Args().Get(0))
			if err != nil {
				return err
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(w)

			return w.Serialize(ctx, comp)
		},
	}
}
