/*
Copyright © 2026 Fineswap
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/fineswap/vertag/pkg/checker"
	"github.com/fineswap/vertag/pkg/defaults"
)

var failOnOutdatedFlag = &cli.BoolFlag{
	Name:  "fail-on-outdated",
	Usage: "exit with an error when any component is behind its upstream",
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check catalog components against their upstream releases",
		Description: `Check every component in the catalog against its latest upstream
release and report which ones are current, older than upstream, or
ahead of it. Components whose latest version cannot be resolved are
reported as unknown.

With --fail-on-outdated the command exits non-zero when any component
is behind, which makes it usable as a CI gate.

Examples:

   vertag check

   vertag check --catalog ./my-stack.yaml --fail-on-outdated`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			catalogFlag,
			tokenFlag,
			failOnOutdatedFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, defaults.CLICheckTimeout)
			defer cancel()

			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			report, err := checker.New(newSource(ctx, cmd), version).Check(ctx, cat)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(w)

			if err := w.Serialize(ctx, report); err != nil {
				return err
			}

			if cmd.Bool("fail-on-outdated") && report.HasUpdates() {
				return fmt.Errorf("%d of %d components are outdated",
					report.Summary.Older, report.Summary.Total)
			}

			return nil
		},
	}
}
