/*
Copyright © 2026 Fineswap
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/fineswap/vertag/pkg/version"
)

var ignorePatchFlag = &cli.BoolFlag{
	Name:  "ignore-patch",
	Usage: "compare on major.minor only, treating patch-level differences as equal",
}

// comparisonDocument is the serializable outcome of comparing two versions.
type comparisonDocument struct {
	A       versionDocument `json:"a" yaml:"a"`
	B       versionDocument `json:"b" yaml:"b"`
	Newer   bool            `json:"newer" yaml:"newer"`
	Older   bool            `json:"older" yaml:"older"`
	Equal   bool            `json:"equal" yaml:"equal"`
	Compare int             `json:"compare" yaml:"compare"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two version strings under the same label",
		ArgsUsage: "LABEL VERSION_A VERSION_B",
		Description: `Compare VERSION_A against VERSION_B and report whether A is newer,
older, or equal. The label identifies the component and never
participates in the ordering.

With --ignore-patch the comparison covers major.minor only: versions
that differ solely in patch are reported as neither newer nor older.

Examples:

   vertag compare CUDA 12.3.1 12.2.0

   vertag compare containerd 2.0.2 2.0.4 --ignore-patch`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			ignorePatchFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 3 {
				return fmt.Errorf("expected LABEL, VERSION_A, and VERSION_B arguments, got %d", cmd.Args().Len())
			}

			label := cmd.Args().Get(0)

			a, err := version.Parse(label, cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", cmd.Args().Get(1), err)
			}
			b, err := version.Parse(label, cmd.Args().Get(2))
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", cmd.Args().Get(2), err)
			}

			doc := comparisonDocument{
				A: newVersionDocument(a),
				B: newVersionDocument(b),
			}
			if cmd.Bool("ignore-patch") {
				doc.Newer = a.IsNewerThanShort(b.Major(), b.Minor())
				doc.Older = a.IsOlderThanShort(b.Major(), b.Minor())
			} else {
				doc.Newer = a.IsNewerThan(b)
				doc.Older = a.IsOlderThan(b)
			}
			doc.Equal = !doc.Newer && !doc.Older
			switch {
			case doc.Newer:
				doc.Compare = 1
			case doc.Older:
				doc.Compare = -1
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(w)

			return w.Serialize(ctx, doc)
		},
	}
}
