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

// versionDocument is the serializable rendering of a parsed version.
type versionDocument struct {
	Label   string `json:"label" yaml:"label"`
	Major   int    `json:"major" yaml:"major"`
	Minor   int    `json:"minor" yaml:"minor"`
	Patch   int    `json:"patch" yaml:"patch"`
	Short   string `json:"short" yaml:"short"`
	Full    string `json:"full" yaml:"full"`
	Display string `json:"display" yaml:"display"`
	Hash    string `json:"hash" yaml:"hash"`
}

func newVersionDocument(v version.Version) versionDocument {
	return versionDocument{
		Label:   v.Label(),
		Major:   v.Major(),
		Minor:   v.Minor(),
		Patch:   v.Patch(),
		Short:   v.Short(),
		Full:    v.Full(),
		Display: v.String(),
		Hash:    fmt.Sprintf("%016x", v.Hash()),
	}
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a version string into its labeled parts",
		ArgsUsage: "LABEL VERSION",
		Description: `Parse a version string under the given label and print the individual
components along with the derived renderings.

The version text is split on dots into major, minor, and patch, so
"12", "12.3", and "12.3.1" are all accepted, with missing segments
defaulting to zero. Each segment must be a base-10 integer.

Examples:

   vertag parse CUDA 12.3.1

   vertag parse driver 550.54 --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected LABEL and VERSION arguments, got %d", cmd.Args().Len())
			}

			v, err := version.Parse(cmd.Args().Get(0), cmd.Args().Get(1))
			if err != nil {
				return err
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
