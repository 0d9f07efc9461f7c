// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package version implements the command that prints version information.
package version

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/forge"
	"github.com/urfave/cli/v3"
)

// VersionCmd is the command that prints the version and commit of the binary.
var VersionCmd = &cli.Command{
	Name:  "version",
	Usage: "Print the version of forge",
	Action: func(_ context.Context, cmd *cli.Command) error {
		fmt.Fprintf(cmd.Writer, "forge %s (%s)\n", forge.Version, forge.Commit)
		return nil
	},
}
