// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/forge/cmd/exec"
	"github.com/matt-FFFFFF/forge/cmd/run"
	"github.com/matt-FFFFFF/forge/cmd/version"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
		exec.ExecCmd,
		version.VersionCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "forge",
	Description: `Forge is a small build-automation helper. It shells out to build
commands (such as a C compiler), captures their exit status and output, and
reports the outcome with colored, leveled log lines that can also be appended
to a plain-text log file.

Build steps are defined in a YAML manifest (forge.yaml by default) and run
serially; one-off commands can be run directly with "forge exec".`,
	Usage:     "forge run [step...]",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
