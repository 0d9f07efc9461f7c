// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package exec implements the command that runs a single one-off build command.
package exec

import (
	"context"

	"github.com/matt-FFFFFF/forge/internal/buildlog"
	"github.com/matt-FFFFFF/forge/internal/cmdrunner"
	"github.com/matt-FFFFFF/forge/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	checkFlag    = "check"
	logFileFlag  = "log-file"
	logLevelFlag = "log-level"
	cliExitStr   = ""
)

// ExecCmd is the command that runs a single command through the build runner.
var ExecCmd = &cli.Command{
	Name: "exec",
	Description: `Run a single command through the build runner.
The first argument is the base command; the remaining arguments are joined
with single spaces into one shell-interpreted command line, so shell syntax
in the arguments is passed through as-is.

With --check a non-zero exit code fails the invocation.`,
	Usage:     "forge exec [--check] -- cc main.c -o main",
	ArgsUsage: "COMMAND [FLAG...]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        checkFlag,
			Aliases:     []string{"c"},
			Usage:       "Fail on a non-zero exit code",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.StringFlag{
			Name:      logFileFlag,
			Usage:     "Append plain-text log lines to this file",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringFlag{
			Name:     logLevelFlag,
			Usage:    "Minimum severity to display (debug, info, warning, error, success)",
			Value:    "debug",
			OnlyOnce: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	args := cmd.Args().Slice()
	if len(args) == 0 {
		logger.Error("Please specify a command to run.")
		return cli.Exit(cliExitStr, 1)
	}

	level, err := buildlog.ParseLevel(cmd.String(logLevelFlag))
	if err != nil {
		logger.Error(err.Error())
		return cli.Exit(cliExitStr, 1)
	}

	opts := []buildlog.Option{
		buildlog.WithMinLevel(level),
		buildlog.WithWriter(cmd.Writer),
	}
	if f := cmd.String(logFileFlag); f != "" {
		opts = append(opts, buildlog.WithFile(f))
	}

	runner := cmdrunner.New(args[0], buildlog.New(opts...)).AddFlags(args[1:]...)

	if cmd.Bool(checkFlag) {
		_, err = runner.RunChecked(ctx)
	} else {
		_, err = runner.Run(ctx)
	}

	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}
