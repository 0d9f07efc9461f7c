// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the command that executes manifest build steps.
package run

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/forge/internal/buildlog"
	"github.com/matt-FFFFFF/forge/internal/cmdrunner"
	"github.com/matt-FFFFFF/forge/internal/config"
	"github.com/matt-FFFFFF/forge/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag      = "file"
	keepGoingFlag = "keep-going"
	logFileFlag   = "log-file"
	logLevelFlag  = "log-level"
	cliExitStr    = ""
)

// RunCmd is the command that runs the build steps defined in a YAML manifest.
var RunCmd = &cli.Command{
	Name: "run",
	Description: `Run the build steps defined in a YAML manifest.
Steps are executed serially in manifest order. With step name arguments, only
the named steps are run, in the order given.

A step with "check: true" fails the run on a non-zero exit code. By default
the first failure stops the run; with --keep-going the remaining steps still
run and all failures are reported at the end.`,
	Usage:     "forge run [--file forge.yaml] [step...]",
	ArgsUsage: "[step...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      fileFlag,
			Aliases:   []string{"f"},
			Usage:     "Path of the YAML manifest to run",
			Value:     config.DefaultManifestName,
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.BoolFlag{
			Name:        keepGoingFlag,
			Aliases:     []string{"k"},
			Usage:       "Continue past failed steps and report all failures at the end",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.StringFlag{
			Name:      logFileFlag,
			Usage:     "Append plain-text log lines to this file, overriding the manifest",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringFlag{
			Name:     logLevelFlag,
			Usage:    "Minimum severity to display (debug, info, warning, error, success), overriding the manifest",
			OnlyOnce: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running run command")

	manifest, err := config.Load(cmd.String(fileFlag))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load manifest %s: %s", cmd.String(fileFlag), err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	steps, err := manifest.Select(cmd.Args().Slice())
	if err != nil {
		logger.Error(err.Error())
		return cli.Exit(cliExitStr, 1)
	}

	buildLogger, err := newBuildLogger(cmd, manifest)
	if err != nil {
		logger.Error(err.Error())
		return cli.Exit(cliExitStr, 1)
	}

	var errs *multierror.Error

	for _, step := range steps {
		logger.Debug("running step", "step", step.Name)

		if err := runStep(ctx, buildLogger, step); err != nil {
			stepErr := fmt.Errorf("step %q: %w", step.Name, err)

			if !cmd.Bool(keepGoingFlag) {
				return cli.Exit(stepErr.Error(), 1)
			}

			errs = multierror.Append(errs, stepErr)
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

func runStep(ctx context.Context, logger *buildlog.Logger, step config.StepDefinition) error {
	runner := cmdrunner.New(step.Command, logger).AddFlags(step.Flags...)
	runner.Cwd = step.WorkingDirectory
	runner.Env = step.Env

	if step.Check {
		_, err := runner.RunChecked(ctx)
		return err
	}

	_, err := runner.Run(ctx)

	return err
}

// newBuildLogger builds the run's logger from the manifest log block, with
// CLI flags taking precedence.
func newBuildLogger(cmd *cli.Command, manifest *config.Manifest) (*buildlog.Logger, error) {
	level := manifest.LogLevel()

	if s := cmd.String(logLevelFlag); s != "" {
		lvl, err := buildlog.ParseLevel(s)
		if err != nil {
			return nil, err
		}

		level = lvl
	}

	opts := []buildlog.Option{
		buildlog.WithMinLevel(level),
		buildlog.WithWriter(cmd.Writer),
	}

	file := manifest.Log.File
	if s := cmd.String(logFileFlag); s != "" {
		file = s
	}

	if file != "" {
		opts = append(opts, buildlog.WithFile(file))
	}

	return buildlog.New(opts...), nil
}
