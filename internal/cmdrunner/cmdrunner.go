// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/matt-FFFFFF/forge/internal/buildlog"
	"github.com/matt-FFFFFF/forge/internal/ctxlog"
)

var (
	// ErrCommandFailed is returned when exit-code checking is requested and the command exits non-zero.
	ErrCommandFailed = errors.New("command exited with non-zero exit code")
	// ErrCommandNotFound is returned when the executable cannot be located in the system PATH.
	ErrCommandNotFound = errors.New("command not found")
	// ErrCommandStart is returned when the command cannot be started for any other reason.
	ErrCommandStart = errors.New("could not start command")
	// ErrCommandInterrupted is returned when the command is killed because the context was cancelled.
	ErrCommandInterrupted = errors.New("command interrupted")
)

// Result is the outcome of a single command invocation.
type Result struct {
	ExitCode int    // Exit code of the command
	StdOut   []byte // Captured standard output
	StdErr   []byte // Captured standard error
}

// Command is a base executable name plus an ordered list of flag tokens.
// The tokens are joined with single spaces into one shell-interpreted string
// at execution time, so token boundaries are not preserved; the caller is
// responsible for shell-safety.
type Command struct {
	Base  string            // The base executable name (e.g. "cc").
	Cwd   string            // Optional working directory for the command.
	Env   map[string]string // Additional environment variables for the command.
	flags []string
	log   *buildlog.Logger
}

// New creates a Command for the given base executable.
// If logger is nil a default all-severity console logger is used.
func New(base string, logger *buildlog.Logger) *Command {
	if logger == nil {
		logger = buildlog.New()
	}

	return &Command{
		Base: base,
		log:  logger,
	}
}

// AddFlags appends flag tokens in order and returns the receiver for chaining.
// Two calls are equivalent to one call with the concatenated list.
func (c *Command) AddFlags(flags ...string) *Command {
	c.flags = append(c.flags, flags...)
	return c
}

// String returns the full shell-interpreted command line: the base command
// and flags joined with single spaces in the order added.
func (c *Command) String() string {
	return strings.Join(append([]string{c.Base}, c.flags...), " ")
}

// Run executes the command line as a blocking subprocess, capturing stdout
// and stderr. A non-zero exit code is logged as a warning but is not an error.
// If the context is cancelled while the command runs, the child is killed and
// ErrCommandInterrupted is returned alongside the captured Result.
func (c *Command) Run(ctx context.Context) (*Result, error) {
	return c.run(ctx, false)
}

// RunChecked is Run with strict exit-code checking: a non-zero exit code
// yields ErrCommandFailed after the outcome has been logged. The Result is
// returned alongside the error.
func (c *Command) RunChecked(ctx context.Context) (*Result, error) {
	return c.run(ctx, true)
}

func (c *Command) run(ctx context.Context, checkExitCode bool) (*Result, error) {
	full := c.String()
	c.log.Infof("Running command: '%s'...", full)

	// A bare executable name must resolve in PATH before the shell is
	// involved, otherwise the shell would report exit code 127 instead of a
	// distinguishable error. The base may itself be a shell string, so only
	// its first field is the executable.
	if fields := strings.Fields(c.Base); len(fields) > 0 && !strings.ContainsAny(fields[0], `/\`) {
		if _, err := exec.LookPath(fields[0]); err != nil {
			c.log.Errorf("Command '%s' not found. Please ensure it is in your PATH.", c.Base)
			return nil, errors.Join(ErrCommandNotFound, err)
		}
	}

	shell := defaultShell(ctx)
	ctxlog.Debug(ctx, "running command", "shell", shell, "commandLine", full, "cwd", c.Cwd)

	cmd := exec.CommandContext(ctx, shell, commandSwitch(), full)
	cmd.Dir = c.Cwd

	if len(c.Env) > 0 {
		env := os.Environ()
		for k, v := range c.Env {
			env = append(env, fmt.Sprintf("%s=%s", k, v))
		}

		cmd.Env = env
	}

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := &Result{
		StdOut: stdout.Bytes(),
		StdErr: stderr.Bytes(),
	}

	var (
		exitErr     *exec.ExitError
		interrupted bool
	)

	switch {
	case err == nil:
		c.log.Successf("Command '%s' completed successfully.", c.Base)
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()

		// The child was killed because the context was cancelled, so the
		// exit code does not describe the command's own outcome.
		if ctx.Err() != nil {
			interrupted = true

			c.log.Errorf("Command '%s' was interrupted: %v.", c.Base, ctx.Err())

			break
		}

		c.log.Warningf("Command '%s' exited with code %d.", c.Base, res.ExitCode)
	default:
		c.log.Errorf("An unexpected error occurred while running command '%s': %v", c.Base, err)
		return nil, errors.Join(ErrCommandStart, err)
	}

	if len(res.StdOut) > 0 {
		c.log.Infof("--- STDOUT ---\n%s", strings.TrimSpace(string(res.StdOut)))
	}

	if len(res.StdErr) > 0 {
		c.log.Errorf("--- STDERR ---\n%s", strings.TrimSpace(string(res.StdErr)))
	}

	if interrupted {
		return res, errors.Join(ErrCommandInterrupted, ctx.Err())
	}

	if checkExitCode && res.ExitCode != 0 {
		c.log.Errorf("Command '%s' failed with exit code %d.", c.Base, res.ExitCode)
		return res, fmt.Errorf("%w: %q exited with code %d", ErrCommandFailed, c.Base, res.ExitCode)
	}

	return res, nil
}
