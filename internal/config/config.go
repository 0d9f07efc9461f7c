// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config defines the YAML build manifest: a logging block and an
// ordered list of build steps, each a base command with flag tokens.
package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/forge/internal/buildlog"
	"github.com/spf13/afero"
)

// DefaultManifestName is the manifest file used when none is specified.
const DefaultManifestName = "forge.yaml"

var (
	// ErrReadManifest is returned when the manifest file cannot be read.
	ErrReadManifest = errors.New("failed to read manifest")
	// ErrParseManifest is returned when the manifest is not valid YAML.
	ErrParseManifest = errors.New("failed to parse manifest")
	// ErrInvalidManifest is returned when the manifest fails validation.
	ErrInvalidManifest = errors.New("invalid manifest")
	// ErrUnknownStep is returned when a requested step name is not in the manifest.
	ErrUnknownStep = errors.New("unknown step")
)

// Manifest is the root of the build manifest.
type Manifest struct {
	// Log configures the build logger for the whole run.
	Log LogDefinition `yaml:"log,omitempty"`
	// Steps are executed serially in manifest order.
	Steps []StepDefinition `yaml:"steps"`
}

// LogDefinition configures the build logger.
type LogDefinition struct {
	// Level is the minimum severity to display. Defaults to "debug".
	Level string `yaml:"level,omitempty"`
	// File is an optional path that receives plain-text log lines.
	File string `yaml:"file,omitempty"`
}

// StepDefinition is a single build step.
type StepDefinition struct {
	// Name is the descriptive name of the step.
	Name string `yaml:"name"`
	// Command is the base executable name, e.g. "cc".
	Command string `yaml:"command"`
	// Flags are joined with the command into a single shell-interpreted string.
	Flags []string `yaml:"flags,omitempty"`
	// Check makes a non-zero exit code fail the run.
	Check bool `yaml:"check,omitempty"`
	// WorkingDirectory is the directory the step runs in.
	WorkingDirectory string `yaml:"working_directory,omitempty"`
	// Env contains additional environment variables for the step.
	Env map[string]string `yaml:"env,omitempty"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadManifest, err)
	}

	return Parse(data)
}

// Parse parses and validates manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	m := new(Manifest)
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, errors.Join(ErrParseManifest, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks the manifest for structural problems.
// Errors name the offending step.
func (m *Manifest) Validate() error {
	if len(m.Steps) == 0 {
		return fmt.Errorf("%w: no steps defined", ErrInvalidManifest)
	}

	if m.Log.Level != "" {
		if _, err := buildlog.ParseLevel(m.Log.Level); err != nil {
			return fmt.Errorf("%w: log level: %w", ErrInvalidManifest, err)
		}
	}

	seen := make(map[string]struct{}, len(m.Steps))

	for i, s := range m.Steps {
		if s.Command == "" {
			return fmt.Errorf("%w: step %d (%q) has no command", ErrInvalidManifest, i, s.Name)
		}

		if s.Name == "" {
			continue
		}

		// Select resolves steps by name, so names must be unambiguous.
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("%w: duplicate step name %q", ErrInvalidManifest, s.Name)
		}

		seen[s.Name] = struct{}{}
	}

	return nil
}

// LogLevel returns the configured minimum severity, defaulting to LevelDebug.
// Validate has already rejected unparseable levels.
func (m *Manifest) LogLevel() buildlog.Level {
	if m.Log.Level == "" {
		return buildlog.LevelDebug
	}

	lvl, err := buildlog.ParseLevel(m.Log.Level)
	if err != nil {
		return buildlog.LevelDebug
	}

	return lvl
}

// Select returns the steps matching the given names, in the order the names
// were given. With no names it returns all steps in manifest order.
func (m *Manifest) Select(names []string) ([]StepDefinition, error) {
	if len(names) == 0 {
		return m.Steps, nil
	}

	byName := make(map[string]StepDefinition, len(m.Steps))
	for _, s := range m.Steps {
		byName[s.Name] = s
	}

	steps := make([]StepDefinition, 0, len(names))

	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStep, name)
		}

		steps = append(steps, s)
	}

	return steps, nil
}
