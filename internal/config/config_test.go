// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-FFFFFF/forge/internal/buildlog"
)

const validManifest = `
log:
  level: info
  file: build.log
steps:
  - name: compile
    command: cc
    flags:
      - main.c
      - -o
      - main
      - -Wall
      - -O3
    check: true
  - name: run
    command: ./main
    working_directory: .
    env:
      EXAMPLE: "1"
`

func TestParseValidManifest(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	require.NoError(t, err)

	assert.Equal(t, "build.log", m.Log.File)
	assert.Equal(t, buildlog.LevelInfo, m.LogLevel())

	require.Len(t, m.Steps, 2)
	assert.Equal(t, "compile", m.Steps[0].Name)
	assert.Equal(t, "cc", m.Steps[0].Command)
	assert.Equal(t, []string{"main.c", "-o", "main", "-Wall", "-O3"}, m.Steps[0].Flags)
	assert.True(t, m.Steps[0].Check)
	assert.Equal(t, map[string]string{"EXAMPLE": "1"}, m.Steps[1].Env)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "not yaml",
			yaml:    "steps: [",
			wantErr: ErrParseManifest,
		},
		{
			name:    "no steps",
			yaml:    "log:\n  level: debug\n",
			wantErr: ErrInvalidManifest,
		},
		{
			name:    "step without command",
			yaml:    "steps:\n  - name: broken\n",
			wantErr: ErrInvalidManifest,
		},
		{
			name:    "duplicate step names",
			yaml:    "steps:\n  - name: build\n    command: cc\n  - name: build\n    command: cc\n",
			wantErr: ErrInvalidManifest,
		},
		{
			name:    "bad log level",
			yaml:    "log:\n  level: loud\nsteps:\n  - name: s\n    command: true\n",
			wantErr: ErrInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, m)
		})
	}
}

func TestLogLevelDefaultsToDebug(t *testing.T) {
	m, err := Parse([]byte("steps:\n  - name: s\n    command: true\n"))
	require.NoError(t, err)

	assert.Equal(t, buildlog.LevelDebug, m.LogLevel())
}

func TestSelect(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	require.NoError(t, err)

	t.Run("no names returns all steps in order", func(t *testing.T) {
		steps, err := m.Select(nil)
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, "compile", steps[0].Name)
		assert.Equal(t, "run", steps[1].Name)
	})

	t.Run("names returned in requested order", func(t *testing.T) {
		steps, err := m.Select([]string{"run", "compile"})
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, "run", steps[0].Name)
		assert.Equal(t, "compile", steps[1].Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := m.Select([]string{"deploy"})
		require.ErrorIs(t, err, ErrUnknownStep)
	})
}

func TestLoad(t *testing.T) {
	stub := gostub.Stub(&FsFactory, func() afero.Fs {
		fs := afero.NewMemMapFs()
		_ = afero.WriteFile(fs, DefaultManifestName, []byte(validManifest), 0o644)

		return fs
	})
	defer stub.Reset()

	m, err := Load(DefaultManifestName)
	require.NoError(t, err)
	assert.Len(t, m.Steps, 2)

	_, err = Load("missing.yaml")
	require.ErrorIs(t, err, ErrReadManifest)
}
