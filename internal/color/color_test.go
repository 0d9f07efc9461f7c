// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColorCapable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, isColorCapable(), "Expected color output to be disabled")

	t.Setenv("FORCE_COLOR", "1")
	assert.False(t, isColorCapable(), "Expected color output to be disabled as NO_COLOR is still set")

	t.Setenv("NO_COLOR", "")
	assert.True(t, isColorCapable(), "Expected color output to be enabled as FORCE_COLOR is set and NO_COLOR is unset")
}

func TestControlString(t *testing.T) {
	tests := []struct {
		name  string
		codes []Code
		want  string
	}{
		{
			name:  "single code",
			codes: []Code{FgRed},
			want:  "\033[31m",
		},
		{
			name:  "multiple codes",
			codes: []Code{Bold, FgGreen},
			want:  "\033[1;32m",
		},
		{
			name:  "reset",
			codes: []Code{Reset},
			want:  "\033[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ControlString(tt.codes...))
		})
	}
}

func TestSprint(t *testing.T) {
	got := Sprint("hello", FgCyan)
	assert.Equal(t, "\033[36mhello\033[0m", got)
}

func TestColorizeDisabled(t *testing.T) {
	orig := enabled
	defer func() { enabled = orig }()

	enabled = false

	assert.Equal(t, "plain", Colorize("plain", FgRed), "Colorize should be a no-op when color is disabled")
}
