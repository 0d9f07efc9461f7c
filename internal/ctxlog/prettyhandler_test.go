// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandlerWritesMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewPretty(&slog.HandlerOptions{
		Level: slog.LevelDebug,
	},
		WithDestinationWriter(buf),
	)

	logger := slog.New(handler)
	logger.Info("hello world", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "key")
	assert.Contains(t, out, "value")
}

func TestPrettyHandlerRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewPretty(&slog.HandlerOptions{
		Level: slog.LevelWarn,
	},
		WithDestinationWriter(buf),
	)

	require.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	require.True(t, handler.Enabled(context.Background(), slog.LevelError))

	logger := slog.New(handler)
	logger.Debug("should not appear")
	logger.Warn("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear")
}

func TestPrettyHandlerWithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewPretty(&slog.HandlerOptions{
		Level: slog.LevelDebug,
	},
		WithDestinationWriter(buf),
	)

	logger := slog.New(handler).With("component", "test")
	logger.Info("message")

	assert.Contains(t, buf.String(), "component")
}
