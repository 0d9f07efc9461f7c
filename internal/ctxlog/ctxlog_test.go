// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		logger *slog.Logger
	}{
		{
			name:   "with custom logger",
			logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
		},
		{
			name:   "with nil logger should use default",
			logger: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := New(context.Background(), tt.logger)
			got := Logger(ctx)

			if tt.logger == nil {
				assert.Same(t, DefaultLogger, got)
				return
			}

			assert.Same(t, tt.logger, got)
		})
	}
}

func TestLoggerWithoutContextValue(t *testing.T) {
	got := Logger(context.Background())
	assert.Same(t, DefaultLogger, got, "Logger should fall back to DefaultLogger")
}
