// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI control codes for terminal text formatting.
// Color output is disabled when the NO_COLOR environment variable is set,
// forced when FORCE_COLOR is set, and otherwise enabled only when stdout
// is a terminal.
package color
