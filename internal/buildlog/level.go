// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package buildlog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/forge/internal/color"
)

// Level is the severity of a build log message.
// The total order of severities determines both visibility filtering and
// console color selection.
type Level int

// Severities in ascending order.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelSuccess
)

// ErrUnknownLevel is returned when a severity name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown log level")

// String returns the upper-case severity name used in rendered log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelSuccess:
		return "SUCCESS"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel converts a severity name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARNING", "WARN":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "SUCCESS":
		return LevelSuccess, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// levelColor maps a severity to its console style.
// The mapping is total: unknown severities render with the neutral reset style.
func levelColor(l Level) color.Code {
	switch l {
	case LevelDebug:
		return color.FgCyan
	case LevelInfo:
		return color.FgGreen
	case LevelWarning:
		return color.FgYellow
	case LevelError:
		return color.FgRed
	case LevelSuccess:
		return color.FgHiGreen
	default:
		return color.Reset
	}
}
