// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package buildlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matt-FFFFFF/forge/internal/color"
	"github.com/spf13/afero"
)

const (
	// timeFormat is the timestamp layout used in rendered log lines.
	timeFormat = "2006-01-02 15:04:05"

	logFilePerm = 0o644
)

// Logger renders leveled, colored build messages to a console writer and
// optionally appends the plain-text equivalent to a file.
//
// The file is opened, appended and closed per message. There is no rotation
// and no locking against concurrent writers.
type Logger struct {
	min      Level
	out      io.Writer
	fs       afero.Fs
	filePath string
	now      func() time.Time
}

// Option implements a functional options pattern for Logger.
type Option func(l *Logger)

// WithMinLevel sets the minimum severity a message must have to be emitted.
func WithMinLevel(min Level) Option {
	return func(l *Logger) {
		l.min = min
	}
}

// WithWriter sets the console destination. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithFile enables the file sink, appending plain log lines to path.
func WithFile(path string) Option {
	return func(l *Logger) {
		l.filePath = path
	}
}

// WithFs sets the filesystem used by the file sink. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(l *Logger) {
		l.fs = fs
	}
}

// withNow sets the clock, allowing tests to fix timestamps.
func withNow(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New creates a Logger. Without options it logs everything from LevelDebug
// upwards to stdout with no file sink.
func New(options ...Option) *Logger {
	l := &Logger{
		min: LevelDebug,
		out: os.Stdout,
		fs:  afero.NewOsFs(),
		now: time.Now,
	}

	for _, opt := range options {
		opt(l)
	}

	return l
}

// Log emits a message at the given severity. Messages below the configured
// minimum severity are discarded. The console line is colored according to
// the severity; the file line never contains ANSI escapes.
//
// A file sink failure is reported to the console at LevelError and never
// aborts execution.
func (l *Logger) Log(level Level, msg string) {
	if level < l.min {
		return
	}

	line := fmt.Sprintf("[%s %s]: %s", l.now().Format(timeFormat), level, msg)

	fmt.Fprintln(l.out, color.Colorize(line, levelColor(level))) //nolint:errcheck

	if l.filePath == "" {
		return
	}

	if err := l.appendToFile(line); err != nil {
		l.console().Logf(LevelError, "Failed to write to log file '%s': %v", l.filePath, err)
	}
}

// Logf emits a formatted message at the given severity.
func (l *Logger) Logf(level Level, format string, args ...any) {
	l.Log(level, fmt.Sprintf(format, args...))
}

// Debugf emits a formatted message at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) {
	l.Logf(LevelDebug, format, args...)
}

// Infof emits a formatted message at LevelInfo.
func (l *Logger) Infof(format string, args ...any) {
	l.Logf(LevelInfo, format, args...)
}

// Warningf emits a formatted message at LevelWarning.
func (l *Logger) Warningf(format string, args ...any) {
	l.Logf(LevelWarning, format, args...)
}

// Errorf emits a formatted message at LevelError.
func (l *Logger) Errorf(format string, args ...any) {
	l.Logf(LevelError, format, args...)
}

// Successf emits a formatted message at LevelSuccess.
func (l *Logger) Successf(format string, args ...any) {
	l.Logf(LevelSuccess, format, args...)
}

// console returns a copy of the logger without the file sink, used to report
// file sink failures without recursing into the failing sink.
func (l *Logger) console() *Logger {
	return &Logger{
		min: l.min,
		out: l.out,
		now: l.now,
	}
}

func (l *Logger) appendToFile(line string) error {
	f, err := l.fs.OpenFile(l.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		return err
	}

	_, werr := f.WriteString(line + "\n")

	return errors.Join(werr, f.Close())
}
