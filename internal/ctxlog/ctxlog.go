// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type loggerKey struct{}

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

// LevelVar holds the active log level. It is initialized from the
// environment and may be changed at runtime (tests lower it to debug).
var LevelVar = &slog.LevelVar{}

// DefaultLogger is used when no logger is present in the context.
var DefaultLogger = slog.New(NewPretty(
	&slog.HandlerOptions{Level: LevelVar},
	WithWriter(os.Stderr),
))

func init() {
	LevelVar.Set(levelFromEnv())
}

// New returns a context carrying the given logger. A nil logger means
// DefaultLogger.
//
// The log level is read from an environment variable derived from the
// executable name: for an executable named "clikit" the variable is
// CLIKIT_LOG_LEVEL, with values DEBUG, INFO, WARN or ERROR. Anything else
// defaults to WARN.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or DefaultLogger if none is set.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Debug logs a debug message using the context's logger.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Info logs an info message using the context's logger.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Warn logs a warning message using the context's logger.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message using the context's logger.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

func levelFromEnv() slog.Level {
	exe, _ := os.Executable()
	exe = filepath.Base(exe)

	if ext := filepath.Ext(exe); ext == ".exe" {
		exe = exe[:len(exe)-len(ext)]
	}

	envName := strings.ToUpper(exe) + "_LOG_LEVEL"

	switch os.Getenv(envName) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
