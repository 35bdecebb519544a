// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	ctx := New(context.Background(), logger)
	assert.Same(t, logger, Logger(ctx))
}

func TestLoggerFallsBackToDefault(t *testing.T) {
	assert.Same(t, DefaultLogger, Logger(context.Background()))

	ctx := New(context.Background(), nil)
	assert.Same(t, DefaultLogger, Logger(ctx))
}

func TestPrettyHandlerOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	lv := &slog.LevelVar{}
	lv.Set(slog.LevelDebug)

	logger := slog.New(NewPretty(&slog.HandlerOptions{Level: lv}, WithWriter(buf)))
	ctx := New(context.Background(), logger)

	Info(ctx, "hello", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "key")
	assert.Contains(t, out, "value")
	assert.True(t, strings.HasSuffix(out, "\n"), "expected trailing newline")
}

func TestPrettyHandlerLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	lv := &slog.LevelVar{}
	lv.Set(slog.LevelWarn)

	logger := slog.New(NewPretty(&slog.HandlerOptions{Level: lv}, WithWriter(buf)))
	ctx := New(context.Background(), logger)

	Debug(ctx, "nope")
	require.Empty(t, buf.String(), "debug record should be filtered at warn level")

	Warn(ctx, "yep")
	assert.Contains(t, buf.String(), "yep")
}

func TestPrettyHandlerWithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	lv := &slog.LevelVar{}
	lv.Set(slog.LevelDebug)

	logger := slog.New(NewPretty(&slog.HandlerOptions{Level: lv}, WithWriter(buf)))
	logger = logger.With("component", "cmdrun")

	logger.Info("spawn")

	out := buf.String()
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "cmdrun")
}
