// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/clikit/internal/style"
)

var (
	// ErrMarshalAttrs is returned when record attributes cannot be marshaled.
	ErrMarshalAttrs = errors.New("error marshaling log attributes")
	// ErrWrite is returned when the handler cannot write to its destination.
	ErrWrite = errors.New("error writing log output")
)

var jsonFormatter = colorjson.NewFormatter()

func init() {
	jsonFormatter.Indent = 2
	jsonFormatter.DisabledColor = !style.Enabled()
}

// Pretty is a slog.Handler that renders records as a single colorized
// console line: timestamp, level, message, then attributes as JSON.
type Pretty struct {
	inner   slog.Handler
	replace func([]string, slog.Attr) slog.Attr
	buf     *bytes.Buffer
	mu      *sync.Mutex
	writer  io.Writer
}

// NewPretty creates a Pretty handler. A nil handlerOptions uses defaults.
func NewPretty(handlerOptions *slog.HandlerOptions, options ...Option) *Pretty {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	h := &Pretty{
		buf: buf,
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		replace: handlerOptions.ReplaceAttr,
		mu:      &sync.Mutex{},
	}

	for _, opt := range options {
		opt(h)
	}

	return h
}

// Option configures a Pretty handler.
type Option func(*Pretty)

// WithWriter sets the destination writer.
func WithWriter(w io.Writer) Option {
	return func(h *Pretty) {
		h.writer = w
	}
}

// Enabled implements slog.Handler.
func (h *Pretty) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// WithAttrs implements slog.Handler.
func (h *Pretty) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Pretty{inner: h.inner.WithAttrs(attrs), replace: h.replace, buf: h.buf, mu: h.mu, writer: h.writer}
}

// WithGroup implements slog.Handler.
func (h *Pretty) WithGroup(name string) slog.Handler {
	return &Pretty{inner: h.inner.WithGroup(name), replace: h.replace, buf: h.buf, mu: h.mu, writer: h.writer}
}

// Handle implements slog.Handler.
func (h *Pretty) Handle(ctx context.Context, r slog.Record) error {
	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrBytes []byte

	if len(attrs) > 0 {
		attrBytes, err = jsonFormatter.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttrs, err)
		}
	}

	out := bytes.Buffer{}
	out.WriteString(style.Muted(r.Time.Format(TimeFormat)))
	out.WriteString(" ")
	out.WriteString(levelString(r.Level))
	out.WriteString(" ")
	out.WriteString(style.Emphasis(r.Message))

	if len(attrBytes) > 0 {
		out.WriteString(" ")
		out.Write(attrBytes)
	}

	out.WriteString("\n")

	if _, err := h.writer.Write(out.Bytes()); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}

// computeAttrs runs the record through the inner JSON handler to obtain its
// attributes, including any WithAttrs/WithGroup state.
func (h *Pretty) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.mu.Lock()
	defer func() {
		h.buf.Reset()
		h.mu.Unlock()
	}()

	if err := h.inner.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("inner handler: %w", err)
	}

	var attrs map[string]any
	if err := json.Unmarshal(h.buf.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("unmarshal inner handler output: %w", err)
	}

	return attrs, nil
}

func levelString(level slog.Level) string {
	s := level.String() + ":"

	switch {
	case level <= slog.LevelDebug:
		return style.Apply(s, style.FgWhite)
	case level <= slog.LevelInfo:
		return style.Apply(s, style.FgCyan)
	case level < slog.LevelError:
		return style.Apply(s, style.FgYellow)
	default:
		return style.Apply(s, style.FgRed)
	}
}

// suppressDefaults drops the time, level and message keys from the inner
// JSON handler output; Handle renders those itself.
func suppressDefaults(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}
