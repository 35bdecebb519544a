// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package console is the output-printing collaborator for the library.
// Production code writes to the process's standard streams; tests substitute
// a capturing implementation to assert on emitted lines.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Printer emits human-readable lines. It is the single seam through which
// the command core talks to the user's terminal.
type Printer interface {
	// PrintLine writes s followed by a newline to standard output.
	PrintLine(s string)
	// PrintErrorLine writes s followed by a newline to standard error.
	PrintErrorLine(s string)
}

// Standard writes to os.Stdout and os.Stderr.
type Standard struct{}

var _ Printer = (*Standard)(nil)

// PrintLine implements Printer.
func (Standard) PrintLine(s string) {
	fmt.Fprintln(os.Stdout, s)
}

// PrintErrorLine implements Printer.
func (Standard) PrintErrorLine(s string) {
	fmt.Fprintln(os.Stderr, s)
}

// Writer writes both streams to the supplied writers. A nil writer
// discards that stream.
type Writer struct {
	Out io.Writer
	Err io.Writer
}

var _ Printer = (*Writer)(nil)

// PrintLine implements Printer.
func (w *Writer) PrintLine(s string) {
	if w.Out == nil {
		return
	}

	fmt.Fprintln(w.Out, s)
}

// PrintErrorLine implements Printer.
func (w *Writer) PrintErrorLine(s string) {
	if w.Err == nil {
		return
	}

	fmt.Fprintln(w.Err, s)
}

// Capture records printed lines in memory. Safe for concurrent use.
type Capture struct {
	mu       sync.Mutex
	lines    []string
	errLines []string
}

var _ Printer = (*Capture)(nil)

// PrintLine implements Printer.
func (c *Capture) PrintLine(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = append(c.lines, s)
}

// PrintErrorLine implements Printer.
func (c *Capture) PrintErrorLine(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errLines = append(c.errLines, s)
}

// Lines returns a copy of the captured standard output lines.
func (c *Capture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.lines))
	copy(out, c.lines)

	return out
}

// ErrorLines returns a copy of the captured standard error lines.
func (c *Capture) ErrorLines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.errLines))
	copy(out, c.errLines)

	return out
}
