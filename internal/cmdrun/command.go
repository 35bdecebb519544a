// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrun

import (
	"context"
	"io"
	"strings"

	"github.com/matt-FFFFFF/clikit/internal/console"
)

// Command is an immutable description of a single external program
// invocation. Build one with New or Parse, or receive one from Pipe.
//
// A Command is consumed exactly once by Execute: the input stream attached
// by pipe chaining is single-use, so re-executing a chained command is not
// supported.
type Command struct {
	// Args is the program name followed by its arguments. Never empty.
	Args []string
	// Executor is the strategy that runs this command. Nil means Capture.
	Executor Executor
	// Cwd is the working directory. Empty means the process's current
	// directory.
	Cwd string
	// Env is the child environment. Nil means inherit the caller's
	// environment; non-nil (even empty) means use exactly this set, with
	// no merging. Replacement rather than extension keeps caller secrets
	// out of child processes unless explicitly included.
	Env map[string]string
	// Printer receives diagnostic lines from the Dummy executor and from
	// pipeline short-circuits. Nil means the standard streams.
	Printer console.Printer

	// stdin is the previous pipeline stage's output, set only by Pipe.
	stdin io.Reader
}

// New creates a Command from pre-split arguments. A nil executor means
// Capture. Returns ErrInvalidCommand if parts is empty.
func New(executor Executor, parts ...string) (*Command, error) {
	if len(parts) == 0 {
		return nil, ErrInvalidCommand
	}

	return &Command{
		Args:     parts,
		Executor: executor,
	}, nil
}

// Parse creates a Command by splitting commandLine on whitespace and
// appending any extra arguments. The split is naive: consecutive whitespace
// collapses, and no shell quoting or escaping is interpreted. A pipe or
// redirect inside commandLine becomes a literal argument token; use Shell
// for shell-interpreted strings. Returns ErrInvalidCommand if no program
// token remains after splitting.
func Parse(executor Executor, commandLine string, extra ...string) (*Command, error) {
	parts := strings.Fields(commandLine)
	parts = append(parts, extra...)

	return New(executor, parts...)
}

// Quote wraps s in single quotes, escaping embedded single quotes, so that
// a multi-word value survives Parse's naive split when the command is later
// handed to a shell.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Execute runs the command with its executor and returns the outcome.
// It blocks until the child process exits. The context is used for logging
// only; there is no cancellation or timeout facility.
func (c *Command) Execute(ctx context.Context) *RunResult {
	return c.executor().Execute(ctx, c)
}

func (c *Command) executor() Executor {
	if c.Executor == nil {
		return Capture{}
	}

	return c.Executor
}

func (c *Command) printer() console.Printer {
	if c.Printer == nil {
		return console.Standard{}
	}

	return c.Printer
}

// line returns the arguments joined by single spaces, for diagnostics.
func (c *Command) line() string {
	return strings.Join(c.Args, " ")
}
