// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrun

import (
	"context"
	"fmt"
	"strings"
)

// RunResult is the outcome of executing a Command. It is created once per
// Execute call and not mutated afterwards.
type RunResult struct {
	// Command is the command that produced this result.
	Command *Command
	// ExitCode is the process exit status. 0 is success; 127 conventionally
	// means the program could not be resolved; -1 means the process could
	// not be started or waited on at all (see Err).
	ExitCode int
	// Stdout is the captured standard output, fully materialized at process
	// exit. Always empty for the Interactive executor.
	Stdout string
	// Stderr is the captured standard error, fully materialized at process
	// exit. Always empty for the Interactive executor.
	Stderr string
	// Err records operating-system level failures (pipe creation, start,
	// wait) and buffer overflow. A non-zero exit code alone is not an error.
	Err error
}

// Success reports whether the command exited with code 0.
func (r *RunResult) Success() bool {
	return r.ExitCode == 0
}

// Check translates a failed result into an error: Err if the process could
// not be run, otherwise an *ExitError for a non-zero exit code. A
// successful result returns nil.
func (r *RunResult) Check() error {
	if r.Err != nil {
		return r.Err
	}

	if r.ExitCode != 0 {
		return &ExitError{
			ExitCode: r.ExitCode,
			Stdout:   r.Stdout,
			Stderr:   r.Stderr,
		}
	}

	return nil
}

// Pipe chains a new command from this result, using this result's stdout as
// the new command's input. The downstream command line is split the same
// way as Parse, with extra arguments appended.
//
// If this result's exit code is non-zero the pipeline short-circuits: one
// diagnostic line is printed and this result is returned unchanged, without
// constructing or running the downstream command. Piping from an
// Interactive result panics, as there is no captured byte stream to
// forward; so does an empty downstream command. Both are caller bugs, not
// runtime conditions.
func (r *RunResult) Pipe(ctx context.Context, commandLine string, extra ...string) *RunResult {
	parts := strings.Fields(commandLine)
	parts = append(parts, extra...)

	return r.PipeArgs(ctx, parts)
}

// PipeArgs is Pipe with a pre-split argument vector.
func (r *RunResult) PipeArgs(ctx context.Context, args []string) *RunResult {
	if !r.Command.executor().pipable() {
		panic("cmdrun: cannot pipe from an interactive command: no captured output to forward")
	}

	if len(args) == 0 {
		panic("cmdrun: cannot pipe to an empty command")
	}

	if !r.Success() {
		r.Command.printer().PrintErrorLine(fmt.Sprintf(
			"Command %q failed with exit code %d; not running %q",
			r.Command.line(), r.ExitCode, strings.Join(args, " "),
		))

		return r
	}

	// The downstream command inherits the upstream's settings as a
	// snapshot; it never holds a reference back to this result.
	next := &Command{
		Args:     args,
		Executor: r.Command.Executor,
		Cwd:      r.Command.Cwd,
		Env:      r.Command.Env,
		Printer:  r.Command.Printer,
		stdin:    strings.NewReader(r.Stdout),
	}

	return next.Execute(ctx)
}
