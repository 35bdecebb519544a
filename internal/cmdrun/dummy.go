// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrun

import (
	"context"

	"github.com/matt-FFFFFF/clikit/internal/ctxlog"
)

// Dummy is a deterministic stand-in executor for tests and dry runs. It
// never touches the operating system: it prints one diagnostic line through
// the command's Printer and returns the configured outcome. The zero value
// reports success with empty output.
//
// Dummy results chain normally, so pipeline shape can be asserted without
// running real processes.
type Dummy struct {
	// Status is the exit code to report.
	Status int
	// Stdout is the stdout to report.
	Stdout string
	// Stderr is the stderr to report.
	Stderr string
}

func (*Dummy) pipable() bool { return true }

// Execute implements Executor. Any chained input is ignored.
func (d *Dummy) Execute(ctx context.Context, cmd *Command) *RunResult {
	ctxlog.Debug(ctx, "dummy execution", "args", cmd.Args)

	cmd.printer().PrintLine("Executed: " + cmd.line())

	return &RunResult{
		Command:  cmd,
		ExitCode: d.Status,
		Stdout:   d.Stdout,
		Stderr:   d.Stderr,
	}
}
