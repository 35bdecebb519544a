// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrun

import (
	"context"
	"errors"
	"os"
	"slices"

	"github.com/matt-FFFFFF/clikit/internal/ctxlog"
	"github.com/matt-FFFFFF/clikit/internal/envsource"
)

// Interactive runs a command with the child's stdin, stdout and stderr
// connected directly to the calling process's streams. Nothing is captured:
// the result's Stdout and Stderr are empty strings by contract. Use it for
// long-lived or input-consuming programs such as build tools.
type Interactive struct{}

func (Interactive) pipable() bool { return false }

// Execute implements Executor. Working directory and environment rules are
// identical to Capture. Any chained input is ignored; the child reads the
// caller's terminal.
func (Interactive) Execute(ctx context.Context, cmd *Command) *RunResult {
	logger := ctxlog.Logger(ctx).With("executor", "interactive")
	logger.Debug("command info", "args", cmd.Args, "cwd", cmd.Cwd)

	res := &RunResult{Command: cmd}

	ps, err := os.StartProcess(launcherPath, slices.Concat([]string{"env"}, cmd.Args), &os.ProcAttr{
		Dir:   cmd.Cwd,
		Env:   envsource.Format(cmd.Env),
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	})
	if err != nil {
		res.Err = errors.Join(ErrCouldNotStartProcess, err)
		res.ExitCode = -1

		return res
	}

	logger.Debug("process started", "pid", ps.Pid)

	state, psErr := ps.Wait()

	res.ExitCode = -1
	if state != nil {
		res.ExitCode = state.ExitCode()
	}

	res.Err = psErr

	logger.Debug("process finished", "exitCode", res.ExitCode)

	return res
}
