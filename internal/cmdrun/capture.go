// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrun

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"slices"

	"github.com/matt-FFFFFF/clikit/internal/ctxlog"
	"github.com/matt-FFFFFF/clikit/internal/envsource"
)

// launcherPath is the PATH-resolving launcher. Every capture and
// interactive execution goes through it so that bare program names resolve
// via PATH, and so that an unresolvable name yields the launcher's own
// "command not found" exit code (127) instead of a start error.
var launcherPath = "/usr/bin/env"

// Capture runs a command to completion with stdout and stderr redirected to
// in-memory buffers. It is the default executor, suited to short-lived
// non-interactive programs.
type Capture struct{}

func (Capture) pipable() bool { return true }

// Execute implements Executor. It blocks until the child exits, then
// returns the exit code and the fully drained stdout and stderr. Output is
// capped at 8MB per stream; overflow truncates the stream and records
// ErrBufferOverflow on the result.
func (Capture) Execute(ctx context.Context, cmd *Command) *RunResult {
	logger := ctxlog.Logger(ctx).With("executor", "capture")
	logger.Debug("command info", "args", cmd.Args, "cwd", cmd.Cwd)

	res := &RunResult{Command: cmd}

	rOut, wOut, err := os.Pipe()
	if err != nil {
		res.Err = errors.Join(ErrFailedToCreatePipe, err)
		res.ExitCode = -1

		return res
	}

	rErr, wErr, err := os.Pipe()
	if err != nil {
		closeAll(rOut, wOut)

		res.Err = errors.Join(ErrFailedToCreatePipe, err)
		res.ExitCode = -1

		return res
	}

	stdinFile, stdinDone, err := stdinPipe(cmd.stdin)
	if err != nil {
		closeAll(rOut, wOut, rErr, wErr)

		res.Err = errors.Join(ErrFailedToCreatePipe, err)
		res.ExitCode = -1

		return res
	}

	logger.Debug("starting process", "launcher", launcherPath)

	ps, err := os.StartProcess(launcherPath, slices.Concat([]string{"env"}, cmd.Args), &os.ProcAttr{
		Dir:   cmd.Cwd,
		Env:   envsource.Format(cmd.Env),
		Files: []*os.File{stdinFile, wOut, wErr},
	})
	if err != nil {
		closeAll(rOut, wOut, rErr, wErr)
		closeStdin(stdinFile, stdinDone)

		res.Err = errors.Join(ErrCouldNotStartProcess, err)
		res.ExitCode = -1

		return res
	}

	logger.Debug("process started", "pid", ps.Pid)

	// The child holds duplicates of the write ends; close ours now so the
	// drain goroutines see EOF when the child exits. Draining concurrently
	// with the wait keeps a child that writes more than the kernel pipe
	// buffer from blocking forever.
	_ = wOut.Close()
	_ = wErr.Close()

	// Likewise close our read end of the chained input so a child that
	// exits without consuming it unblocks the copy goroutine with EPIPE.
	if stdinFile != nil && stdinFile != os.Stdin {
		_ = stdinFile.Close()
	}

	outCh := drain(rOut)
	errCh := drain(rErr)

	logger.Debug("waiting for process to finish")

	state, psErr := ps.Wait()

	if stdinDone != nil {
		<-stdinDone
	}

	stdout := <-outCh
	stderr := <-errCh

	res.ExitCode = -1
	if state != nil {
		res.ExitCode = state.ExitCode()
	}

	res.Err = psErr
	res.Stdout = string(stdout.data)
	res.Stderr = string(stderr.data)

	if err := errors.Join(stdout.err, stderr.err); err != nil {
		res.Err = errors.Join(res.Err, err)
	}

	logger.Debug("process finished",
		"exitCode", res.ExitCode,
		"stdoutBytes", len(res.Stdout),
		"stderrBytes", len(res.Stderr),
	)

	return res
}

type drained struct {
	data []byte
	err  error
}

// drain reads r to EOF (or the buffer cap) on a goroutine and closes it.
func drain(r *os.File) <-chan drained {
	ch := make(chan drained, 1)

	go func() {
		defer func() { _ = r.Close() }()

		data, err := readAllUpToMax(r, maxBufferSize)
		ch <- drained{data: data, err: err}
	}()

	return ch
}

func readAllUpToMax(r io.Reader, max int64) ([]byte, error) {
	var buf bytes.Buffer

	n, err := io.CopyN(&buf, r, max+1)
	if err != nil && err != io.EOF {
		return nil, errors.Join(ErrFailedToReadBuffer, err)
	}

	if n > max {
		return buf.Bytes()[:max], ErrBufferOverflow
	}

	return buf.Bytes(), nil
}

// stdinPipe prepares the child's standard input. Without a chained input
// the child inherits the caller's stdin. With one, the reader is copied
// into a fresh pipe on a goroutine; done is closed when the copy finishes.
func stdinPipe(input io.Reader) (f *os.File, done chan struct{}, err error) {
	if input == nil {
		return os.Stdin, nil, nil
	}

	rIn, wIn, err := os.Pipe()
	if err != nil {
		return nil, nil, err
	}

	done = make(chan struct{})

	go func() {
		defer close(done)
		defer func() { _ = wIn.Close() }()

		_, _ = io.Copy(wIn, input)
	}()

	return rIn, done, nil
}

func closeStdin(f *os.File, done chan struct{}) {
	if f == nil || f == os.Stdin {
		return
	}

	_ = f.Close()

	if done != nil {
		<-done
	}
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
