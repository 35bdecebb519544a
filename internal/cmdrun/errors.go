// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrun

import (
	"errors"
	"fmt"
)

const maxBufferSize = 8 * 1024 * 1024 // 8MB cap on captured output per stream

var (
	// ErrInvalidCommand is returned when a command has no program to run.
	ErrInvalidCommand = errors.New("invalid command: empty argument list")
	// ErrCouldNotStartProcess is returned when the launcher itself could not
	// be started. Note that an unresolvable program name is not a start
	// failure: /usr/bin/env reports that with exit code 127.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when an operating system pipe could
	// not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrFailedToReadBuffer is returned when captured output could not be
	// read from the operating system pipe.
	ErrFailedToReadBuffer = errors.New("failed to read buffer")
	// ErrBufferOverflow is returned when captured output exceeds the max size.
	ErrBufferOverflow = fmt.Errorf("output exceeds max size of %d bytes", maxBufferSize)
)

// ExitError is the strict-layer translation of a non-zero exit code, for
// callers who want an error instead of checking RunResult.ExitCode.
type ExitError struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.ExitCode)
}
