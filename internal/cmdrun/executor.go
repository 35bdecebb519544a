// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrun

import (
	"context"
)

// Executor turns a Command into a RunResult. The set of executors is closed:
// Capture, Interactive and Dummy are the only implementations, and the
// unexported method keeps it that way so pipeline preconditions can be
// checked exhaustively.
type Executor interface {
	// Execute runs the command, blocking until it completes.
	Execute(ctx context.Context, cmd *Command) *RunResult

	// pipable reports whether results from this executor carry a captured
	// output stream that a downstream stage can consume.
	pipable() bool
}

var (
	_ Executor = (Capture{})
	_ Executor = (Interactive{})
	_ Executor = (*Dummy)(nil)
)
