// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker listens for OS termination signals. The first signal
// of a given type is logged and ignored so that a child process sharing the
// terminal can handle its own Ctrl-C; a repeated signal cancels the context
// and terminates the CLI.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/clikit/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New returns a channel notified on the given signals, defaulting to the
// usual termination set.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Watch consumes sigCh and cancels the context when a second signal of the
// same type arrives. It returns when the channel is closed or after
// cancelling.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Info(ctx, "second signal received, terminating", "signal", sig.String())
			close(sigCh)
			cancel()

			return
		}

		ctxlog.Info(ctx, "signal received, send again to terminate", "signal", sig.String())

		seen[sig] = struct{}{}
	}
}
