// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/matt-FFFFFF/clikit/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

func watchAsync(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) *sync.WaitGroup {
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	return wg
}

func TestWatchFirstSignalIsIgnored(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 1)
	wg := watchAsync(ctx, sigCh, cancel)

	sigCh <- os.Interrupt

	time.Sleep(50 * time.Millisecond)

	select {
	case <-ctx.Done():
		t.Fatal("context should not be cancelled after first signal")
	default:
	}

	close(sigCh)
	wg.Wait()
}

func TestWatchSecondSignalCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 2)
	wg := watchAsync(ctx, sigCh, cancel)

	sigCh <- os.Interrupt
	sigCh <- os.Interrupt

	wg.Wait()

	select {
	case <-ctx.Done():
	default:
		t.Fatal("context should be cancelled after second signal")
	}

	_, open := <-sigCh
	assert.False(t, open, "signal channel should be closed")
}

func TestWatchDistinctSignalsDoNotCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 2)
	wg := watchAsync(ctx, sigCh, cancel)

	sigCh <- os.Interrupt
	sigCh <- os.Kill

	time.Sleep(50 * time.Millisecond)

	select {
	case <-ctx.Done():
		t.Fatal("context should not be cancelled for distinct signal types")
	default:
	}

	close(sigCh)
	wg.Wait()
}
