// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrun

import (
	"testing"

	"github.com/matt-FFFFFF/clikit/internal/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDummyReturnsConfiguredOutcome(t *testing.T) {
	capture := &console.Capture{}

	cmd, err := Parse(&Dummy{Status: 123, Stdout: "out", Stderr: "err"}, "anything at all")
	require.NoError(t, err)

	cmd.Printer = capture

	res := cmd.Execute(testCtx(t))
	assert.Equal(t, 123, res.ExitCode)
	assert.Equal(t, "out", res.Stdout)
	assert.Equal(t, "err", res.Stderr)
	assert.NoError(t, res.Err)
	assert.Same(t, cmd, res.Command)
}

func TestDummyZeroValueIsSuccess(t *testing.T) {
	capture := &console.Capture{}

	cmd, err := Parse(&Dummy{}, "echo Hello")
	require.NoError(t, err)

	cmd.Printer = capture

	res := cmd.Execute(testCtx(t))
	assert.True(t, res.Success())
	assert.Empty(t, res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestDummyPrintsExecutedLines(t *testing.T) {
	ctx := testCtx(t)
	capture := &console.Capture{}

	first, err := Parse(&Dummy{}, "echo Hello")
	require.NoError(t, err)

	first.Printer = capture

	res := first.Execute(ctx)
	require.True(t, res.Success())

	second, err := Parse(&Dummy{Status: 123, Stdout: "out"}, "dummy")
	require.NoError(t, err)

	second.Printer = capture

	res = second.Execute(ctx)
	assert.Equal(t, 123, res.ExitCode)

	assert.Equal(t, []string{
		"Executed: echo Hello",
		"Executed: dummy",
	}, capture.Lines())
}

func TestDummyChainsThroughPipe(t *testing.T) {
	ctx := testCtx(t)
	capture := &console.Capture{}

	cmd, err := Parse(&Dummy{Stdout: "stage one"}, "echo one")
	require.NoError(t, err)

	cmd.Printer = capture

	res := cmd.Execute(ctx).Pipe(ctx, "sort -r")
	assert.True(t, res.Success())
	assert.Equal(t, []string{
		"Executed: echo one",
		"Executed: sort -r",
	}, capture.Lines())
}
