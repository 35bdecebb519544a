// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrun

import (
	"testing"

	"github.com/matt-FFFFFF/clikit/internal/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestPipeBase64RoundTrip(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := testCtx(t)

	cmd, err := Parse(nil, "echo -n Hi!")
	require.NoError(t, err)

	res := cmd.Execute(ctx).
		Pipe(ctx, "base64").
		Pipe(ctx, "base64 -d")

	require.NoError(t, res.Err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "Hi!", res.Stdout)
}

func TestPipeInheritsSettings(t *testing.T) {
	ctx := testCtx(t)
	tempDir := t.TempDir()

	cmd, err := New(nil, "/bin/sh", "-c", "echo stage-one")
	require.NoError(t, err)

	cmd.Cwd = tempDir
	cmd.Env = map[string]string{"MARKER": "present"}

	res := cmd.Execute(ctx)
	require.True(t, res.Success())

	next := res.Pipe(ctx, "/bin/sh -c pwd")
	require.True(t, next.Success())

	assert.Equal(t, tempDir, next.Command.Cwd)
	assert.Equal(t, map[string]string{"MARKER": "present"}, next.Command.Env)
	assert.Equal(t, cmd.Executor, next.Command.Executor)
}

func TestPipeShortCircuitOnFailure(t *testing.T) {
	ctx := testCtx(t)
	capture := &console.Capture{}

	cmd, err := Parse(nil, "definitely-not-a-real-command-xyz")
	require.NoError(t, err)

	cmd.Printer = capture

	failed := cmd.Execute(ctx)
	require.Equal(t, 127, failed.ExitCode)

	res := failed.Pipe(ctx, "echo Hi")
	assert.Same(t, failed, res, "the downstream stage must never run")
	assert.Same(t, cmd, res.Command, "result still names the failed upstream command")
	assert.Equal(t, 127, res.ExitCode)

	errLines := capture.ErrorLines()
	require.Len(t, errLines, 1, "expected exactly one diagnostic line")
	assert.Contains(t, errLines[0], "definitely-not-a-real-command-xyz")
	assert.Contains(t, errLines[0], "127")
}

func TestPipeFromInteractivePanics(t *testing.T) {
	ctx := testCtx(t)

	cmd, err := Parse(Interactive{}, "true")
	require.NoError(t, err)

	res := cmd.Execute(ctx)
	require.True(t, res.Success())

	assert.Panics(t, func() {
		res.Pipe(ctx, "echo")
	}, "piping from an interactive result must fail fast")
}

func TestPipeToEmptyCommandPanics(t *testing.T) {
	ctx := testCtx(t)

	cmd, err := Parse(&Dummy{}, "echo hi")
	require.NoError(t, err)

	cmd.Printer = &console.Capture{}
	res := cmd.Execute(ctx)

	assert.Panics(t, func() {
		res.Pipe(ctx, "   ")
	})
}

func TestPipelineHelper(t *testing.T) {
	defer goleak.VerifyNone(t)

	res, err := Pipeline(testCtx(t), nil, "echo -n Hi!", "base64", "base64 -d")
	require.NoError(t, err)
	require.NoError(t, res.Err)
	assert.Equal(t, "Hi!", res.Stdout)
}

func TestPipelineHelperShortCircuits(t *testing.T) {
	ctx := testCtx(t)

	res, err := Pipeline(ctx, nil, "false", "echo never")
	require.NoError(t, err)
	assert.NotEqual(t, 0, res.ExitCode)
	assert.Equal(t, []string{"false"}, res.Command.Args)
}

func TestPipelineHelperEmpty(t *testing.T) {
	_, err := Pipeline(testCtx(t), nil)
	assert.ErrorIs(t, err, ErrInvalidCommand)
}

func TestCheck(t *testing.T) {
	ctx := testCtx(t)

	ok, err := Run(ctx, nil, "echo fine")
	require.NoError(t, err)
	assert.NoError(t, ok.Check())

	bad, err := Run(ctx, nil, "definitely-not-a-real-command-xyz")
	require.NoError(t, err)

	var exitErr *ExitError

	require.ErrorAs(t, bad.Check(), &exitErr)
	assert.Equal(t, 127, exitErr.ExitCode)
	assert.NotEmpty(t, exitErr.Stderr)
}
