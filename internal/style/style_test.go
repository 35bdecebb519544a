// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package style

import (
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
)

func TestIsColorCapable(t *testing.T) {
	t.Setenv(NoColor, "1")
	assert.False(t, isColorCapable(), "expected styling disabled when NO_COLOR is set")

	t.Setenv(ForceColor, "1")
	assert.False(t, isColorCapable(), "NO_COLOR wins over FORCE_COLOR")

	t.Setenv(NoColor, "")
	assert.True(t, isColorCapable(), "expected styling enabled when FORCE_COLOR is set")
}

func TestControlString(t *testing.T) {
	assert.Equal(t, "\033[1m", ControlString(Bold))
	assert.Equal(t, "\033[1;31m", ControlString(Bold, FgRed))
	assert.Equal(t, "\033[0m", ControlString(Reset))
}

func TestApply(t *testing.T) {
	defer gostub.Stub(&enabled, true).Reset()

	assert.Equal(t, "\033[32mok\033[0m", Apply("ok", FgGreen))
	assert.Equal(t, "\033[1;31mbad\033[0m", Apply("bad", Bold, FgRed))
	assert.Equal(t, "plain", Apply("plain"), "no codes means no escape sequence")
}

func TestApplyDisabled(t *testing.T) {
	defer gostub.Stub(&enabled, false).Reset()

	assert.Equal(t, "ok", Apply("ok", FgGreen))
	assert.Equal(t, "ok", Success("ok"))
	assert.Equal(t, "ok", Emphasis("ok"))
}

func TestSemanticHelpers(t *testing.T) {
	defer gostub.Stub(&enabled, true).Reset()

	assert.Equal(t, "\033[32mx\033[0m", Success("x"))
	assert.Equal(t, "\033[31mx\033[0m", Failure("x"))
	assert.Equal(t, "\033[33mx\033[0m", Warning("x"))
	assert.Equal(t, "\033[36mx\033[0m", Info("x"))
	assert.Equal(t, "\033[2mx\033[0m", Muted("x"))
}
