// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package style

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables styled output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces styled output.
	ForceColor = "FORCE_COLOR"

	prefix    = "\033["
	suffix    = "m"
	reset     = "\033[0m"
	sbPadding = 16 // headroom for the strings.Builder
)

// Code represents a single ANSI control code.
type Code int

// Text attributes.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
	BlinkSlow
	BlinkRapid
	ReverseVideo
	Concealed
	CrossedOut
)

// Foreground colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground hi-intensity colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// Background colors.
const (
	BgBlack Code = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
)

var enabled bool

func init() {
	enabled = isColorCapable()
}

// Enabled reports whether styled output is active. It is computed once at
// package init from the environment and terminal state.
func Enabled() bool {
	return enabled
}

// ControlString returns the bare escape sequence for the given codes,
// without any text or reset. Callers are responsible for resetting.
func ControlString(codes ...Code) string {
	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(suffix) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)

	return sb.String()
}

// Apply wraps str in the escape sequence for the given codes, followed by a
// reset. When styling is disabled the string is returned unchanged.
func Apply(str string, codes ...Code) string {
	if !enabled || len(codes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(ControlString(codes...))
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

// Semantic helpers used across the CLI surface.

// Success styles str for success messages.
func Success(str string) string { return Apply(str, FgGreen) }

// Failure styles str for error messages.
func Failure(str string) string { return Apply(str, FgRed) }

// Warning styles str for warning messages.
func Warning(str string) string { return Apply(str, FgYellow) }

// Info styles str for informational messages.
func Info(str string) string { return Apply(str, FgCyan) }

// Emphasis styles str in bold.
func Emphasis(str string) string { return Apply(str, Bold) }

// Muted styles str faintly, for secondary detail.
func Muted(str string) string { return Apply(str, Faint) }

func isColorCapable() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
