// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package style applies ANSI escape codes to strings for terminal output.
// Styling is a no-op when the output is not a terminal, or when the
// NO_COLOR environment variable is set. The FORCE_COLOR environment
// variable re-enables styling regardless of terminal detection, which is
// useful in CI pipelines that understand ANSI codes. Terminal detection
// uses the golang.org/x/term package.
package style
