// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrun

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/clikit/internal/ctxlog"
)

const (
	goosWindows          = "windows"
	commandSwitchWindows = "/C"         // command switch for Windows cmd.exe
	commandSwitchUnix    = "-c"         // command switch for Unix-like shells
	winSystem32          = "System32"   // directory containing cmd.exe on Windows
	cmdExe               = "cmd.exe"    // command interpreter executable on Windows
	binSh                = "/bin/sh"    // default shell for Unix-like systems
	winSystemRootEnv     = "SystemRoot" // environment variable for the Windows system root
)

// HasShellSyntax reports whether commandLine contains shell metacharacters
// (pipes, logical operators, redirects, command separators) that only a
// shell can interpret. Parse treats these as literal tokens; commands that
// need them interpreted should go through Shell.
func HasShellSyntax(commandLine string) bool {
	return strings.ContainsAny(commandLine, "|&;<>")
}

// Shell builds a Command that hands commandLine to the user's shell
// verbatim ($SHELL, falling back to /bin/sh; cmd.exe on Windows). Shell
// metacharacters in commandLine are interpreted by the shell itself, not by
// this library's pipeline logic. Returns ErrInvalidCommand for a blank
// command line.
func Shell(ctx context.Context, executor Executor, commandLine string) (*Command, error) {
	if strings.TrimSpace(commandLine) == "" {
		return nil, ErrInvalidCommand
	}

	commandSwitch := commandSwitchUnix
	if runtime.GOOS == goosWindows {
		commandSwitch = commandSwitchWindows
	}

	return &Command{
		Args:     []string{defaultShell(ctx), commandSwitch, commandLine},
		Executor: executor,
	}, nil
}

// defaultShell returns the shell used for Shell commands.
func defaultShell(ctx context.Context) string {
	if runtime.GOOS == goosWindows {
		systemRoot := os.Getenv(winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}

		return fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe)
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		ctxlog.Debug(ctx, "using SHELL environment variable", "shell", shell)
		return shell
	}

	return binSh
}
