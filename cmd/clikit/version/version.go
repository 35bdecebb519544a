// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package version implements the version command.
package version

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/clikit"
	"github.com/urfave/cli/v3"
)

// VersionCmd prints the build version and commit.
var VersionCmd = &cli.Command{
	Name:  "version",
	Usage: "Print the version and commit of this build",
	Action: func(_ context.Context, cmd *cli.Command) error {
		fmt.Fprintf(cmd.Writer, "clikit %s (%s)\n", clikit.Version, clikit.Commit)
		return nil
	},
}
