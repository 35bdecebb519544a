// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrun

import (
	"context"
)

// Run parses and executes commandLine with the given executor (nil means
// Capture). A command line containing shell syntax (a literal pipe,
// redirect or separator) is passed to the shell verbatim rather than
// naively split, mirroring what a user typing the same line would get.
func Run(ctx context.Context, executor Executor, commandLine string) (*RunResult, error) {
	if HasShellSyntax(commandLine) {
		cmd, err := Shell(ctx, executor, commandLine)
		if err != nil {
			return nil, err
		}

		return cmd.Execute(ctx), nil
	}

	cmd, err := Parse(executor, commandLine)
	if err != nil {
		return nil, err
	}

	return cmd.Execute(ctx), nil
}

// Pipeline executes the stages in order, chaining each stage's stdout into
// the next stage's stdin. Every stage is split like Parse; there is no
// shell escape hatch here. A failing stage short-circuits the chain and its
// result is returned. At least one stage is required.
func Pipeline(ctx context.Context, executor Executor, stages ...string) (*RunResult, error) {
	if len(stages) == 0 {
		return nil, ErrInvalidCommand
	}

	cmd, err := Parse(executor, stages[0])
	if err != nil {
		return nil, err
	}

	res := cmd.Execute(ctx)

	for _, stage := range stages[1:] {
		res = res.Pipe(ctx, stage)
		if !res.Success() {
			break
		}
	}

	return res, nil
}
