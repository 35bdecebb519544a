// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the run command: execute a command or pipeline
// given on the command line or loaded from a YAML pipeline file.
package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/clikit/internal/cmdrun"
	"github.com/matt-FFFFFF/clikit/internal/ctxlog"
	"github.com/matt-FFFFFF/clikit/internal/envsource"
	"github.com/matt-FFFFFF/clikit/internal/pipefile"
	"github.com/matt-FFFFFF/clikit/internal/prompt"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag        = "file"
	cwdFlag         = "cwd"
	envFlag         = "env"
	interactiveFlag = "interactive"
	confirmFlag     = "confirm"
)

// ErrGetPipelineFile is returned when the pipeline file cannot be fetched.
var ErrGetPipelineFile = errors.New("failed to get pipeline file")

// RunCmd executes a command or pipeline.
var RunCmd = &cli.Command{
	Name: "run",
	Description: `Run a command, or a pipeline of commands where each argument is one stage.
Each stage's stdout becomes the next stage's stdin, and a failing stage stops
the pipeline. A single argument containing shell syntax (pipes, redirects) is
handed to the shell verbatim instead.

Pipeline files use YAML and are fetched with Hashicorp's go-getter syntax,
which allows local paths as well as remote sources.`,
	Usage:     `clikit run "echo -n Hi!" "base64"`,
	ArgsUsage: "[stage ...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      fileFlag,
			Aliases:   []string{"f"},
			Usage:     "Run the pipeline defined in this YAML file instead of the arguments",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringFlag{
			Name:     cwdFlag,
			Usage:    "Working directory for every stage",
			OnlyOnce: true,
		},
		&cli.StringSliceFlag{
			Name:    envFlag,
			Aliases: []string{"e"},
			Usage: "Set the child environment to exactly these KEY=value pairs " +
				"(replaces the inherited environment; repeatable)",
		},
		&cli.BoolFlag{
			Name:        confirmFlag,
			Usage:       "Ask for confirmation before running",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        interactiveFlag,
			Aliases:     []string{"i"},
			Usage:       "Attach the command to this terminal instead of capturing output",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	args := cmd.Args().Slice()

	if cmd.Bool(confirmFlag) {
		ok, err := prompt.Confirm("Run this pipeline?")
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		if !ok {
			logger.Debug("run not confirmed")
			return nil
		}
	}

	// A single argument with shell syntax goes to the shell verbatim, so
	// `clikit run "ls | grep a"` behaves like typing the same line.
	if cmd.String(fileFlag) == "" && len(args) == 1 && cmdrun.HasShellSyntax(args[0]) {
		shellCmd, err := cmdrun.Shell(ctx, executorFrom(cmd), args[0])
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		shellCmd.Cwd = cmd.String(cwdFlag)
		shellCmd.Env = envFrom(cmd)

		return report(cmd, logger, shellCmd.Execute(ctx))
	}

	def, err := definitionFrom(ctx, cmd, args)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger.Debug("running pipeline", "stages", len(def.Stages))

	res, err := def.Run(ctx, nil)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return report(cmd, logger, res)
}

// report writes the final stage's output to the CLI streams and maps a
// failed pipeline to the process exit code.
func report(cmd *cli.Command, logger *slog.Logger, res *cmdrun.RunResult) error {
	fmt.Fprint(cmd.Writer, res.Stdout)
	fmt.Fprint(cmd.ErrWriter, res.Stderr)

	if err := res.Check(); err != nil {
		logger.Debug("pipeline failed", "error", err, "exitCode", res.ExitCode)
		return cli.Exit("", res.ExitCode)
	}

	return nil
}

// definitionFrom builds the pipeline to run, either from the YAML file
// named by --file or from the command-line arguments, one stage each.
func definitionFrom(ctx context.Context, cmd *cli.Command, args []string) (*pipefile.Definition, error) {
	if url := cmd.String(fileFlag); url != "" {
		data, err := fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		return pipefile.Parse(data)
	}

	if len(args) == 0 {
		return nil, cmdrun.ErrInvalidCommand
	}

	stages := make([]pipefile.Stage, 0, len(args))
	for _, a := range args {
		stages = append(stages, pipefile.Stage{Command: a})
	}

	def := &pipefile.Definition{
		WorkingDirectory: cmd.String(cwdFlag),
		Env:              envFrom(cmd),
		Interactive:      cmd.Bool(interactiveFlag),
		Stages:           stages,
	}

	return def, def.Validate()
}

func executorFrom(cmd *cli.Command) cmdrun.Executor {
	if cmd.Bool(interactiveFlag) {
		return cmdrun.Interactive{}
	}

	return nil
}

func envFrom(cmd *cli.Command) map[string]string {
	pairs := cmd.StringSlice(envFlag)
	if len(pairs) == 0 {
		return nil
	}

	return envsource.Parse(pairs)
}

// fetch retrieves the pipeline file content using Hashicorp's go-getter,
// cleaning up the temporary download location afterwards.
func fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrGetPipelineFile
	}

	tmpDir, err := os.MkdirTemp("", "clikit-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetPipelineFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrGetPipelineFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	dst := filepath.Join(tmpDir, "pipeline.yaml")

	if _, err := client.Get(ctx, &getter.Request{
		Src:     url,
		Dst:     dst,
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}); err != nil {
		return nil, errors.Join(ErrGetPipelineFile, err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		return nil, errors.Join(ErrGetPipelineFile, err)
	}

	return data, nil
}
