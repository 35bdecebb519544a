// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pipefile loads pipeline definitions from YAML and runs them
// through the cmdrun pipeline chaining. A definition names an ordered list
// of stages; each stage's captured stdout feeds the next stage's stdin,
// with the usual short-circuit on the first failing stage.
package pipefile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/clikit/internal/cmdrun"
	"github.com/matt-FFFFFF/clikit/internal/console"
	"github.com/matt-FFFFFF/clikit/internal/pathy"
	"github.com/spf13/afero"
)

// FsFactory returns the filesystem used to read pipeline files.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

var (
	// ErrNoStages is returned when a definition has no stages.
	ErrNoStages = errors.New("pipeline has no stages")
	// ErrEmptyStage is returned when a stage has an empty command.
	ErrEmptyStage = errors.New("stage has an empty command")
	// ErrInteractiveStages is returned when an interactive definition has
	// more than one stage; interactive output cannot be piped.
	ErrInteractiveStages = errors.New("interactive pipelines must have exactly one stage")
	// ErrWorkingDirectory is returned when the working directory does not
	// exist or is not a directory.
	ErrWorkingDirectory = errors.New("working directory is not a directory")
	// ErrUnmarshal is returned when the YAML cannot be parsed.
	ErrUnmarshal = errors.New("failed to unmarshal pipeline definition")
)

// Stage is one command in a pipeline.
type Stage struct {
	// Command is the command line, split on whitespace like cmdrun.Parse.
	Command string `yaml:"command"`
}

// Definition is a YAML pipeline: a stage list plus settings shared by all
// stages.
type Definition struct {
	// Name labels the pipeline in diagnostics. Optional.
	Name string `yaml:"name"`
	// WorkingDirectory is the working directory for every stage. Optional;
	// empty means the process's current directory.
	WorkingDirectory string `yaml:"working_directory"`
	// Env, when present, replaces the child environment of every stage.
	// Absent means inherit.
	Env map[string]string `yaml:"env"`
	// Interactive runs the (single) stage with the caller's terminal
	// streams instead of capturing output.
	Interactive bool `yaml:"interactive"`
	// Stages run in order; each stage's stdout feeds the next stage's
	// stdin.
	Stages []Stage `yaml:"stages"`
}

// Parse unmarshals and validates a YAML pipeline definition.
func Parse(data []byte) (*Definition, error) {
	def := new(Definition)
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, errors.Join(ErrUnmarshal, err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return def, nil
}

// Load reads and parses the pipeline file at path.
func Load(path string) (*Definition, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline file: %w", err)
	}

	return Parse(data)
}

// Validate checks the definition and reports every problem found, not just
// the first.
func (d *Definition) Validate() error {
	var result *multierror.Error

	if len(d.Stages) == 0 {
		result = multierror.Append(result, ErrNoStages)
	}

	for i, s := range d.Stages {
		if strings.TrimSpace(s.Command) == "" {
			result = multierror.Append(result, fmt.Errorf("stage %d: %w", i+1, ErrEmptyStage))
		}
	}

	if d.Interactive && len(d.Stages) > 1 {
		result = multierror.Append(result, ErrInteractiveStages)
	}

	if d.WorkingDirectory != "" {
		p, err := pathy.New(d.WorkingDirectory)
		if err != nil {
			result = multierror.Append(result, err)
		} else if isDir, err := p.IsDir(); err != nil || !isDir {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrWorkingDirectory, d.WorkingDirectory))
		}
	}

	return result.ErrorOrNil()
}

// Run executes the pipeline and returns the final stage's result (or the
// first failing stage's result). The printer receives short-circuit
// diagnostics; nil means the standard streams.
func (d *Definition) Run(ctx context.Context, printer console.Printer) (*cmdrun.RunResult, error) {
	var executor cmdrun.Executor
	if d.Interactive {
		executor = cmdrun.Interactive{}
	}

	first, err := cmdrun.Parse(executor, d.Stages[0].Command)
	if err != nil {
		return nil, err
	}

	first.Cwd = d.workingDirectory()
	first.Env = d.Env
	first.Printer = printer

	res := first.Execute(ctx)

	for _, stage := range d.Stages[1:] {
		res = res.Pipe(ctx, stage.Command)
		if !res.Success() {
			break
		}
	}

	return res, nil
}

func (d *Definition) workingDirectory() string {
	if d.WorkingDirectory == "" {
		return ""
	}

	p, err := pathy.New(d.WorkingDirectory)
	if err != nil {
		return d.WorkingDirectory
	}

	return p.String()
}
