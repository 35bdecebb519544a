// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdrun executes external programs and chains them into pipelines.
//
// A Command describes a single invocation: argument vector, working
// directory, environment and an optional input stream set by pipe chaining.
// An Executor turns a Command into a RunResult. There are exactly three
// executors: Capture (the default, buffers stdout/stderr), Interactive
// (child shares the caller's terminal streams) and Dummy (no process is
// spawned; used for tests and dry runs).
//
// Program names are resolved through /usr/bin/env, so bare names like "ls"
// work without absolute paths. A name that cannot be resolved yields the
// launcher's own "command not found" exit code (127) with diagnostic text
// on stderr; it is not surfaced as an error.
//
// RunResult.Pipe chains a new command using the previous stage's captured
// stdout as input. A failing stage short-circuits the pipeline: the failed
// result is returned unchanged and no downstream stage runs. Stages execute
// strictly sequentially, each stage's output fully buffered before the next
// starts, so the pipeline cannot stream unbounded output.
package cmdrun
