// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pathy provides an absolute-path abstraction with filesystem
// operations. A Path is always absolute: relative inputs are resolved
// against the process working directory at construction time, so that a
// Path handed to a subprocess or stored for later use never depends on
// ambient cwd state.
//
// All filesystem access goes through the package-level FsFactory, an
// afero.Fs constructor that tests stub with an in-memory filesystem.
package pathy

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// FsFactory returns the filesystem used by all Path operations.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// ErrNotDirectory is returned when a directory operation targets a file.
var ErrNotDirectory = errors.New("not a directory")

// Path is an absolute filesystem path.
type Path struct {
	raw string
}

// New creates a Path. Relative inputs are resolved against the process
// working directory.
func New(p string) (Path, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return Path{}, err
	}

	return Path{raw: filepath.Clean(abs)}, nil
}

// Current returns the process working directory as a Path.
func Current() (Path, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Path{}, err
	}

	return Path{raw: cwd}, nil
}

// Home returns the current user's home directory as a Path.
func Home() (Path, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Path{}, err
	}

	return Path{raw: home}, nil
}

// String returns the absolute path string.
func (p Path) String() string {
	return p.raw
}

// IsZero reports whether p is the zero Path.
func (p Path) IsZero() bool {
	return p.raw == ""
}

// Join returns a new Path with the given elements appended.
func (p Path) Join(elem ...string) Path {
	return Path{raw: filepath.Join(append([]string{p.raw}, elem...)...)}
}

// Parent returns the parent directory. The parent of the root is the root.
func (p Path) Parent() Path {
	return Path{raw: filepath.Dir(p.raw)}
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(p.raw)
}

// Exists reports whether the path exists.
func (p Path) Exists() (bool, error) {
	return afero.Exists(FsFactory(), p.raw)
}

// IsDir reports whether the path exists and is a directory.
func (p Path) IsDir() (bool, error) {
	ok, err := afero.DirExists(FsFactory(), p.raw)
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReadDir returns the sorted names of the entries in the directory.
func (p Path) ReadDir() ([]string, error) {
	fs := FsFactory()

	isDir, err := afero.IsDir(fs, p.raw)
	if err != nil {
		return nil, err
	}

	if !isDir {
		return nil, ErrNotDirectory
	}

	entries, err := afero.ReadDir(fs, p.raw)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	sort.Strings(names)

	return names, nil
}

// MkdirAll creates the directory and any missing parents.
func (p Path) MkdirAll(perm os.FileMode) error {
	return FsFactory().MkdirAll(p.raw, perm)
}

// Remove removes the file or empty directory at the path.
func (p Path) Remove() error {
	return FsFactory().Remove(p.raw)
}

// RemoveAll removes the path and any children.
func (p Path) RemoveAll() error {
	return FsFactory().RemoveAll(p.raw)
}

// ReadFile reads the whole file at the path.
func (p Path) ReadFile() ([]byte, error) {
	return afero.ReadFile(FsFactory(), p.raw)
}

// WriteFile writes data to the file at the path, creating it if needed.
func (p Path) WriteFile(data []byte, perm os.FileMode) error {
	return afero.WriteFile(FsFactory(), p.raw, data, perm)
}
