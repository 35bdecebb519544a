// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package envsource wraps process-environment access behind an injectable
// interface so that tests never read or mutate the real environment, and so
// that the command core's replace-don't-merge contract is enforced at a
// single boundary.
package envsource

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Source is a read-only view of environment variables.
type Source interface {
	// Lookup returns the value of the named variable and whether it is set.
	Lookup(name string) (string, bool)
	// Environ returns the full environment in "KEY=value" form.
	Environ() []string
}

// OS reads the real process environment.
type OS struct{}

var _ Source = (*OS)(nil)

// Lookup implements Source.
func (OS) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Environ implements Source.
func (OS) Environ() []string {
	return os.Environ()
}

// Static is a fixed in-memory environment, used in tests and as the exact
// child environment when a command overrides rather than inherits.
type Static map[string]string

var _ Source = (Static)(nil)

// Lookup implements Source.
func (s Static) Lookup(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

// Environ implements Source. Keys are sorted for deterministic output.
func (s Static) Environ() []string {
	out := make([]string, 0, len(s))
	for k, v := range s {
		out = append(out, fmt.Sprintf("%s=%s", k, v))
	}

	sort.Strings(out)

	return out
}

// Format renders an override mapping as "KEY=value" pairs, sorted by key.
// A nil mapping returns nil, meaning "inherit the ambient environment".
func Format(env map[string]string) []string {
	if env == nil {
		return nil
	}

	return Static(env).Environ()
}

// Parse converts "KEY=value" pairs into a mapping. Malformed entries
// (no '=') are skipped.
func Parse(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))

	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}

		out[k] = v
	}

	return out
}
