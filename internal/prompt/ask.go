// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"errors"
	"strings"

	"github.com/peterh/liner"
)

// ErrAborted is returned when the user cancels a prompt (Ctrl-C).
var ErrAborted = errors.New("prompt aborted")

// Ask prompts for a line of input with line editing and returns the
// trimmed answer.
func Ask(question string) (string, error) {
	l := liner.NewLiner()
	defer func() { _ = l.Close() }()

	l.SetCtrlCAborts(true)

	answer, err := l.Prompt(question + " ")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrAborted
		}

		return "", err
	}

	return strings.TrimSpace(answer), nil
}

// AskDefault is Ask with a default answer returned when the user submits an
// empty line.
func AskDefault(question, def string) (string, error) {
	answer, err := Ask(question + " [" + def + "]")
	if err != nil {
		return "", err
	}

	if answer == "" {
		return def, nil
	}

	return answer, nil
}

// Confirm asks a yes/no question. Only "y" and "yes" (case-insensitive)
// are treated as yes.
func Confirm(question string) (bool, error) {
	answer, err := Ask(question + " [y/N]")
	if err != nil {
		return false, err
	}

	return isYes(answer), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
