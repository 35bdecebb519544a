// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prompt provides interactive terminal helpers: free-text questions
// with line editing, yes/no confirmation, and a selectable list of choices.
package prompt
