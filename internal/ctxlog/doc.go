// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog.Logger in a context.Context so that every
// layer of the library can log without plumbing a logger argument through.
//
// The default handler is a pretty console handler that formats records in a
// human-readable way, with attributes rendered as colorized JSON.
package ctxlog
