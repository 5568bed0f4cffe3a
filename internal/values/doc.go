// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package values aggregates the distinct values of a frontmatter property
// across a document set, with optional occurrence counts. It backs the
// values command.
package values
