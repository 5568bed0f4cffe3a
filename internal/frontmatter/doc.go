// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package frontmatter extracts the YAML frontmatter block from markdown
// documents and decodes it into the generic mapping consumed by the query
// evaluator. Extraction is forgiving: a document without a well-formed
// block is reported as having no frontmatter, never as an error.
package frontmatter
