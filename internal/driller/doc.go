// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller resolves dotted property paths against frontmatter
// mappings, letting the values command reach into nested structures like
// "author.name" or "links[0]".
package driller
