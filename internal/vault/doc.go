// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package vault discovers the markdown documents in a vault directory and
// loads their frontmatter. Discovery honors .gitignore and .fmqignore
// pattern files at the vault root; loading runs concurrently since each
// document is independent.
package vault
