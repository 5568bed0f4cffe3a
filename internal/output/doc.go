// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output emits command results in the supported formats: plain
// text lines, JSON, YAML, and a styled table. Color is only applied when
// requested and writing to a terminal.
package output
