// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package query implements the frontmatter query language: a typed
// expression tree, a recursive-descent parser for the Dataview-like WHERE
// syntax, and an evaluator that applies a parsed query to one document's
// frontmatter.
//
// The grammar supports field comparisons (= != > < >= <=), the `contains`
// membership/substring test, parentheses, and AND/OR with the usual
// precedence (AND binds tighter). Literals are double-quoted strings,
// numbers, true/false, and YYYY-MM-DD dates.
//
// Parsing is strict and fails with a positioned ParseError. Evaluation is
// the opposite: total and forgiving. Missing fields, type mismatches and
// malformed dates all evaluate to false so that one odd document never
// aborts a vault-wide run. String comparisons are case-insensitive and
// strip Obsidian wiki-link brackets ("[[Note]]" compares equal to "note").
package query
