// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package query

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleCompare(t *testing.T) {
	expr, err := Parse(`status = "active"`)
	require.NoError(t, err)

	assert.Equal(t, Compare{Field: "status", Op: OpEq, Value: String("active")}, expr)
}

func TestParseOperators(t *testing.T) {
	tests := []struct {
		query string
		want  CompareOp
	}{
		{`n = 1`, OpEq},
		{`n != 1`, OpNe},
		{`n > 1`, OpGt},
		{`n < 1`, OpLt},
		{`n >= 1`, OpGe},
		{`n <= 1`, OpLe},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			expr, err := Parse(tt.query)
			require.NoError(t, err)

			cmp, ok := expr.(Compare)
			require.True(t, ok)
			assert.Equal(t, tt.want, cmp.Op)
			assert.Equal(t, Number(1), cmp.Value)
		})
	}
}

// Longest-match: ">=" must never parse as ">" with a dangling "=".
func TestParseOperatorLongestMatch(t *testing.T) {
	expr, err := Parse(`n >= 2`)
	require.NoError(t, err)

	cmp, ok := expr.(Compare)
	require.True(t, ok)
	assert.Equal(t, OpGe, cmp.Op)
}

func TestParseAndOrPrecedence(t *testing.T) {
	// a = 1 OR b = 2 AND c = 3 must group as a=1 OR (b=2 AND c=3).
	expr, err := Parse(`a = 1 OR b = 2 AND c = 3`)
	require.NoError(t, err)

	or, ok := expr.(Or)
	require.True(t, ok)
	assert.IsType(t, Compare{}, or.Left)
	assert.IsType(t, And{}, or.Right)
}

func TestParseLeftAssociative(t *testing.T) {
	expr, err := Parse(`a = 1 AND b = 2 AND c = 3`)
	require.NoError(t, err)

	// ((a AND b) AND c)
	outer, ok := expr.(And)
	require.True(t, ok)
	assert.IsType(t, And{}, outer.Left)
	assert.IsType(t, Compare{}, outer.Right)
}

func TestParseParentheses(t *testing.T) {
	expr, err := Parse(`(a = 1 OR b = 2) AND c = 3`)
	require.NoError(t, err)

	and, ok := expr.(And)
	require.True(t, ok)
	assert.IsType(t, Or{}, and.Left)
	assert.IsType(t, Compare{}, and.Right)
}

func TestParseContains(t *testing.T) {
	expr, err := Parse(`tags contains "project"`)
	require.NoError(t, err)

	assert.Equal(t, Contains{Field: "tags", Value: String("project")}, expr)
}

func TestParseKeywordsCaseInsensitive(t *testing.T) {
	for _, q := range []string{
		`a = 1 and b = 2`,
		`a = 1 AND b = 2`,
		`a = 1 And b = 2`,
	} {
		expr, err := Parse(q)
		require.NoError(t, err, q)
		assert.IsType(t, And{}, expr, q)
	}

	expr, err := Parse(`tags CONTAINS "x"`)
	require.NoError(t, err)
	assert.IsType(t, Contains{}, expr)
}

// Keyword matching requires a word boundary: "android" must not be read
// as the keyword "and" followed by "roid".
func TestParseKeywordBoundary(t *testing.T) {
	expr, err := Parse(`android = 1`)
	require.NoError(t, err)

	cmp, ok := expr.(Compare)
	require.True(t, ok)
	assert.Equal(t, "android", cmp.Field)

	// Same on the value side: "truey" is an identifier fragment, not the
	// literal true, so the value fails to parse.
	_, err = Parse(`a = truey`)
	assert.Error(t, err)
}

func TestParseDateLiteral(t *testing.T) {
	expr, err := Parse(`created >= 2024-01-01`)
	require.NoError(t, err)

	cmp, ok := expr.(Compare)
	require.True(t, ok)
	assert.Equal(t, Date{Year: 2024, Month: 1, Day: 1}, cmp.Value)
}

func TestParseDateStructuralBoundsOnly(t *testing.T) {
	// Feb 30 is structurally valid; no calendar check at parse time.
	expr, err := Parse(`d = 2024-02-30`)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 30}, expr.(Compare).Value)

	// Month 13 falls out of the date pattern and is not a number either.
	_, err = Parse(`d = 2024-13-01`)
	assert.Error(t, err)
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		query string
		want  Number
	}{
		{`n = 3`, 3},
		{`n = 3.5`, 3.5},
		{`n = -2`, -2},
		{`n = 0.25`, 0.25},
	}

	for _, tt := range tests {
		expr, err := Parse(tt.query)
		require.NoError(t, err, tt.query)
		assert.Equal(t, tt.want, expr.(Compare).Value, tt.query)
	}
}

func TestParseBoolLiterals(t *testing.T) {
	expr, err := Parse(`done = true`)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), expr.(Compare).Value)

	expr, err = Parse(`done != FALSE`)
	require.NoError(t, err)
	assert.Equal(t, Bool(false), expr.(Compare).Value)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ``},
		{"missing value", `status =`},
		{"missing operator", `status`},
		{"unterminated string", `status = "done`},
		{"trailing input", `a = 1 b = 2`},
		{"unmatched paren", `(a = 1`},
		{"bare minus", `n = -`},
		{"bad operator", `a ~ 1`},
		{"value only", `= 1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.query)
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.LessOrEqual(t, perr.Pos, len(tt.query))
			assert.NotEmpty(t, perr.Message)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse(`status = "done`)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, len(`status = "done`), perr.Pos)
	assert.Contains(t, perr.Error(), "unterminated string")
}

func TestParseDeterministic(t *testing.T) {
	const q = `(status = "done" OR archived = true) AND priority >= 2`

	first, err := Parse(q)
	require.NoError(t, err)
	second, err := Parse(q)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first, second))
}

func TestParseWhitespaceInsensitive(t *testing.T) {
	compact, err := Parse(`a=1 AND b="x"`)
	require.NoError(t, err)
	spaced, err := Parse("  a  =  1   AND   b  =  \"x\"  ")
	require.NoError(t, err)

	assert.Equal(t, compact, spaced)
}
