// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// epsilon is the tolerance used for numeric equality, one ULP at 1.0.
var epsilon = math.Nextafter(1, 2) - 1

// Evaluate applies a parsed query to one document's frontmatter and reports
// whether it matches. The frontmatter is the generic yaml decode shape
// (map[string]any with scalar, []any and nested map values).
//
// Evaluate is total: a missing field, a type mismatch, a malformed date or
// an operator that does not apply all resolve to false rather than an
// error. A query either selects a document or it doesn't; bad data
// disqualifies, it never aborts a run.
func Evaluate(expr Expr, frontmatter map[string]any) bool {
	switch e := expr.(type) {
	case Compare:
		return evalCompare(frontmatter, e)
	case Contains:
		return evalContains(frontmatter, e)
	case And:
		return Evaluate(e.Left, frontmatter) && Evaluate(e.Right, frontmatter)
	case Or:
		return Evaluate(e.Left, frontmatter) || Evaluate(e.Right, frontmatter)
	default:
		return false
	}
}

// lookupField resolves a query field name against the frontmatter mapping
// case-insensitively. An exact hit wins outright; otherwise keys are
// matched by lowercase comparison.
func lookupField(fm map[string]any, field string) (any, bool) {
	if v, ok := fm[field]; ok {
		return v, true
	}
	lower := strings.ToLower(field)
	for k, v := range fm {
		if strings.ToLower(k) == lower {
			return v, true
		}
	}
	return nil, false
}

// stripLink unwraps an Obsidian-style wiki link, turning "[[Note]]" into
// "Note". Only a full wrapper is stripped; "[[Note" is left alone.
func stripLink(s string) string {
	if inner, ok := strings.CutPrefix(s, "[["); ok {
		if inner, ok := strings.CutSuffix(inner, "]]"); ok {
			return inner
		}
	}
	return s
}

// normalize prepares a string for comparison: link stripping, then
// lowercasing.
func normalize(s string) string {
	return strings.ToLower(stripLink(s))
}

func evalCompare(fm map[string]any, c Compare) bool {
	fv, ok := lookupField(fm, c.Field)
	if !ok {
		return false
	}

	switch want := c.Value.(type) {
	case String:
		s, ok := scalarString(fv)
		if !ok {
			return false
		}
		return compareOrdered(normalize(s), normalize(string(want)), c.Op)
	case Number:
		n, ok := scalarNumber(fv)
		if !ok {
			return false
		}
		return compareFloat(n, float64(want), c.Op)
	case Bool:
		b, ok := fv.(bool)
		if !ok {
			return false
		}
		switch c.Op {
		case OpEq:
			return b == bool(want)
		case OpNe:
			return b != bool(want)
		default:
			// Booleans have no order.
			return false
		}
	case Date:
		d, ok := scalarDate(fv)
		if !ok {
			return false
		}
		return compareCmp(d.Compare(want), c.Op)
	default:
		return false
	}
}

func evalContains(fm map[string]any, c Contains) bool {
	fv, ok := lookupField(fm, c.Field)
	if !ok {
		return false
	}

	needle, ok := c.Value.(String)
	if !ok {
		return false
	}
	want := normalize(string(needle))

	// A sequence matches when any element equals the needle exactly; a
	// scalar matches on substring. The asymmetry is deliberate.
	if seq, ok := fv.([]any); ok {
		for _, item := range seq {
			if s, ok := scalarString(item); ok && normalize(s) == want {
				return true
			}
		}
		return false
	}

	if s, ok := scalarString(fv); ok {
		return strings.Contains(normalize(s), want)
	}

	return false
}

// scalarString renders a string-like frontmatter scalar as text. Mappings
// and sequences do not qualify. yaml.v3 resolves unquoted date scalars to
// time.Time, so those render back to their YYYY-MM-DD spelling.
func scalarString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 {
			return v.Format("2006-01-02"), true
		}
		return v.Format(time.RFC3339), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// scalarNumber accepts only natively numeric frontmatter values. Strings
// and booleans are never coerced to numbers.
func scalarNumber(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// scalarDate parses a frontmatter string of the form Y-M-D. Unlike date
// literals in the query grammar, no month/day range check is applied here;
// document content is trusted as-is.
func scalarDate(v any) (Date, bool) {
	if t, ok := v.(time.Time); ok {
		y, m, d := t.Date()
		return Date{Year: y, Month: int(m), Day: d}, true
	}
	s, ok := v.(string)
	if !ok {
		return Date{}, false
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

func compareOrdered(a, b string, op CompareOp) bool {
	return compareCmp(strings.Compare(a, b), op)
}

func compareCmp(c int, op CompareOp) bool {
	switch op {
	case OpEq:
		return c == 0
	case OpNe:
		return c != 0
	case OpGt:
		return c > 0
	case OpLt:
		return c < 0
	case OpGe:
		return c >= 0
	case OpLe:
		return c <= 0
	default:
		return false
	}
}

func compareFloat(a, b float64, op CompareOp) bool {
	switch op {
	case OpEq:
		return math.Abs(a-b) < epsilon
	case OpNe:
		return math.Abs(a-b) >= epsilon
	case OpGt:
		return a > b
	case OpLt:
		return a < b
	case OpGe:
		return a >= b
	case OpLe:
		return a <= b
	default:
		return false
	}
}
