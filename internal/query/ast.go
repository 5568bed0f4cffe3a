// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package query

import "fmt"

// CompareOp identifies a scalar comparison operator.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNe
	OpGt
	OpLt
	OpGe
	OpLe
)

// String returns the query-syntax spelling of the operator.
func (op CompareOp) String() string {
	switch op {
	case OpEq:
		return "="
	case OpNe:
		return "!="
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	case OpGe:
		return ">="
	case OpLe:
		return "<="
	default:
		return fmt.Sprintf("CompareOp(%d)", int(op))
	}
}

// Value is a literal appearing on the right-hand side of a comparison.
// The set of implementations is closed: String, Number, Bool and Date.
type Value interface {
	isValue()
}

// String is a quoted string literal.
type String string

// Number is a numeric literal, always carried as a float64.
type Number float64

// Bool is a true/false literal.
type Bool bool

// Date is a YYYY-MM-DD literal. Only structural bounds are enforced at
// parse time (month 1-12, day 1-31); Feb 30 is accepted.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Date) isValue()   {}

// Compare orders two dates lexicographically by (year, month, day) and
// returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(d.Month, other.Month)
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Expr is a node in the parsed query tree. The set of implementations is
// closed: Compare, Contains, And and Or. Trees are immutable once built
// and safe to share across concurrent evaluations.
type Expr interface {
	isExpr()
}

// Compare is a single-field scalar comparison such as `priority > 2`.
type Compare struct {
	Field string
	Op    CompareOp
	Value Value
}

// Contains is a single-field membership/substring test such as
// `tags contains "project"`.
type Contains struct {
	Field string
	Value Value
}

// And is true iff both operands are true.
type And struct {
	Left  Expr
	Right Expr
}

// Or is true iff at least one operand is true.
type Or struct {
	Left  Expr
	Right Expr
}

func (Compare) isExpr()  {}
func (Contains) isExpr() {}
func (And) isExpr()      {}
func (Or) isExpr()       {}
