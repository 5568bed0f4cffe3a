// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseError reports a grammar violation together with the byte offset at
// which parsing stopped. The parser never recovers or returns a partial
// tree; a query either parses fully or fails with a ParseError.
type ParseError struct {
	Message string
	Pos     int
}

func (e *ParseError) Error() string {
	return "parse error at position " + strconv.Itoa(e.Pos) + ": " + e.Message
}

// Parse parses a query expression in Dataview-like WHERE syntax into an
// Expr tree. Grammar, lowest to highest precedence:
//
//	Query   := OrExpr
//	OrExpr  := AndExpr ("OR" AndExpr)*
//	AndExpr := Primary ("AND" Primary)*
//	Primary := "(" OrExpr ")"
//	         | Identifier "contains" Value
//	         | Identifier CompareOp Value
//
// Keywords are matched case-insensitively and only at word boundaries, so
// a field named "android" is never mis-read as "and". The whole input must
// be consumed; trailing text is an error.
func Parse(input string) (Expr, error) {
	p := &parser{input: input}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos < len(p.input) {
		return nil, p.errorf("unexpected input after expression")
	}
	return expr, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		p.skipWhitespace()
		if !p.matchKeyword("OR") {
			return left, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or{Left: left, Right: right}
	}
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		p.skipWhitespace()
		if !p.matchKeyword("AND") {
			return left, nil
		}
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = And{Left: left, Right: right}
	}
}

func (p *parser) parsePrimary() (Expr, error) {
	p.skipWhitespace()

	if p.matchChar('(') {
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if !p.matchChar(')') {
			return nil, p.errorf("expected ')'")
		}
		return expr, nil
	}

	field, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()

	if p.matchKeyword("contains") {
		p.skipWhitespace()
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		return Contains{Field: field, Value: value}, nil
	}

	op, err := p.parseOperator()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return Compare{Field: field, Op: op, Value: value}, nil
}

func (p *parser) parseIdentifier() (string, error) {
	p.skipWhitespace()
	start := p.pos

	for p.pos < len(p.input) {
		c, size := p.current()
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '-' {
			p.pos += size
		} else {
			break
		}
	}

	if p.pos == start {
		return "", p.errorf("expected identifier")
	}

	return p.input[start:p.pos], nil
}

// parseOperator matches the longest operator first so ">=" is never read
// as ">" with a dangling "=".
func (p *parser) parseOperator() (CompareOp, error) {
	p.skipWhitespace()

	switch {
	case p.matchStr(">="):
		return OpGe, nil
	case p.matchStr("<="):
		return OpLe, nil
	case p.matchStr("!="):
		return OpNe, nil
	case p.matchChar('='):
		return OpEq, nil
	case p.matchChar('>'):
		return OpGt, nil
	case p.matchChar('<'):
		return OpLt, nil
	}

	return 0, p.errorf("expected operator (=, !=, >, <, >=, <=)")
}

func (p *parser) parseValue() (Value, error) {
	p.skipWhitespace()

	if p.matchChar('"') {
		return p.parseString()
	}

	if p.matchKeyword("true") {
		return Bool(true), nil
	}
	if p.matchKeyword("false") {
		return Bool(false), nil
	}

	return p.parseNumberOrDate()
}

// parseString consumes up to the closing quote. There are no escape
// sequences; a quote simply ends the literal.
func (p *parser) parseString() (Value, error) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != '"' {
		p.pos++
	}
	s := p.input[start:p.pos]
	if !p.matchChar('"') {
		return nil, p.errorf("unterminated string")
	}
	return String(s), nil
}

// parseNumberOrDate consumes a run of digits, '.' and '-'. A token shaped
// like YYYY-MM-DD with month 1-12 and day 1-31 is a Date; anything else
// must parse as a float64. A bare leading '-' is rejected so a unary minus
// is never confused with a hyphen inside a date.
func (p *parser) parseNumberOrDate() (Value, error) {
	start := p.pos

	negative := p.matchChar('-')

	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			p.pos++
		} else {
			break
		}
	}

	if p.pos == start || (negative && p.pos == start+1) {
		return nil, p.errorf("expected number or date")
	}

	text := p.input[start:p.pos]

	if d, ok := tryParseDate(text); ok {
		return d, nil
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorf("invalid number")
	}
	return Number(n), nil
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.input) {
		c, size := p.current()
		if !unicode.IsSpace(c) {
			return
		}
		p.pos += size
	}
}

func (p *parser) current() (rune, int) {
	return utf8.DecodeRuneInString(p.input[p.pos:])
}

func (p *parser) matchChar(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) matchStr(s string) bool {
	if strings.HasPrefix(p.input[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

// matchKeyword matches kw case-insensitively, but only at a word boundary:
// a trailing letter, digit or underscore disqualifies the match so that
// identifiers like "android" survive intact.
func (p *parser) matchKeyword(kw string) bool {
	remaining := p.input[p.pos:]
	if len(remaining) < len(kw) {
		return false
	}
	if !strings.EqualFold(remaining[:len(kw)], kw) {
		return false
	}
	after, _ := utf8.DecodeRuneInString(remaining[len(kw):])
	if after != utf8.RuneError && (unicode.IsLetter(after) || unicode.IsDigit(after) || after == '_') {
		return false
	}
	p.pos += len(kw)
	return true
}

func (p *parser) errorf(message string) *ParseError {
	return &ParseError{Message: message, Pos: p.pos}
}

func tryParseDate(s string) (Date, bool) {
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

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, false
	}

	return Date{Year: year, Month: month, Day: day}, true
}
