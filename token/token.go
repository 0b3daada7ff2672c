// Package token defines the lexical tokens of fortytwo-lang and the source
// positions attached to them.
package token

import (
	"fmt"
)

// Position is a single location in the source text. Line and Column are
// 1-based, Offset counts runes from the start of the input and is 0-based.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes before other in the source text.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// PositionRange is a span of source text from Start to End, both inclusive.
type PositionRange struct {
	Start Position
	End   Position
}

func (r PositionRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Union returns the smallest range covering both r and other.
func (r PositionRange) Union(other PositionRange) PositionRange {
	merged := r
	if other.Start.Before(merged.Start) {
		merged.Start = other.Start
	}
	if merged.End.Before(other.End) {
		merged.End = other.End
	}
	return merged
}

type Kind int

const (
	Illegal Kind = iota

	Ident
	Number

	Def
	Extern
	Ret
	StructKeyword
	Ptr

	LParen
	RParen
	LBrace
	RBrace
	Colon
	Comma
	Equal
	EndOfStatement

	Plus
	Minus
	Star
	Slash
	Less
	Greater
)

func (k Kind) String() string {
	data := map[Kind]string{
		Illegal:        "ILLEGAL",
		Ident:          "IDENT",
		Number:         "NUMBER",
		Def:            "DEF",
		Extern:         "EXTERN",
		Ret:            "RET",
		StructKeyword:  "STRUCT",
		Ptr:            "PTR",
		LParen:         "LPAREN",
		RParen:         "RPAREN",
		LBrace:         "LBRACE",
		RBrace:         "RBRACE",
		Colon:          "COLON",
		Comma:          "COMMA",
		Equal:          "EQUAL",
		EndOfStatement: "EOS",
		Plus:           "PLUS",
		Minus:          "MINUS",
		Star:           "STAR",
		Slash:          "SLASH",
		Less:           "LESS",
		Greater:        "GREATER",
	}
	return data[k]
}

// Token is one classified lexical unit. Text is set for Ident and Illegal
// tokens, Value for Number tokens.
type Token struct {
	Kind  Kind
	Text  string
	Value float64
	Pos   PositionRange
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, Illegal:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	case Number:
		return fmt.Sprintf("%s(%v)", t.Kind, t.Value)
	}
	return t.Kind.String()
}
