package parser

import (
	"fmt"

	"github.com/linuskmr/forty-two-lang/token"
)

// ErrorKind is the closed set of syntax error classes.
type ErrorKind int

const (
	// IllegalToken means the grammar required a different token class,
	// e.g. an identifier where a number was found.
	IllegalToken ErrorKind = iota
	// IllegalSymbol means the tokenizer produced an illegal token, i.e.
	// a character that is not part of the language.
	IllegalSymbol
	// ExpectedSymbol means a specific punctuation symbol like `(` or `:`
	// was missing or wrong.
	ExpectedSymbol
	// ExpectedExpression means a primary expression was required but none
	// could start at the current token.
	ExpectedExpression
)

func (k ErrorKind) String() string {
	switch k {
	case IllegalToken:
		return "illegal token"
	case IllegalSymbol:
		return "illegal symbol"
	case ExpectedSymbol:
		return "expected symbol"
	case ExpectedExpression:
		return "expected expression"
	}
	return "unknown error"
}

// Error is a syntax error pinpointing the exact source range of the
// failure. The parser surfaces the first error unchanged; there is no
// recovery and no wrapping of inner errors into different kinds.
type Error struct {
	Kind ErrorKind
	Msg  string
	Pos  token.PositionRange
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Msg)
}
