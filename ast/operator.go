package ast

import (
	"github.com/linuskmr/forty-two-lang/token"
)

// BinaryOperator connects the lhs and rhs of a BinaryExpression.
type BinaryOperator int

const (
	Less BinaryOperator = iota
	Greater
	Add
	Subtract
	Multiply
	Divide
)

// Precedence ranks operators for the climbing algorithm. A higher number
// binds tighter. Comparisons rank below additive operators, which rank
// below multiplicative operators; Add/Subtract and Multiply/Divide tie.
func (op BinaryOperator) Precedence() int {
	switch op {
	case Less, Greater:
		return 10
	case Add, Subtract:
		return 20
	case Multiply, Divide:
		return 30
	}
	panic("ast: unknown binary operator")
}

func (op BinaryOperator) String() string {
	switch op {
	case Less:
		return "<"
	case Greater:
		return ">"
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return "?"
}

// BinaryOperatorFromToken converts an operator token kind to its
// BinaryOperator. The second return value is false if the kind is not a
// binary operator.
func BinaryOperatorFromToken(kind token.Kind) (BinaryOperator, bool) {
	switch kind {
	case token.Less:
		return Less, true
	case token.Greater:
		return Greater, true
	case token.Plus:
		return Add, true
	case token.Minus:
		return Subtract, true
	case token.Star:
		return Multiply, true
	case token.Slash:
		return Divide, true
	}
	return 0, false
}
