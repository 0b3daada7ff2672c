package ast

import (
	"testing"

	"github.com/linuskmr/forty-two-lang/token"
)

func TestPrecedenceOrdering(t *testing.T) {
	// Comparisons < additive < multiplicative.
	if !(Less.Precedence() < Add.Precedence()) {
		t.Error("comparison should rank below addition")
	}
	if !(Add.Precedence() < Multiply.Precedence()) {
		t.Error("addition should rank below multiplication")
	}
}

func TestPrecedenceTies(t *testing.T) {
	pairs := [][2]BinaryOperator{
		{Less, Greater},
		{Add, Subtract},
		{Multiply, Divide},
	}
	for _, pair := range pairs {
		if pair[0].Precedence() != pair[1].Precedence() {
			t.Errorf("%s and %s should tie, got %d and %d",
				pair[0], pair[1], pair[0].Precedence(), pair[1].Precedence())
		}
	}
}

func TestBinaryOperatorFromToken(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want BinaryOperator
	}{
		{token.Plus, Add},
		{token.Minus, Subtract},
		{token.Star, Multiply},
		{token.Slash, Divide},
		{token.Less, Less},
		{token.Greater, Greater},
	}
	for _, tt := range tests {
		got, ok := BinaryOperatorFromToken(tt.kind)
		if !ok || got != tt.want {
			t.Errorf("BinaryOperatorFromToken(%s) = %v, %v; want %v", tt.kind, got, ok, tt.want)
		}
	}

	for _, kind := range []token.Kind{token.Ident, token.Equal, token.LParen, token.EndOfStatement} {
		if _, ok := BinaryOperatorFromToken(kind); ok {
			t.Errorf("BinaryOperatorFromToken(%s) should not succeed", kind)
		}
	}
}

func TestBasicKindFromName(t *testing.T) {
	if kind, ok := BasicKindFromName("int"); !ok || kind != Int {
		t.Errorf("got %v, %v", kind, ok)
	}
	if kind, ok := BasicKindFromName("float"); !ok || kind != Float {
		t.Errorf("got %v, %v", kind, ok)
	}
	// Anything else is a struct reference, not a basic type.
	if _, ok := BasicKindFromName("Person"); ok {
		t.Error("Person should not be a basic type")
	}
	if _, ok := BasicKindFromName(""); ok {
		t.Error("the empty string should not be a basic type")
	}
}
