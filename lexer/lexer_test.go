package lexer

import (
	"strings"
	"testing"

	"github.com/linuskmr/forty-two-lang/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(strings.NewReader(src))
	var tokens []token.Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func wantKinds(t *testing.T, src string, kinds ...token.Kind) []token.Token {
	t.Helper()
	tokens := lexAll(t, src)
	if len(tokens) != len(kinds) {
		t.Fatalf("lexing %q: got %d tokens, want %d\ntokens: %v", src, len(tokens), len(kinds), tokens)
	}
	for i, kind := range kinds {
		if tokens[i].Kind != kind {
			t.Fatalf("lexing %q: token %d is %s, want %s", src, i, tokens[i].Kind, kind)
		}
	}
	return tokens
}

func TestKinds(t *testing.T) {
	wantKinds(t, "def extern ret struct ptr foo 42 ( ) { } : , = + - * / < > ;",
		token.Def, token.Extern, token.Ret, token.StructKeyword, token.Ptr,
		token.Ident, token.Number,
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.Colon, token.Comma, token.Equal,
		token.Plus, token.Minus, token.Star, token.Slash,
		token.Less, token.Greater, token.EndOfStatement,
	)
}

func TestKeywordsAreWholeWords(t *testing.T) {
	tokens := wantKinds(t, "define def int", token.Ident, token.Def, token.Ident)
	if tokens[0].Text != "define" {
		t.Errorf("got text %q, want %q", tokens[0].Text, "define")
	}
	// int and float are ordinary identifiers; the parser classifies them.
	if tokens[2].Text != "int" {
		t.Errorf("got text %q, want %q", tokens[2].Text, "int")
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"42", 42},
		{"4.2", 4.2},
		{"0.5", 0.5},
		{"1337", 1337},
	}
	for _, tt := range tests {
		tokens := wantKinds(t, tt.src, token.Number)
		if tokens[0].Value != tt.want {
			t.Errorf("lexing %q: got value %v, want %v", tt.src, tokens[0].Value, tt.want)
		}
	}
}

func TestNumberWithTwoDots(t *testing.T) {
	// The second dot does not belong to the number and is not a valid
	// token on its own.
	tokens := wantKinds(t, "1.2.3", token.Number, token.Illegal, token.Number)
	if tokens[0].Value != 1.2 {
		t.Errorf("got value %v, want 1.2", tokens[0].Value)
	}
	if tokens[1].Text != "." {
		t.Errorf("got text %q, want %q", tokens[1].Text, ".")
	}
}

func TestIllegalRune(t *testing.T) {
	tokens := wantKinds(t, "@", token.Illegal)
	if tokens[0].Text != "@" {
		t.Errorf("got text %q, want %q", tokens[0].Text, "@")
	}
}

func TestPositions(t *testing.T) {
	tokens := lexAll(t, "foo + 1\nbar")
	want := []token.PositionRange{
		{Start: token.Position{Line: 1, Column: 1, Offset: 0}, End: token.Position{Line: 1, Column: 3, Offset: 2}},
		{Start: token.Position{Line: 1, Column: 5, Offset: 4}, End: token.Position{Line: 1, Column: 5, Offset: 4}},
		{Start: token.Position{Line: 1, Column: 7, Offset: 6}, End: token.Position{Line: 1, Column: 7, Offset: 6}},
		{Start: token.Position{Line: 1, Column: 8, Offset: 7}, End: token.Position{Line: 1, Column: 8, Offset: 7}},
		{Start: token.Position{Line: 2, Column: 1, Offset: 8}, End: token.Position{Line: 2, Column: 3, Offset: 10}},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, pos := range want {
		if tokens[i].Pos != pos {
			t.Errorf("token %d (%s): got position %s, want %s", i, tokens[i], tokens[i].Pos, pos)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New(strings.NewReader("a b"))
	first, ok := l.Peek()
	if !ok {
		t.Fatal("Peek returned no token")
	}
	again, _ := l.Peek()
	if first != again {
		t.Fatalf("two peeks disagree: %v vs %v", first, again)
	}
	next, _ := l.Next()
	if next != first {
		t.Fatalf("Next returned %v, Peek promised %v", next, first)
	}
	second, _ := l.Next()
	if second.Text != "b" {
		t.Fatalf("got %v, want identifier b", second)
	}
	if _, ok := l.Next(); ok {
		t.Fatal("expected end of input")
	}
}

func TestEmptyInput(t *testing.T) {
	if tokens := lexAll(t, ""); len(tokens) != 0 {
		t.Fatalf("got %v, want no tokens", tokens)
	}
	if tokens := lexAll(t, "   \t  "); len(tokens) != 0 {
		t.Fatalf("got %v, want no tokens", tokens)
	}
}

func TestSemicolonAndNewlineEndStatements(t *testing.T) {
	wantKinds(t, "1;2\n3",
		token.Number, token.EndOfStatement, token.Number,
		token.EndOfStatement, token.Number,
	)
}
