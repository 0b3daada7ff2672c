// Package lexer turns fortytwo-lang source text into a stream of positioned
// tokens. The stream is single-pass and peekable with one token of
// lookahead, which is all the parser needs.
package lexer

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/linuskmr/forty-two-lang/token"
)

var keywords = map[string]token.Kind{
	"def":    token.Def,
	"extern": token.Extern,
	"ret":    token.Ret,
	"struct": token.StructKeyword,
	"ptr":    token.Ptr,
}

var singleChars = map[rune]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	':': token.Colon,
	',': token.Comma,
	'=': token.Equal,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'<': token.Less,
	'>': token.Greater,
}

type Lexer struct {
	reader *bufio.Reader
	// pos is the position of cur in the source text.
	pos    token.Position
	cur    rune
	eof    bool
	peeked *token.Token
}

func New(reader io.Reader) *Lexer {
	l := &Lexer{
		reader: bufio.NewReader(reader),
		pos:    token.Position{Line: 1, Column: 1, Offset: 0},
	}
	l.cur = l.read()
	return l
}

func (l *Lexer) read() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			panic(err)
		}
		l.eof = true
		return 0
	}
	return r
}

// advance moves to the next rune, updating line, column and offset.
func (l *Lexer) advance() {
	if l.eof {
		return
	}
	if l.cur == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	l.pos.Offset++
	l.cur = l.read()
}

// Peek returns the next token without consuming it. The second return value
// is false at the end of the input.
func (l *Lexer) Peek() (token.Token, bool) {
	if l.peeked != nil {
		return *l.peeked, true
	}
	tok, ok := l.lex()
	if !ok {
		return token.Token{}, false
	}
	l.peeked = &tok
	return tok, true
}

// Next consumes and returns the next token. The second return value is
// false at the end of the input; the end of input is not an error.
func (l *Lexer) Next() (token.Token, bool) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, true
	}
	return l.lex()
}

func (l *Lexer) lex() (token.Token, bool) {
	// Newlines terminate statements, so only horizontal whitespace is
	// skipped here.
	for !l.eof && l.cur != '\n' && unicode.IsSpace(l.cur) {
		l.advance()
	}
	if l.eof {
		return token.Token{}, false
	}

	switch {
	case l.cur == '\n' || l.cur == ';':
		return l.single(token.EndOfStatement), true
	case firstIdentChar(l.cur):
		return l.lexIdent(), true
	case unicode.IsDigit(l.cur):
		return l.lexNumber(), true
	}

	if kind, ok := singleChars[l.cur]; ok {
		return l.single(kind), true
	}

	tok := token.Token{
		Kind: token.Illegal,
		Text: string(l.cur),
		Pos:  token.PositionRange{Start: l.pos, End: l.pos},
	}
	l.advance()
	return tok, true
}

func (l *Lexer) single(kind token.Kind) token.Token {
	tok := token.Token{
		Kind: kind,
		Pos:  token.PositionRange{Start: l.pos, End: l.pos},
	}
	l.advance()
	return tok
}

func firstIdentChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func otherIdentChar(r rune) bool {
	return firstIdentChar(r) || unicode.IsDigit(r)
}

func (l *Lexer) lexIdent() token.Token {
	start := l.pos
	end := l.pos
	var text strings.Builder
	for !l.eof && otherIdentChar(l.cur) {
		text.WriteRune(l.cur)
		end = l.pos
		l.advance()
	}

	lit := text.String()
	pos := token.PositionRange{Start: start, End: end}
	if kind, ok := keywords[lit]; ok {
		return token.Token{Kind: kind, Text: lit, Pos: pos}
	}
	return token.Token{Kind: token.Ident, Text: lit, Pos: pos}
}

func (l *Lexer) lexNumber() token.Token {
	start := l.pos
	end := l.pos
	var digits strings.Builder
	seenDot := false
	for !l.eof && (unicode.IsDigit(l.cur) || (l.cur == '.' && !seenDot)) {
		if l.cur == '.' {
			seenDot = true
		}
		digits.WriteRune(l.cur)
		end = l.pos
		l.advance()
	}

	lit := digits.String()
	pos := token.PositionRange{Start: start, End: end}
	value, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return token.Token{Kind: token.Illegal, Text: lit, Pos: pos}
	}
	return token.Token{Kind: token.Number, Value: value, Pos: pos}
}
