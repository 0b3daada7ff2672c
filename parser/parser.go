// Package parser builds an abstract syntax tree from a stream of tokens.
//
// The parser is a hand-written recursive descent parser with one token of
// lookahead and no backtracking: once a token is consumed it is never
// un-consumed. Binary expressions are resolved with precedence climbing,
// see expression.go.
package parser

import (
	"fmt"
	"io"

	"github.com/linuskmr/forty-two-lang/ast"
	"github.com/linuskmr/forty-two-lang/token"
)

// TokenStream is the parser's view of the tokenizer: a deterministic,
// single-pass sequence of tokens with non-consuming one-token lookahead.
// The second return value is false at the end of the input; the end of
// input is not an error.
type TokenStream interface {
	Peek() (token.Token, bool)
	Next() (token.Token, bool)
}

type Parser struct {
	tokens TokenStream
	// lastPos is the range of the most recently consumed token. Errors at
	// the end of the input point here rather than at a zero position.
	lastPos token.PositionRange
}

func New(tokens TokenStream) *Parser {
	return &Parser{tokens: tokens}
}

// Next parses and returns the next top-level node. It returns io.EOF once
// the token stream is exhausted. The first syntax error aborts the current
// top-level parse; this parser does no error recovery, so consumers should
// treat an error other than io.EOF as terminal.
func (p *Parser) Next() (ast.Node, error) {
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, io.EOF
		}

		switch tok.Kind {
		case token.EndOfStatement:
			// Empty statement, skip.
			p.next()
		case token.Def:
			return p.parseFunctionDefinition()
		case token.Extern:
			return p.parseExternFunction()
		case token.StructKeyword:
			return p.parseStructDefinition()
		case token.Ret:
			return p.parseReturn()
		case token.Ident:
			return p.parseIdentifierStatement()
		default:
			return p.parseTopLevelExpression()
		}
	}
}

// ParseAll drains the parser, collecting every top-level node until the
// token stream is exhausted or a syntax error occurs.
func (p *Parser) ParseAll() ([]ast.Node, error) {
	var nodes []ast.Node
	for {
		node, err := p.Next()
		if err == io.EOF {
			return nodes, nil
		}
		if err != nil {
			return nodes, err
		}
		nodes = append(nodes, node)
	}
}

func (p *Parser) peek() (token.Token, bool) {
	return p.tokens.Peek()
}

func (p *Parser) peekIs(kinds ...token.Kind) bool {
	tok, ok := p.peek()
	if !ok {
		return false
	}
	for _, kind := range kinds {
		if tok.Kind == kind {
			return true
		}
	}
	return false
}

func (p *Parser) next() (token.Token, bool) {
	tok, ok := p.tokens.Next()
	if ok {
		p.lastPos = tok.Pos
	}
	return tok, ok
}

// expectSymbol consumes the next token, which must be the punctuation
// symbol of the given kind.
func (p *Parser) expectSymbol(kind token.Kind, symbol string) (token.Token, error) {
	tok, ok := p.next()
	if !ok {
		return token.Token{}, &Error{
			Kind: ExpectedSymbol,
			Msg:  fmt.Sprintf("expected `%s`, got end of input", symbol),
			Pos:  p.lastPos,
		}
	}
	if tok.Kind != kind {
		return token.Token{}, &Error{
			Kind: ExpectedSymbol,
			Msg:  fmt.Sprintf("expected `%s`, got %s", symbol, tok),
			Pos:  tok.Pos,
		}
	}
	return tok, nil
}

// expectIdentifier consumes the next token, which must be an identifier.
// what names the grammar slot for the error message, e.g. "function name".
func (p *Parser) expectIdentifier(what string) (ast.Identifier, error) {
	tok, ok := p.next()
	if !ok {
		return ast.Identifier{}, &Error{
			Kind: IllegalToken,
			Msg:  fmt.Sprintf("expected %s, got end of input", what),
			Pos:  p.lastPos,
		}
	}
	if tok.Kind != token.Ident {
		return ast.Identifier{}, &Error{
			Kind: IllegalToken,
			Msg:  fmt.Sprintf("expected %s, got %s", what, tok),
			Pos:  tok.Pos,
		}
	}
	return ast.Identifier{Name: tok.Text, Pos: tok.Pos}, nil
}

// parseFunctionDefinition parses `def prototype body`, e.g.
// `def add(x: int, y: int) x + y`.
func (p *Parser) parseFunctionDefinition() (ast.Node, error) {
	tok, _ := p.next()
	if tok.Kind != token.Def {
		panic("parser: parseFunctionDefinition called without `def` lookahead")
	}
	prototype, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBinaryExpression()
	if err != nil {
		return nil, err
	}
	return ast.Function{Prototype: prototype, Body: body}, nil
}

// parseExternFunction parses `extern prototype`, a function declaration
// without a body, e.g. `extern write(fd: int, buf: ptr char, count: int)`.
func (p *Parser) parseExternFunction() (ast.Node, error) {
	tok, _ := p.next()
	if tok.Kind != token.Extern {
		panic("parser: parseExternFunction called without `extern` lookahead")
	}
	return p.parsePrototype()
}

// parsePrototype parses a function name followed by a parenthesized
// argument list, e.g. `foo(x: int, y: float)`.
func (p *Parser) parsePrototype() (ast.Prototype, error) {
	name, err := p.expectIdentifier("function name")
	if err != nil {
		return ast.Prototype{}, err
	}
	if _, err := p.expectSymbol(token.LParen, "("); err != nil {
		return ast.Prototype{}, err
	}
	args, err := p.parseArgumentList()
	if err != nil {
		return ast.Prototype{}, err
	}
	if _, err := p.expectSymbol(token.RParen, ")"); err != nil {
		return ast.Prototype{}, err
	}
	return ast.Prototype{Name: name, Args: args}, nil
}

// parseArgumentList parses zero or more `name: type` pairs separated by
// commas. The list ends at the first token that does not start an
// argument, so an empty list is valid.
func (p *Parser) parseArgumentList() ([]ast.FunctionArgument, error) {
	var args []ast.FunctionArgument
	if !p.peekIs(token.Ident) {
		return args, nil
	}
	for {
		name, err := p.expectIdentifier("argument name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expectSymbol(token.Colon, ":"); err != nil {
			return nil, err
		}
		dataType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, ast.FunctionArgument{Name: name, DataType: dataType})

		// No comma after this argument means it was the last one.
		if !p.peekIs(token.Comma) {
			return args, nil
		}
		p.next()
	}
}

// parseType parses a data type: a pointer (`ptr int`, `ptr ptr int`, ...),
// a basic type (`int`, `float`), or any other identifier as an unresolved
// struct reference. Struct names are resolved by a later compilation
// phase, since the definition may appear further down the input.
func (p *Parser) parseType() (ast.DataType, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &Error{
			Kind: IllegalToken,
			Msg:  "expected type, got end of input",
			Pos:  p.lastPos,
		}
	}
	switch tok.Kind {
	case token.Ptr:
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.PointerType{
			Inner: inner,
			Pos:   tok.Pos.Union(inner.Position()),
		}, nil
	case token.Ident:
		if kind, ok := ast.BasicKindFromName(tok.Text); ok {
			return ast.BasicType{Kind: kind, Pos: tok.Pos}, nil
		}
		return ast.StructType{Name: tok.Text, Pos: tok.Pos}, nil
	}
	return nil, &Error{
		Kind: IllegalToken,
		Msg:  fmt.Sprintf("expected type, got %s", tok),
		Pos:  tok.Pos,
	}
}

// parseIdentifierStatement dispatches a top-level item that starts with an
// identifier: `name: type = value` is a variable declaration, `name = value`
// a variable assignment, and anything else the start of an expression. The
// identifier is consumed before deciding and handed down, so a single
// token of lookahead suffices.
func (p *Parser) parseIdentifierStatement() (ast.Node, error) {
	ident, _ := p.next()
	if ident.Text == "" {
		panic("parser: lexer emitted an empty identifier")
	}
	name := ast.Identifier{Name: ident.Text, Pos: ident.Pos}

	switch {
	case p.peekIs(token.Colon):
		return p.parseVariableDeclaration(name)
	case p.peekIs(token.Equal):
		return p.parseVariableAssignment(name)
	}

	lhs, err := p.parseIdentifierExpression(ident)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBinaryOperationRHS(nil, lhs)
	if err != nil {
		return nil, err
	}
	return wrapTopLevel(body, ident.Pos.Start.Line), nil
}

// parseVariableDeclaration parses `name: type = value` with the name
// already consumed.
func (p *Parser) parseVariableDeclaration(name ast.Identifier) (ast.Node, error) {
	if _, err := p.expectSymbol(token.Colon, ":"); err != nil {
		return nil, err
	}
	dataType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.Equal, "="); err != nil {
		return nil, err
	}
	value, err := p.parseBinaryExpression()
	if err != nil {
		return nil, err
	}
	return ast.VariableDeclaration{Name: name, DataType: dataType, Value: value}, nil
}

// parseVariableAssignment parses `name = value` with the name already
// consumed.
func (p *Parser) parseVariableAssignment(name ast.Identifier) (ast.Node, error) {
	if _, err := p.expectSymbol(token.Equal, "="); err != nil {
		return nil, err
	}
	value, err := p.parseBinaryExpression()
	if err != nil {
		return nil, err
	}
	return ast.VariableAssignment{Name: name, Value: value}, nil
}

// parseReturn parses `ret value`.
func (p *Parser) parseReturn() (ast.Node, error) {
	tok, _ := p.next()
	if tok.Kind != token.Ret {
		panic("parser: parseReturn called without `ret` lookahead")
	}
	value, err := p.parseBinaryExpression()
	if err != nil {
		return nil, err
	}
	return ast.Return{Value: value, Pos: tok.Pos.Union(value.Position())}, nil
}

// parseStructDefinition parses `struct Name { field: type ... }`. Fields
// are separated by commas or statement ends. Field name uniqueness is left
// to semantic analysis.
func (p *Parser) parseStructDefinition() (ast.Node, error) {
	structTok, _ := p.next()
	if structTok.Kind != token.StructKeyword {
		panic("parser: parseStructDefinition called without `struct` lookahead")
	}
	name, err := p.expectIdentifier("struct name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.LBrace, "{"); err != nil {
		return nil, err
	}

	var fields []ast.StructField
	for {
		if p.peekIs(token.EndOfStatement, token.Comma) {
			p.next()
			continue
		}
		if p.peekIs(token.RBrace) {
			break
		}
		fieldName, err := p.expectIdentifier("field name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expectSymbol(token.Colon, ":"); err != nil {
			return nil, err
		}
		dataType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.StructField{Name: fieldName, DataType: dataType})

		if !p.peekIs(token.Comma, token.EndOfStatement, token.RBrace) {
			tok, _ := p.peek()
			return nil, &Error{
				Kind: ExpectedSymbol,
				Msg:  fmt.Sprintf("expected `,` or `}` after struct field, got %s", tok),
				Pos:  p.currentPosition(),
			}
		}
	}
	closing, err := p.expectSymbol(token.RBrace, "}")
	if err != nil {
		return nil, err
	}
	return ast.StructDefinition{
		Name:   name,
		Fields: fields,
		Pos:    structTok.Pos.Union(closing.Pos),
	}, nil
}

// parseTopLevelExpression parses a bare expression at the top level and
// wraps it in an anonymous zero-argument function, so that every top-level
// item is uniformly a statement for the downstream stage.
func (p *Parser) parseTopLevelExpression() (ast.Node, error) {
	tok, _ := p.peek()
	body, err := p.parseBinaryExpression()
	if err != nil {
		return nil, err
	}
	return wrapTopLevel(body, tok.Pos.Start.Line), nil
}

// wrapTopLevel wraps a top-level expression in a function named after the
// line the expression starts on.
func wrapTopLevel(body ast.Expression, line int) ast.Node {
	return ast.Function{
		Prototype: ast.Prototype{
			Name: ast.Identifier{
				Name: fmt.Sprintf("__main_line_%d", line),
				Pos:  body.Position(),
			},
		},
		Body: body,
	}
}

// currentPosition is the range of the token at the cursor, or of the last
// consumed token if the stream is exhausted.
func (p *Parser) currentPosition() token.PositionRange {
	if tok, ok := p.peek(); ok {
		return tok.Pos
	}
	return p.lastPos
}
