package parser

import (
	"fmt"

	"github.com/linuskmr/forty-two-lang/ast"
	"github.com/linuskmr/forty-two-lang/token"
)

// parseBinaryExpression parses a primary expression, potentially followed
// by a sequence of (binary operator, primary expression).
//
// Parentheses are handled as primary expressions, so the climbing loop
// never sees them.
func (p *Parser) parseBinaryExpression() (ast.Expression, error) {
	lhs, err := p.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryOperationRHS(nil, lhs)
}

// parseBinaryOperationRHS is the precedence climbing loop. It folds
// (operator, primary expression) pairs onto lhs as long as the operator
// binds stronger than min. Operators at equal precedence are
// left-associative: `a - b - c` parses as `(a - b) - c`.
func (p *Parser) parseBinaryOperationRHS(min *ast.Operator, lhs ast.Expression) (ast.Expression, error) {
	for {
		operator, ok := p.peekOperator()
		if !ok {
			// Not an operator, so the expression ends here.
			return lhs, nil
		}
		if min != nil && operator.Kind.Precedence() <= min.Kind.Precedence() {
			// The operator binds weaker than the pending fold. Leave it
			// unconsumed for the caller.
			return lhs, nil
		}
		p.next()

		rhs, err := p.parsePrimaryExpression()
		if err != nil {
			return nil, err
		}

		// If the following operator binds stronger than the current one,
		// it takes rhs with it before lhs and rhs are folded.
		if next, ok := p.peekOperator(); ok && next.Kind.Precedence() > operator.Kind.Precedence() {
			rhs, err = p.parseBinaryOperationRHS(&operator, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = ast.BinaryExpression{Lhs: lhs, Operator: operator, Rhs: rhs}
	}
}

// peekOperator returns the binary operator at the cursor without consuming
// it. It reports false if the stream is exhausted, the expression is
// terminated by a statement end, or the token is not a binary operator.
func (p *Parser) peekOperator() (ast.Operator, bool) {
	tok, ok := p.peek()
	if !ok || tok.Kind == token.EndOfStatement {
		return ast.Operator{}, false
	}
	kind, ok := ast.BinaryOperatorFromToken(tok.Kind)
	if !ok {
		return ast.Operator{}, false
	}
	return ast.Operator{Kind: kind, Pos: tok.Pos}, true
}

// parsePrimaryExpression parses the smallest irreducible expression unit:
// a number, a variable, a function call, or a parenthesized expression.
func (p *Parser) parsePrimaryExpression() (ast.Expression, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &Error{
			Kind: ExpectedExpression,
			Msg:  "expected expression, got end of input",
			Pos:  p.lastPos,
		}
	}
	switch tok.Kind {
	case token.Ident:
		p.next()
		return p.parseIdentifierExpression(tok)
	case token.Number:
		p.next()
		return ast.Number{Value: tok.Value, Pos: tok.Pos}, nil
	case token.LParen:
		return p.parseParenExpression()
	case token.Illegal:
		return nil, &Error{
			Kind: IllegalSymbol,
			Msg:  fmt.Sprintf("illegal symbol %q", tok.Text),
			Pos:  tok.Pos,
		}
	}
	return nil, &Error{
		Kind: ExpectedExpression,
		Msg:  fmt.Sprintf("expected expression, got %s", tok),
		Pos:  tok.Pos,
	}
}

// parseIdentifierExpression disambiguates a variable reference from a
// function call. The identifier token is already consumed; an opening
// parenthesis directly after it makes this a call.
func (p *Parser) parseIdentifierExpression(ident token.Token) (ast.Expression, error) {
	if ident.Text == "" {
		panic("parser: lexer emitted an empty identifier")
	}
	if p.peekIs(token.LParen) {
		return p.parseFunctionCall(ident)
	}
	return ast.Variable{Name: ident.Text, Pos: ident.Pos}, nil
}

// parseFunctionCall parses the argument list of a call like `add(2, 3)`.
// The name is already consumed and the cursor is on the opening
// parenthesis.
func (p *Parser) parseFunctionCall(name token.Token) (ast.Expression, error) {
	lparen, _ := p.next()
	if lparen.Kind != token.LParen {
		panic("parser: parseFunctionCall called without `(` lookahead")
	}

	var args []ast.Expression
	if !p.peekIs(token.RParen) {
		for {
			arg, err := p.parseBinaryExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if !p.peekIs(token.Comma) {
				break
			}
			p.next()
		}
	}
	closing, err := p.expectSymbol(token.RParen, ")")
	if err != nil {
		return nil, err
	}

	return ast.FunctionCall{
		Name: ast.Identifier{Name: name.Text, Pos: name.Pos},
		Args: args,
		Pos:  name.Pos.Union(closing.Pos),
	}, nil
}

// parseParenExpression parses `( expression )`. The parentheses produce no
// AST node of their own; grouping is expressed by the tree structure.
func (p *Parser) parseParenExpression() (ast.Expression, error) {
	lparen, _ := p.next()
	if lparen.Kind != token.LParen {
		panic("parser: parseParenExpression called without `(` lookahead")
	}
	inner, err := p.parseBinaryExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(token.RParen, ")"); err != nil {
		return nil, err
	}
	return inner, nil
}
