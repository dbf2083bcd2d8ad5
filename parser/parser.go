// Package parser builds a syntax tree from the scanner's tokens using
// recursive descent, one level per precedence tier.
package parser

import (
	"fmt"
	"strconv"

	"github.com/saivishnu725/jlox-old-v2/ast"
	"github.com/saivishnu725/jlox-old-v2/token"
	"github.com/saivishnu725/jlox-old-v2/value"
)

// SyntaxError is a parse failure at a specific token.
type SyntaxError struct {
	Token   token.Token
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Token.Kind == token.EOF {
		return fmt.Sprintf("[line %d] error at end: %s", e.Token.Pos.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] error at '%s': %s", e.Token.Pos.Line, e.Token.Lexeme, e.Message)
}

type parser struct {
	tokens  []token.Token
	current int
}

// Parse consumes a token stream ending in an EOF token, as produced by
// scanner.Scan, and returns the program's statements. The first syntax
// error aborts the parse.
func Parse(tokens []token.Token) ([]ast.Stmt, error) {
	p := &parser{tokens: tokens}
	var stmts []ast.Stmt
	for !p.check(token.EOF) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *parser) statement() (ast.Stmt, error) {
	if p.match(token.Print) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.Semicolon, "Expect ';' after value."); err != nil {
			return nil, err
		}
		return &ast.PrintStmt{Expr: expr}, nil
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

func (p *parser) expression() (ast.Expr, error) {
	return p.equality()
}

func (p *parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *parser) comparison() (ast.Expr, error) {
	return p.binary(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *parser) term() (ast.Expr, error) {
	return p.binary(p.factor, token.Minus, token.Plus)
}

func (p *parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, token.Slash, token.Star)
}

// binary parses a left-associative run of operators at one precedence
// tier, with operand parsing the next tighter tier.
func (p *parser) binary(operand func() (ast.Expr, error), kinds ...token.Kind) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func (p *parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Right: right}, nil
	}
	return p.primary()
}

func (p *parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: value.False}, nil
	case p.match(token.True):
		return &ast.Literal{Value: value.True}, nil
	case p.match(token.Nil):
		return &ast.Literal{Value: value.NewNull()}, nil
	case p.match(token.Number):
		n, err := strconv.ParseFloat(p.previous().Lexeme, 64)
		if err != nil {
			return nil, &SyntaxError{Token: p.previous(), Message: "Invalid number."}
		}
		return &ast.Literal{Value: value.Number(n)}, nil
	case p.match(token.String):
		return &ast.Literal{Value: value.String(p.previous().Lexeme)}, nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expr: expr}, nil
	}
	return nil, &SyntaxError{Token: p.peek(), Message: "Expect expression."}
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) expect(kind token.Kind, message string) error {
	if p.match(kind) {
		return nil
	}
	return &SyntaxError{Token: p.peek(), Message: message}
}

func (p *parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *parser) previous() token.Token {
	return p.tokens[p.current-1]
}
