// Package ast defines the syntax tree the parser produces and the
// evaluator walks. Nodes are immutable once built; the evaluator only
// reads them.
package ast

import (
	"github.com/saivishnu725/jlox-old-v2/token"
	"github.com/saivishnu725/jlox-old-v2/value"
)

// Expr is implemented by all expression nodes.
type Expr interface {
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	stmtNode()
}

// Literal holds a value produced directly by the source text.
type Literal struct {
	Value value.Value
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Expr Expr
}

type Unary struct {
	Operator token.Token
	Right    Expr
}

type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}

// ExprStmt evaluates an expression for its effects and discards the
// result.
type ExprStmt struct {
	Expr Expr
}

// PrintStmt evaluates an expression and prints the result.
type PrintStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode()  {}
func (*PrintStmt) stmtNode() {}
