// Package eval walks the syntax tree, producing values for expressions
// and output for print statements.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/saivishnu725/jlox-old-v2/ast"
	"github.com/saivishnu725/jlox-old-v2/token"
	"github.com/saivishnu725/jlox-old-v2/value"
)

// RuntimeError is a failure detected during evaluation, tied to the
// operator token that caused it.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Token.Pos.Line, e.Message)
}

type Interpreter struct {
	Stdout io.Writer
}

func New(stdout io.Writer) *Interpreter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Interpreter{Stdout: stdout}
}

// Interpret executes statements strictly in order. The first runtime
// error aborts the rest of the sequence and is returned to the caller;
// there is no per-statement recovery.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) Execute(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case *ast.ExprStmt:
		_, err := i.Evaluate(stmt.Expr)
		return err
	case *ast.PrintStmt:
		v, err := i.Evaluate(stmt.Expr)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(i.Stdout, value.ToString(v))
		return err
	}
	return fmt.Errorf("unknown statement %T", stmt)
}

func (i *Interpreter) Evaluate(expr ast.Expr) (value.Value, error) {
	switch expr := expr.(type) {
	case *ast.Literal:
		return expr.Value, nil
	case *ast.Grouping:
		return i.Evaluate(expr.Expr)
	case *ast.Unary:
		return i.evalUnary(expr)
	case *ast.Binary:
		return i.evalBinary(expr)
	}
	return nil, fmt.Errorf("unknown expression %T", expr)
}

func (i *Interpreter) evalUnary(expr *ast.Unary) (value.Value, error) {
	right, err := i.Evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Kind {
	case token.Bang:
		return value.NewBoolean(!value.IsTruthy(right)), nil
	case token.Minus:
		n, err := numberOperand(expr.Operator, right)
		if err != nil {
			return nil, err
		}
		return value.Number(-n), nil
	}
	return nil, fmt.Errorf("unknown unary operator %s", expr.Operator.Kind)
}

// evalBinary always evaluates both sides, left first; there is no
// short-circuiting at this node kind.
func (i *Interpreter) evalBinary(expr *ast.Binary) (value.Value, error) {
	left, err := i.Evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.Evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Kind {
	case token.Greater:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.NewBoolean(l > r), nil
	case token.GreaterEqual:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.NewBoolean(l >= r), nil
	case token.Less:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.NewBoolean(l < r), nil
	case token.LessEqual:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.NewBoolean(l <= r), nil
	case token.Minus:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Number(l - r), nil
	case token.Slash:
		// Beyond the operand check, division is unguarded; x/0
		// follows IEEE-754 and prints as +Inf.
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Number(l / r), nil
	case token.Star:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Number(l * r), nil
	case token.Plus:
		return add(expr.Operator, left, right)
	case token.BangEqual:
		return value.NewBoolean(!value.Equal(left, right)), nil
	case token.EqualEqual:
		return value.NewBoolean(value.Equal(left, right)), nil
	}
	return nil, fmt.Errorf("unknown binary operator %s", expr.Operator.Kind)
}

// add sums two numbers or concatenates two strings. Mixed operands are
// an error; there is no implicit coercion between numbers and strings.
func add(op token.Token, left, right value.Value) (value.Value, error) {
	if l, ok := value.ToFloat(left); ok {
		if r, ok := value.ToFloat(right); ok {
			return value.Number(l + r), nil
		}
	}
	if l, ok := left.(value.String); ok {
		if r, ok := right.(value.String); ok {
			return l + r, nil
		}
	}
	return nil, &RuntimeError{Token: op, Message: "Operands must be 2 numbers or 2 strings."}
}

func numberOperand(op token.Token, v value.Value) (float64, error) {
	n, ok := value.ToFloat(v)
	if !ok {
		return 0, &RuntimeError{Token: op, Message: "Operand must be a number."}
	}
	return n, nil
}

func numberOperands(op token.Token, left, right value.Value) (float64, float64, error) {
	l, err := numberOperand(op, left)
	if err != nil {
		return 0, 0, err
	}
	r, err := numberOperand(op, right)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}
