// Package lox runs Lox scripts: scan, parse, then tree-walk.
package lox

import (
	"fmt"
	"io"

	"github.com/saivishnu725/jlox-old-v2/ast"
	"github.com/saivishnu725/jlox-old-v2/eval"
	"github.com/saivishnu725/jlox-old-v2/parser"
	"github.com/saivishnu725/jlox-old-v2/scanner"
)

type Option struct {
	// SourceName labels errors from this source, typically the file
	// name.
	SourceName string
	// Stdout receives program output. Defaults to os.Stdout.
	Stdout io.Writer
}

func (o Option) Complete() Option {
	if o.SourceName == "" {
		o.SourceName = "<inline>"
	}
	return o
}

type Options []Option

func (o Options) Merge() (result Option) {
	for _, opt := range o {
		if opt.SourceName != "" {
			result.SourceName = opt.SourceName
		}
		if opt.Stdout != nil {
			result.Stdout = opt.Stdout
		}
	}
	return
}

// Parse scans and parses src, returning the program's statements.
func Parse(src []byte, opts ...Option) ([]ast.Stmt, error) {
	o := Options(opts).Merge().Complete()

	tokens, err := scanner.Scan(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.SourceName, err)
	}

	stmts, err := parser.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.SourceName, err)
	}

	return stmts, nil
}

// Run parses and interprets src. Program output is written to the
// Stdout option; the first runtime error aborts the script and is
// returned.
func Run(src []byte, opts ...Option) error {
	o := Options(opts).Merge().Complete()

	stmts, err := Parse(src, o)
	if err != nil {
		return err
	}

	if err := eval.New(o.Stdout).Interpret(stmts); err != nil {
		return fmt.Errorf("%s: %w", o.SourceName, err)
	}
	return nil
}
