package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/acorn-io/cmd"
	lox "github.com/saivishnu725/jlox-old-v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type AST struct {
	lox *Lox
}

func NewAST(l *Lox) *cobra.Command {
	return cmd.Command(&AST{lox: l}, cobra.Command{
		Use:   "ast FILE",
		Short: "Parse a script and print its syntax tree",
		Args:  cobra.ExactArgs(1),
	})
}

func (a *AST) Run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	stmts, err := lox.Parse(data, lox.Option{
		SourceName: args[0],
	})
	if err != nil {
		return err
	}

	if a.lox.Output == "yaml" {
		out, err := yaml.Marshal(stmts)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}

	out, err := json.MarshalIndent(stmts, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
