package main

import (
	"github.com/spf13/cobra"
)

type Lox struct {
	Output string `usage:"Output format for the ast command (json or yaml)" short:"o" default:"json"`
}

func (l *Lox) Customize(cmd *cobra.Command) {
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SilenceUsage = true
	cmd.AddCommand(NewRun(l))
	cmd.AddCommand(NewAST(l))
}

func (l *Lox) Run(cmd *cobra.Command, args []string) error {
	return cmd.Usage()
}
