package main

import (
	"os"

	"github.com/acorn-io/cmd"
	lox "github.com/saivishnu725/jlox-old-v2"
	"github.com/spf13/cobra"
)

type Run struct {
	lox *Lox
}

func NewRun(l *Lox) *cobra.Command {
	return cmd.Command(&Run{lox: l}, cobra.Command{
		Use:   "run FILE",
		Short: "Run a script",
		Args:  cobra.ExactArgs(1),
	})
}

func (r *Run) Run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	return lox.Run(data, lox.Option{
		SourceName: args[0],
	})
}
