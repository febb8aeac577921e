package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/ll1/lsp"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the Language Server Protocol server on standard input and output.

Every line of an open document is parsed as one expression. Blank lines and
lines starting with '#' are ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version)
			return server.RunStdio()
		},
	}
}
