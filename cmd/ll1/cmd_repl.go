package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ll1/config"
	"github.com/dhamidi/ll1/format"
	"github.com/dhamidi/ll1/repl"
)

func newReplCmd(a *app) *cobra.Command {
	var exitKeyword string
	var trace bool
	var noColor bool
	var outputFormat string
	var historyFile string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read expressions interactively and show their parse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			flags := cmd.Flags()
			if flags.Changed("exit") {
				cfg.ExitKeyword = exitKeyword
			}
			if flags.Changed("trace") {
				cfg.Trace = trace
			}
			if flags.Changed("no-color") {
				cfg.Color = !noColor
			}
			if flags.Changed("format") {
				cfg.Format = outputFormat
			}
			if flags.Changed("history") {
				cfg.HistoryFile = historyFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runRepl(cmd, &cfg)
		},
	}

	cmd.Flags().StringVar(&exitKeyword, "exit", "exit", "keyword that ends the session")
	cmd.Flags().BoolVar(&trace, "trace", true, "print the parse table for every expression")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "tree output format "+formatList())
	cmd.Flags().StringVar(&historyFile, "history", "", "history file (empty disables history)")

	return cmd
}

func runRepl(cmd *cobra.Command, cfg *config.Config) error {
	term := repl.OpenTerminal(cfg.HistoryFile)
	defer term.Close()

	return repl.NewSession(term, cmd.OutOrStdout(), cfg).Run()
}

func formatList() string {
	return "(" + strings.Join(format.Names(), ", ") + ")"
}
