package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/ll1/grammar"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ebnf",
		Short: "EBNF grammar tools",
	}

	cmd.AddCommand(newEbnfCheckCmd())
	cmd.AddCommand(newEbnfPrintCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string
	var checkTable bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse and verify an EBNF grammar file",
		Long: `Parse and verify an EBNF grammar file.

Without a file the built-in expression grammar is checked, including that
its productions match the rows of the parsing table.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				if err := grammar.Verify(); err != nil {
					printErrors(out, err)
					return err
				}
				fmt.Fprintln(out, "ok")
				return nil
			}

			g, err := grammar.LoadFile(args[0])
			if err != nil {
				printErrors(out, err)
				return err
			}

			if startProduction != "" {
				if err := ebnf.Verify(g, startProduction); err != nil {
					printErrors(out, err)
					return err
				}
			}

			if checkTable {
				if err := grammar.CheckTable(g, grammar.Default); err != nil {
					printErrors(out, err)
					return err
				}
			}

			fmt.Fprintln(out, "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")
	cmd.Flags().BoolVar(&checkTable, "table", false, "check that the productions match the parsing table")

	return cmd
}

func newEbnfPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the built-in grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(grammar.Source)
			return err
		},
	}
}

// printErrors prints each error of an error list on its own line. The list
// may be wrapped.
func printErrors(w io.Writer, err error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(w, v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Fprintln(w, err)
}
