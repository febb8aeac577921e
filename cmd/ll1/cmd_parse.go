package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ll1/ast"
	"github.com/dhamidi/ll1/format"
	"github.com/dhamidi/ll1/parser"
)

var errRejected = errors.New("expression rejected")

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string
	var trace bool

	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression and print its tree",
		Long: `Parse an expression and print its tree.

With no argument, or with "-", every non-blank line of standard input is
parsed. The command fails if any expression is rejected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				outputFormat = a.cfg.Format
			}
			if !format.Valid(outputFormat) {
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if len(args) == 1 && args[0] != "-" {
				return parseOne(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], outputFormat, trace)
			}

			var failed bool
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				err := parseOne(cmd.OutOrStdout(), cmd.ErrOrStderr(), line, outputFormat, trace)
				if errors.Is(err, errRejected) {
					failed = true
					continue
				}
				if err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			if failed {
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format "+formatList())
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print the parse table")

	return cmd
}

func parseOne(stdout, stderr io.Writer, input, outputFormat string, trace bool) error {
	var opts []parser.Option
	if trace {
		opts = append(opts, parser.WithTracer(parser.NewTableTracer(stdout)))
	}

	res, err := parser.New(opts...).Parse(input)
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			fmt.Fprint(stderr, perr.Snippet(input))
		} else {
			fmt.Fprintln(stderr, err)
		}
		return errRejected
	}

	tree, err := ast.Build(res.Tokens)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}

	enc, err := format.New(outputFormat, stdout)
	if err != nil {
		return err
	}
	if err := enc.Encode(tree); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
