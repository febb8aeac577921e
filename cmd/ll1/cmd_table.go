package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dhamidi/ll1/grammar"
)

func newTableCmd(a *app) *cobra.Command {
	var showRules bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the LL(1) parsing table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			color := a.cfg.Color && !noColor
			out := cmd.OutOrStdout()
			if showRules {
				for i, r := range grammar.Rules() {
					fmt.Fprintf(out, "%2d. %s\n", i+1, r)
				}
				return nil
			}
			fmt.Fprintln(out, renderTable(grammar.Default, color))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showRules, "rules", false, "list the grammar rules instead of the table")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

// renderTable draws one row per non-terminal and one column per terminal.
// Empty cells are parse errors.
func renderTable(t *grammar.Table, color bool) string {
	terminals := grammar.Terminals()

	headers := []string{""}
	for _, term := range terminals {
		headers = append(headers, term.String())
	}

	var rows [][]string
	for _, nt := range grammar.NonTerminals() {
		row := []string{nt.String()}
		for _, term := range terminals {
			cell := ""
			if r, ok := t.Lookup(nt, term); ok {
				cell = r.RHS()
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	header := lipgloss.NewStyle().Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	head := lipgloss.NewStyle().Padding(0, 1)
	if color {
		header = header.Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
		head = head.Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return head
			}
			return cell
		}).
		String()
}
