package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// Source is the grammar in Go EBNF notation. ε alternatives are written as
// options and primed names are spelled with a Tail suffix.
//
//go:embed arith.ebnf
var Source []byte

// StartProduction is the EBNF name of the start symbol.
const StartProduction = "Expr"

// Load parses the embedded grammar.
func Load() (ebnf.Grammar, error) {
	return Parse("arith.ebnf", bytes.NewReader(Source))
}

// Parse parses an EBNF grammar read from r.
func Parse(filename string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// LoadFile parses an EBNF grammar from a file.
func LoadFile(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Parse(filename, f)
}

// Verify parses the embedded grammar, checks it with ebnf.Verify starting
// at StartProduction and checks it against the Default table.
func Verify() error {
	g, err := Load()
	if err != nil {
		return err
	}
	if err := ebnf.Verify(g, StartProduction); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return CheckTable(g, Default)
}

// CheckTable reports an error when the non-lexical productions of g and the
// rows of t do not name the same set of non-terminals.
func CheckTable(g ebnf.Grammar, t *Table) error {
	rows := make(map[string]bool)
	for _, nt := range NonTerminals() {
		if len(t.Row(nt)) == 0 {
			continue
		}
		rows[nt.EBNFName()] = true
	}

	var missing, extra []string
	for name := range rows {
		if _, ok := g[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range g {
		if isLexical(name) {
			continue
		}
		if !rows[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)

	if len(missing) > 0 {
		return fmt.Errorf("grammar has no production for table rows %v", missing)
	}
	if len(extra) > 0 {
		return fmt.Errorf("table has no rows for productions %v", extra)
	}
	return nil
}

// isLexical mirrors the ebnf package's rule: lower-case names are tokens.
func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}
