package parser

import (
	"fmt"
	"strings"

	"github.com/dhamidi/ll1/grammar"
)

// Token is a lexeme of the input. Type is a terminal of the grammar, or
// grammar.Error for an unrecognized character. Pos is the zero-based byte
// offset of the lexeme; the end marker sits at the input length.
type Token struct {
	Type  grammar.Symbol
	Value string
	Pos   int
}

func (t Token) String() string {
	return t.Value
}

// GoString is used by %#v in test failures.
func (t Token) GoString() string {
	return fmt.Sprintf("%v %q @%d", t.Type, t.Value, t.Pos)
}

// IsEOF reports whether t is the end-of-input marker.
func (t Token) IsEOF() bool {
	return t.Type == grammar.EOF
}

func eofToken(pos int) Token {
	return Token{Type: grammar.EOF, Value: grammar.EOF.String(), Pos: pos}
}

// FormatTokens joins token values with spaces, each followed by a space,
// the way remaining input is shown in a trace.
func FormatTokens(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Value)
		b.WriteByte(' ')
	}
	return b.String()
}
