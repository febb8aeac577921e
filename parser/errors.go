package parser

import (
	"fmt"
	"strings"

	"github.com/dhamidi/ll1/grammar"
)

// ErrorKind classifies a rejection.
type ErrorKind int

const (
	// LexicalError: an unrecognized character; no parsing took place.
	LexicalError ErrorKind = iota
	// SyntaxMismatch: the terminal on top of the stack differs from the current token.
	SyntaxMismatch
	// SyntaxUnexpectedToken: the table has no entry for the non-terminal and lookahead.
	SyntaxUnexpectedToken
	// UnexpectedEndOfInput: the stack and the input were not exhausted together.
	UnexpectedEndOfInput
	// UnknownSymbol: the stack held a symbol outside both alphabets.
	UnknownSymbol
)

var errorKindNames = map[ErrorKind]string{
	LexicalError:          "LexicalError",
	SyntaxMismatch:        "SyntaxMismatch",
	SyntaxUnexpectedToken: "SyntaxUnexpectedToken",
	UnexpectedEndOfInput:  "UnexpectedEndOfInput",
	UnknownSymbol:         "UnknownSymbol",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is a rejection diagnostic. Found is the offending token and Pos its
// position. Expected is set for SyntaxMismatch, NonTerminal for
// SyntaxUnexpectedToken and Symbol for UnknownSymbol.
type Error struct {
	Kind        ErrorKind
	Pos         int
	Found       Token
	Expected    grammar.Symbol
	NonTerminal grammar.Symbol
	Symbol      grammar.Symbol
}

func (e *Error) Error() string {
	switch e.Kind {
	case LexicalError:
		return fmt.Sprintf("lexical error: invalid character '%s' at position %d", e.Found.Value, e.Pos)
	case SyntaxMismatch:
		return fmt.Sprintf("syntax error: expected '%s' but found '%s' at position %d", e.Expected, e.Found.Value, e.Pos)
	case SyntaxUnexpectedToken:
		return fmt.Sprintf("syntax error: unexpected token '%s' at position %d while expanding '%s'", e.Found.Value, e.Pos, e.NonTerminal)
	case UnexpectedEndOfInput:
		return fmt.Sprintf("syntax error: unexpected '%s' at position %d after the end of the expression", e.Found.Value, e.Pos)
	case UnknownSymbol:
		return fmt.Sprintf("internal error: unknown symbol %d on the parse stack", int(e.Symbol))
	}
	return fmt.Sprintf("parse error at position %d", e.Pos)
}

// Snippet renders the error under a copy of src with a caret pointing at
// the offending position.
//
//	syntax error: expected ')' but found '$' at position 4
//
//	  | (1+2
//	  |     ^
func (e *Error) Snippet(src string) string {
	line := src
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}

	pad := e.Pos
	if pad < 0 {
		pad = 0
	}
	if pad > len(line) {
		pad = len(line)
	}
	// Keep tabs so the caret lines up in a terminal.
	var caret strings.Builder
	for i := 0; i < pad; i++ {
		if line[i] == '\t' {
			caret.WriteByte('\t')
		} else if line[i] < 0x80 || line[i] >= 0xC0 {
			caret.WriteByte(' ')
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", e.Error())
	fmt.Fprintf(&b, "  | %s\n", line)
	fmt.Fprintf(&b, "  | %s^\n", caret.String())
	return b.String()
}
