// Package parser recognizes arithmetic expressions with a table-driven LL(1)
// parser.
//
// # Overview
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │────▶ accepted tokens
//	│  (string)   │     │  (tokens)   │     │  (stack)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                                        grammar.Table
//
// The lexer turns every recognized character into one token: digits become
// grammar.Digit, the characters + - * / ( ) . are typed by themselves, and
// whitespace is skipped. A trailing grammar.EOF token is appended at the
// input length. Lexing is fail-fast: the first unrecognized character
// replaces the whole result with a single grammar.Error token.
//
// The parser seeds its stack with [$, Expr] and repeats until $ is on top:
//
//  1. A terminal on top must equal the current token's type. Both are
//     consumed (Match).
//  2. A non-terminal on top is replaced by the table's production for the
//     current token, pushed right to left. ε productions only pop.
//  3. Anything else on the stack is an internal fault.
//
// The input is accepted when $ is on top and the current token is $.
//
// # Diagnostics
//
// Every rejection is an *Error carrying one of the kinds LexicalError,
// SyntaxMismatch, SyntaxUnexpectedToken, UnexpectedEndOfInput or
// UnknownSymbol, the offending token and its zero-based position:
//
//	_, err := parser.Parse("(1+2")
//	var perr *parser.Error
//	if errors.As(err, &perr) {
//	    fmt.Print(perr.Snippet("(1+2"))
//	}
//
// prints
//
//	syntax error: expected ')' but found '$' at position 4
//
//	  | (1+2
//	  |     ^
//
// # Tracing
//
// A Tracer observes each step: the stack, the unconsumed input and the
// action. Recorder keeps the steps; TableTracer prints them as a table.
package parser
