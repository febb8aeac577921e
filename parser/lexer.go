package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/ll1/grammar"
)

type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) Position() int {
	return l.pos
}

func (l *Lexer) peek() (rune, int) {
	if l.pos >= len(l.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		ch, size := l.peek()
		if !unicode.IsSpace(ch) {
			return
		}
		l.pos += size
	}
}

// NextToken returns the next token. After the end marker has been returned
// every further call returns it again. An unrecognized character yields a
// token of type grammar.Error holding that character.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return eofToken(len(l.input))
	}

	start := l.pos
	ch, size := l.peek()
	l.pos += size

	kind, ok := grammar.Classify(ch)
	if !ok {
		return Token{Type: grammar.Error, Value: l.input[start:l.pos], Pos: start}
	}
	return Token{Type: kind, Value: l.input[start:l.pos], Pos: start}
}

// Tokenize scans the whole input. On success the result ends with exactly one
// end marker. On the first unrecognized character the tokens produced so far
// are discarded and the result is that single grammar.Error token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == grammar.Error {
			return []Token{tok}
		}
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens
		}
	}
}

// Tokenize scans input with a fresh Lexer.
func Tokenize(input string) []Token {
	return NewLexer(input).Tokenize()
}

// Lex is Tokenize with the lexical failure reported as an *Error.
func Lex(input string) ([]Token, error) {
	tokens := Tokenize(input)
	if len(tokens) == 1 && tokens[0].Type == grammar.Error {
		return nil, &Error{Kind: LexicalError, Pos: tokens[0].Pos, Found: tokens[0]}
	}
	return tokens, nil
}
