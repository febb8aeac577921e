// Package grammar defines the symbols, rules and LL(1) parsing table of the
// arithmetic expression grammar.
//
// The grammar is fixed:
//
//	Expr      -> Term Expr'
//	Expr'     -> + Term Expr' | - Term Expr' | ε
//	Term      -> Factor Term'
//	Term'     -> * Factor Term' | / Factor Term' | ε
//	Factor    -> ( Expr ) | - Factor | Num
//	Num       -> . Digits | d Digits' Num_tail
//	Num_tail  -> . Digits | ε
//	Digits    -> d Digits'
//	Digits'   -> d Digits' | ε
//
// The table is static data compiled from the grammar's FIRST and FOLLOW sets;
// it is built once at package initialization and never mutated, so a single
// Table may be shared by any number of parsers.
package grammar

// Symbol is a terminal or non-terminal of the grammar.
type Symbol int

const (
	// Error is the kind of a token produced for an unrecognized character.
	// It is neither a terminal nor a non-terminal.
	Error Symbol = iota

	// Terminals
	Plus
	Minus
	Star
	Slash
	LParen
	RParen
	Dot
	Digit
	EOF

	// Non-terminals
	Expr
	ExprTail
	Term
	TermTail
	Factor
	Num
	NumTail
	Digits
	DigitsTail

	numSymbols
)

const (
	firstTerminal    = Plus
	lastTerminal     = EOF
	firstNonTerminal = Expr
	lastNonTerminal  = DigitsTail

	numTerminals    = int(lastTerminal-firstTerminal) + 1
	numNonTerminals = int(lastNonTerminal-firstNonTerminal) + 1
)

var symbolNames = [numSymbols]string{
	Error:      "ERROR",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	LParen:     "(",
	RParen:     ")",
	Dot:        ".",
	Digit:      "d",
	EOF:        "$",
	Expr:       "Expr",
	ExprTail:   "Expr'",
	Term:       "Term",
	TermTail:   "Term'",
	Factor:     "Factor",
	Num:        "Num",
	NumTail:    "Num_tail",
	Digits:     "Digits",
	DigitsTail: "Digits'",
}

// ebnfNames maps non-terminals to their production names in arith.ebnf,
// where primes are not valid identifiers.
var ebnfNames = map[Symbol]string{
	Expr:       "Expr",
	ExprTail:   "ExprTail",
	Term:       "Term",
	TermTail:   "TermTail",
	Factor:     "Factor",
	Num:        "Num",
	NumTail:    "NumTail",
	Digits:     "Digits",
	DigitsTail: "DigitsTail",
}

func (s Symbol) String() string {
	if s >= 0 && s < numSymbols {
		return symbolNames[s]
	}
	return "Unknown"
}

// IsTerminal reports whether s belongs to the terminal alphabet.
func (s Symbol) IsTerminal() bool {
	return s >= firstTerminal && s <= lastTerminal
}

// IsNonTerminal reports whether s belongs to the non-terminal alphabet.
func (s Symbol) IsNonTerminal() bool {
	return s >= firstNonTerminal && s <= lastNonTerminal
}

// EBNFName returns the production name used for s in the EBNF grammar, or
// the empty string if s is not a non-terminal.
func (s Symbol) EBNFName() string {
	return ebnfNames[s]
}

// Terminals returns the terminal alphabet in declaration order.
func Terminals() []Symbol {
	out := make([]Symbol, 0, numTerminals)
	for s := firstTerminal; s <= lastTerminal; s++ {
		out = append(out, s)
	}
	return out
}

// NonTerminals returns the non-terminal alphabet in declaration order.
func NonTerminals() []Symbol {
	out := make([]Symbol, 0, numNonTerminals)
	for s := firstNonTerminal; s <= lastNonTerminal; s++ {
		out = append(out, s)
	}
	return out
}

// Classify returns the terminal for a single input character. Every decimal
// digit collapses to Digit. The second result is false for characters
// outside the terminal alphabet.
func Classify(ch rune) (Symbol, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return Digit, true
	case ch == '+':
		return Plus, true
	case ch == '-':
		return Minus, true
	case ch == '*':
		return Star, true
	case ch == '/':
		return Slash, true
	case ch == '(':
		return LParen, true
	case ch == ')':
		return RParen, true
	case ch == '.':
		return Dot, true
	}
	return Error, false
}
