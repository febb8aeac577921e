package grammar

import (
	"slices"
	"strings"
)

// Rule is a production Head -> Body. An empty Body is the ε production.
type Rule struct {
	Head Symbol
	Body []Symbol
}

// IsEpsilon reports whether r derives the empty string.
func (r Rule) IsEpsilon() bool {
	return len(r.Body) == 0
}

// RHS returns the right-hand side as it appears in a grammar listing.
func (r Rule) RHS() string {
	if r.IsEpsilon() {
		return "ε"
	}
	parts := make([]string, len(r.Body))
	for i, s := range r.Body {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

func (r Rule) String() string {
	return r.Head.String() + " -> " + r.RHS()
}

func (r Rule) clone() Rule {
	return Rule{Head: r.Head, Body: slices.Clone(r.Body)}
}

func rule(head Symbol, body ...Symbol) *Rule {
	return &Rule{Head: head, Body: body}
}

var (
	exprRule       = rule(Expr, Term, ExprTail)
	exprPlusRule   = rule(ExprTail, Plus, Term, ExprTail)
	exprMinusRule  = rule(ExprTail, Minus, Term, ExprTail)
	exprEmptyRule  = rule(ExprTail)
	termRule       = rule(Term, Factor, TermTail)
	termStarRule   = rule(TermTail, Star, Factor, TermTail)
	termSlashRule  = rule(TermTail, Slash, Factor, TermTail)
	termEmptyRule  = rule(TermTail)
	factorGroup    = rule(Factor, LParen, Expr, RParen)
	factorNegate   = rule(Factor, Minus, Factor)
	factorNum      = rule(Factor, Num)
	numDotRule     = rule(Num, Dot, Digits)
	numDigitRule   = rule(Num, Digit, DigitsTail, NumTail)
	numTailDot     = rule(NumTail, Dot, Digits)
	numTailEmpty   = rule(NumTail)
	digitsRule     = rule(Digits, Digit, DigitsTail)
	digitsTailMore = rule(DigitsTail, Digit, DigitsTail)
	digitsTailNone = rule(DigitsTail)
)

var allRules = []*Rule{
	exprRule,
	exprPlusRule, exprMinusRule, exprEmptyRule,
	termRule,
	termStarRule, termSlashRule, termEmptyRule,
	factorGroup, factorNegate, factorNum,
	numDotRule, numDigitRule,
	numTailDot, numTailEmpty,
	digitsRule,
	digitsTailMore, digitsTailNone,
}

// Rules returns every production of the grammar in listing order.
func Rules() []Rule {
	out := make([]Rule, len(allRules))
	for i, r := range allRules {
		out[i] = r.clone()
	}
	return out
}

// Table is the LL(1) predictive parsing table. A nil cell means the pair
// has no production and signals a syntax error.
type Table struct {
	cells [numNonTerminals][numTerminals]*Rule
}

// Default is the table for the arithmetic grammar.
var Default = newTable()

func newTable() *Table {
	t := &Table{}

	t.set(exprRule, LParen, Minus, Dot, Digit)

	t.set(exprPlusRule, Plus)
	t.set(exprMinusRule, Minus)
	t.set(exprEmptyRule, RParen, EOF)

	t.set(termRule, LParen, Minus, Dot, Digit)

	t.set(termStarRule, Star)
	t.set(termSlashRule, Slash)
	t.set(termEmptyRule, Plus, Minus, RParen, EOF)

	t.set(factorGroup, LParen)
	t.set(factorNegate, Minus)
	t.set(factorNum, Dot, Digit)

	t.set(numDotRule, Dot)
	t.set(numDigitRule, Digit)

	t.set(numTailDot, Dot)
	t.set(numTailEmpty, Plus, Minus, Star, Slash, RParen, EOF)

	t.set(digitsRule, Digit)

	t.set(digitsTailMore, Digit)
	t.set(digitsTailNone, Plus, Minus, Star, Slash, RParen, Dot, EOF)

	return t
}

func (t *Table) set(r *Rule, lookahead ...Symbol) {
	for _, term := range lookahead {
		t.cells[r.Head-firstNonTerminal][term-firstTerminal] = r
	}
}

// Lookup returns the production for expanding nt when the current token is
// term. The second result is false when the table has no entry, including
// when either symbol is outside its alphabet.
func (t *Table) Lookup(nt, term Symbol) (Rule, bool) {
	if !nt.IsNonTerminal() || !term.IsTerminal() {
		return Rule{}, false
	}
	r := t.cells[nt-firstNonTerminal][term-firstTerminal]
	if r == nil {
		return Rule{}, false
	}
	return r.clone(), true
}

// Cell is one populated entry of the table.
type Cell struct {
	Lookahead Symbol
	Rule      Rule
}

// Row returns the populated cells for nt in terminal order.
func (t *Table) Row(nt Symbol) []Cell {
	if !nt.IsNonTerminal() {
		return nil
	}
	var cells []Cell
	for i, r := range t.cells[nt-firstNonTerminal] {
		if r != nil {
			cells = append(cells, Cell{Lookahead: firstTerminal + Symbol(i), Rule: r.clone()})
		}
	}
	return cells
}

// Lookaheads returns the terminals on which nt has an entry.
func (t *Table) Lookaheads(nt Symbol) []Symbol {
	row := t.Row(nt)
	out := make([]Symbol, len(row))
	for i, c := range row {
		out[i] = c.Lookahead
	}
	return out
}
