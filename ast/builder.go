package ast

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/ll1/grammar"
	"github.com/dhamidi/ll1/parser"
)

// ConstructionError means the builder met a token its grammar does not
// allow at that point. Accepted token sequences never cause it; seeing one
// means the table and the builder disagree.
type ConstructionError struct {
	Expected grammar.Symbol
	Found    parser.Token
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("tree construction: expected '%s' but found '%s' at position %d",
		e.Expected, e.Found.Value, e.Found.Pos)
}

// Builder derives a tree from a token sequence with one function per
// non-terminal. It walks the tokens once with a single cursor and never
// backtracks. A Builder is used for one Build.
type Builder struct {
	tokens []parser.Token
	pos    int
	log    commonlog.Logger
}

func NewBuilder(tokens []parser.Token) *Builder {
	return &Builder{
		tokens: tokens,
		log:    commonlog.GetLogger("ll1.ast"),
	}
}

// Build returns the tree for tokens, which should have been accepted by
// the parser.
func Build(tokens []parser.Token) (Node, error) {
	return NewBuilder(tokens).Build()
}

// MustBuild is like Build but panics with the *ConstructionError.
func MustBuild(tokens []parser.Token) Node {
	n, err := Build(tokens)
	if err != nil {
		panic(err)
	}
	return n
}

func (b *Builder) Build() (root Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			cerr, ok := r.(*ConstructionError)
			if !ok {
				panic(r)
			}
			b.log.Errorf("%s", cerr)
			root, err = nil, cerr
		}
	}()

	root = b.expr()
	b.match(grammar.EOF)
	return root, nil
}

func (b *Builder) peek() parser.Token {
	if b.pos < len(b.tokens) {
		return b.tokens[b.pos]
	}
	end := 0
	if len(b.tokens) > 0 {
		last := b.tokens[len(b.tokens)-1]
		end = last.Pos + len(last.Value)
	}
	return parser.Token{Type: grammar.EOF, Value: grammar.EOF.String(), Pos: end}
}

func (b *Builder) advance() parser.Token {
	tok := b.peek()
	if b.pos < len(b.tokens) {
		b.pos++
	}
	return tok
}

func (b *Builder) match(kind grammar.Symbol) parser.Token {
	tok := b.peek()
	if tok.Type != kind {
		panic(&ConstructionError{Expected: kind, Found: tok})
	}
	return b.advance()
}

// expr: Term Expr'
func (b *Builder) expr() Node {
	return b.exprTail(b.term())
}

// exprTail folds "+ Term" and "- Term" onto left, so a-b-c is (a-b)-c.
func (b *Builder) exprTail(left Node) Node {
	for {
		switch b.peek().Type {
		case grammar.Plus, grammar.Minus:
			op := b.advance()
			right := b.term()
			left = &BinaryOp{Left: left, Op: op.Value, Right: right, At: left.Pos()}
		default:
			return left
		}
	}
}

// term: Factor Term'
func (b *Builder) term() Node {
	return b.termTail(b.factor())
}

func (b *Builder) termTail(left Node) Node {
	for {
		switch b.peek().Type {
		case grammar.Star, grammar.Slash:
			op := b.advance()
			right := b.factor()
			left = &BinaryOp{Left: left, Op: op.Value, Right: right, At: left.Pos()}
		default:
			return left
		}
	}
}

// factor: ( Expr ) | - Factor | Num
func (b *Builder) factor() Node {
	switch b.peek().Type {
	case grammar.LParen:
		b.advance()
		n := b.expr()
		b.match(grammar.RParen)
		return n
	case grammar.Minus:
		op := b.advance()
		return &UnaryOp{Op: op.Value, Operand: b.factor(), At: op.Pos}
	}
	return b.num()
}

// num: . Digits | d Digits' Num_tail
func (b *Builder) num() Node {
	at := b.peek().Pos
	var text string
	if b.peek().Type == grammar.Dot {
		text = b.advance().Value + b.digits()
	} else {
		text = b.digits() + b.numTail()
	}
	return &NumberLiteral{Text: text, At: at}
}

func (b *Builder) numTail() string {
	if b.peek().Type == grammar.Dot {
		return b.advance().Value + b.digits()
	}
	return ""
}

// digits: d Digits'
func (b *Builder) digits() string {
	text := b.match(grammar.Digit).Value
	for b.peek().Type == grammar.Digit {
		text += b.advance().Value
	}
	return text
}
