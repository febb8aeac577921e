package parser

import (
	"slices"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/ll1/grammar"
)

type Option func(*Parser)

// WithTable replaces the parsing table. The default is grammar.Default.
func WithTable(t *grammar.Table) Option {
	return func(p *Parser) {
		p.table = t
	}
}

// WithTracer reports every step of every parse to tr.
func WithTracer(tr Tracer) Option {
	return func(p *Parser) {
		p.tracer = tr
	}
}

// Parser is a table-driven LL(1) recognizer. It holds no per-parse state,
// so one Parser may run any number of parses; it is safe for concurrent use
// when its tracer is.
type Parser struct {
	table  *grammar.Table
	tracer Tracer
	log    commonlog.Logger
}

func New(opts ...Option) *Parser {
	p := &Parser{
		table: grammar.Default,
		log:   commonlog.GetLogger("ll1.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result describes an accepted input. Tokens is the full token sequence,
// end marker included, ready for tree construction. Matches counts match
// actions, Consumed is the input pointer at acceptance and Stack is the
// final parse stack.
type Result struct {
	Tokens   []Token
	Matches  int
	Consumed int
	Stack    []grammar.Symbol
}

// Parse validates input against the grammar. It returns an *Error when the
// input is rejected; in that case no tree must be built.
func Parse(input string) ([]Token, error) {
	res, err := New().Parse(input)
	if err != nil {
		return nil, err
	}
	return res.Tokens, nil
}

func (p *Parser) Parse(input string) (*Result, error) {
	tokens, err := Lex(input)
	if err != nil {
		p.log.Debugf("rejected %q: %s", input, err)
		return nil, err
	}
	return p.ParseTokens(tokens)
}

// ParseTokens runs the predictive parse over an already tokenized input.
func (p *Parser) ParseTokens(tokens []Token) (*Result, error) {
	for _, tok := range tokens {
		if tok.Type == grammar.Error {
			return nil, &Error{Kind: LexicalError, Pos: tok.Pos, Found: tok}
		}
	}
	return p.run(tokens, []grammar.Symbol{grammar.EOF, grammar.Expr})
}

func (p *Parser) run(tokens []Token, stack []grammar.Symbol) (*Result, error) {
	ptr := 0
	matches := 0

	current := func() Token {
		if ptr < len(tokens) {
			return tokens[ptr]
		}
		end := 0
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			end = last.Pos + len(last.Value)
		}
		return eofToken(end)
	}
	remaining := func() []Token {
		if ptr < len(tokens) {
			return tokens[ptr:]
		}
		return nil
	}
	reject := func(err *Error) (*Result, error) {
		p.step(stack, remaining(), Action{Kind: ActionReject, Err: err})
		p.log.Debugf("rejected after %d matches: %s", matches, err)
		return nil, err
	}

	for len(stack) > 0 && stack[len(stack)-1] != grammar.EOF {
		top := stack[len(stack)-1]
		tok := current()

		switch {
		case top.IsTerminal():
			if top != tok.Type {
				return reject(&Error{Kind: SyntaxMismatch, Pos: tok.Pos, Found: tok, Expected: top})
			}
			p.step(stack, remaining(), Action{Kind: ActionMatch, Token: tok})
			stack = stack[:len(stack)-1]
			ptr++
			matches++

		case top.IsNonTerminal():
			rule, ok := p.table.Lookup(top, tok.Type)
			if !ok {
				return reject(&Error{Kind: SyntaxUnexpectedToken, Pos: tok.Pos, Found: tok, NonTerminal: top})
			}
			p.step(stack, remaining(), Action{Kind: ActionExpand, Rule: rule})
			stack = stack[:len(stack)-1]
			for i := len(rule.Body) - 1; i >= 0; i-- {
				stack = append(stack, rule.Body[i])
			}

		default:
			return reject(&Error{Kind: UnknownSymbol, Pos: tok.Pos, Found: tok, Symbol: top})
		}
	}

	tok := current()
	if len(stack) == 0 || !tok.IsEOF() {
		return reject(&Error{Kind: UnexpectedEndOfInput, Pos: tok.Pos, Found: tok})
	}

	p.step(stack, remaining(), Action{Kind: ActionAccept})
	p.log.Debugf("accepted %d tokens", len(tokens))

	return &Result{
		Tokens:   tokens,
		Matches:  matches,
		Consumed: ptr,
		Stack:    slices.Clone(stack),
	}, nil
}

func (p *Parser) step(stack []grammar.Symbol, input []Token, action Action) {
	if p.tracer == nil {
		return
	}
	p.tracer.Step(Step{
		Stack:  slices.Clone(stack),
		Input:  input,
		Action: action,
	})
}
