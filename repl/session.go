// Package repl runs the interactive loop of ll1: read an expression, parse
// it with an optional trace, report the verdict and print the tree of
// accepted input.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/ll1/ast"
	"github.com/dhamidi/ll1/config"
	"github.com/dhamidi/ll1/format"
	"github.com/dhamidi/ll1/parser"
)

// Examples are shown in the banner. All of them are accepted.
var Examples = []string{"1.2+3", "(12*3)-.4", "-5/(2+1)"}

const treeHeader = "--- Tree ---"

// LineReader reads one line of input after printing prompt. It returns
// io.EOF or liner.ErrPromptAborted when there is no more input.
// *liner.State implements it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// historyAppender is implemented by readers that keep a history.
type historyAppender interface {
	AppendHistory(item string)
}

type Session struct {
	in     LineReader
	out    io.Writer
	cfg    *config.Config
	styles Styles
	log    commonlog.Logger
}

type Option func(*Session)

// WithStyles overrides the styles picked from the configuration.
func WithStyles(s Styles) Option {
	return func(sess *Session) {
		sess.styles = s
	}
}

func NewSession(in LineReader, out io.Writer, cfg *config.Config, opts ...Option) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Session{
		in:     in,
		out:    out,
		cfg:    cfg,
		styles: PlainStyles(),
		log:    commonlog.GetLogger("ll1.repl"),
	}
	if cfg.Color {
		s.styles = ColorStyles()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run prints the banner and evaluates lines until the exit keyword, end of
// input or an interrupt. Read errors other than those end the session with
// an error.
func (s *Session) Run() error {
	s.banner()
	for {
		line, err := s.in.Prompt(s.cfg.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(s.out)
			break
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if s.IsExit(input) {
			break
		}
		if h, ok := s.in.(historyAppender); ok {
			h.AppendHistory(input)
		}
		s.Eval(input)
	}
	fmt.Fprintln(s.out, "Goodbye.")
	return nil
}

// IsExit reports whether line is the exit keyword, ignoring case and
// surrounding space.
func (s *Session) IsExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), strings.TrimSpace(s.cfg.ExitKeyword))
}

func (s *Session) banner() {
	fmt.Fprintln(s.out, s.styles.Title.Render("--- LL(1) Parser and Tree Builder ---"))
	fmt.Fprintf(s.out, "Valid examples: %s\n", strings.Join(Examples, "  |  "))
	fmt.Fprintf(s.out, "Type an expression or '%s' to quit.\n", s.cfg.ExitKeyword)
}

// Eval parses one expression and writes the verdict, and for accepted input
// the tree. It reports whether input was accepted.
func (s *Session) Eval(input string) bool {
	fmt.Fprintf(s.out, "\nAnalyzing: %q\n\n", input)

	var opts []parser.Option
	if s.cfg.Trace {
		opts = append(opts, parser.WithTracer(parser.NewTableTracer(s.out)))
	}
	res, err := parser.New(opts...).Parse(input)
	if err != nil {
		s.reject(input, err)
		return false
	}
	fmt.Fprintf(s.out, "\nResult: %s\n", s.styles.Accepted.Render("ACCEPTED"))

	fmt.Fprintln(s.out, "\nBuilding tree...")
	tree, err := ast.Build(res.Tokens)
	if err != nil {
		s.log.Errorf("build %q: %s", input, err)
		fmt.Fprintf(s.out, "%s\n", s.styles.Rejected.Render("Tree construction failed: "+err.Error()))
		return true
	}
	s.printTree(tree)
	return true
}

func (s *Session) reject(input string, err error) {
	fmt.Fprintf(s.out, "\nResult: %s\n", s.styles.Rejected.Render("REJECTED"))
	var perr *parser.Error
	if errors.As(err, &perr) {
		fmt.Fprintf(s.out, "\n%s", perr.Snippet(input))
		return
	}
	fmt.Fprintln(s.out, err)
}

func (s *Session) printTree(tree ast.Node) {
	enc, err := format.New(s.cfg.Format, s.out)
	if err != nil {
		s.log.Errorf("%s", err)
		enc = format.NewTreeEncoder(s.out)
	}
	fmt.Fprintln(s.out, s.styles.Muted.Render(treeHeader))
	if err := enc.Encode(tree); err != nil {
		fmt.Fprintln(s.out, err)
	}
	fmt.Fprintln(s.out, s.styles.Muted.Render(strings.Repeat("-", len(treeHeader))))
}
