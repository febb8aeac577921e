package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/ll1/grammar"
)

type ActionKind int

const (
	ActionMatch ActionKind = iota
	ActionExpand
	ActionAccept
	ActionReject
)

func (k ActionKind) String() string {
	switch k {
	case ActionMatch:
		return "Match"
	case ActionExpand:
		return "Expand"
	case ActionAccept:
		return "Accept"
	case ActionReject:
		return "Reject"
	}
	return "Unknown"
}

// Action is what the parser did in one step. Token is set for matches,
// Rule for expansions and Err for rejections.
type Action struct {
	Kind  ActionKind
	Token Token
	Rule  grammar.Rule
	Err   *Error
}

func (a Action) String() string {
	switch a.Kind {
	case ActionMatch:
		return "Match: " + a.Token.Value
	case ActionExpand:
		return "Use rule: " + a.Rule.String()
	case ActionAccept:
		return "Success!"
	case ActionReject:
		if a.Err != nil {
			return a.Err.Error()
		}
		return "Rejected"
	}
	return ""
}

// Step is a snapshot taken before an action is applied. Stack is ordered
// bottom to top; Input holds the tokens not yet consumed.
type Step struct {
	Stack  []grammar.Symbol
	Input  []Token
	Action Action
}

// Tracer receives every step of a parse.
type Tracer interface {
	Step(Step)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(Step)

func (f TracerFunc) Step(s Step) {
	f(s)
}

// Recorder keeps every step it sees.
type Recorder struct {
	Steps []Step
}

func (r *Recorder) Step(s Step) {
	r.Steps = append(r.Steps, s)
}

// Count returns how many recorded steps have the given action kind.
func (r *Recorder) Count(kind ActionKind) int {
	n := 0
	for _, s := range r.Steps {
		if s.Action.Kind == kind {
			n++
		}
	}
	return n
}

// FormatStack renders a stack bottom to top, e.g. "[$, Expr]".
func FormatStack(stack []grammar.Symbol) string {
	parts := make([]string, len(stack))
	for i, s := range stack {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

const (
	stackColumn = 45
	inputColumn = 25
	ruleWidth   = 100
)

// TableTracer writes steps as a three column table: the stack with its top
// on the right, the remaining input, and the action taken. The header is
// written before the first step and a rule line closes a finished parse.
type TableTracer struct {
	w       io.Writer
	started bool
}

func NewTableTracer(w io.Writer) *TableTracer {
	return &TableTracer{w: w}
}

func (t *TableTracer) Step(s Step) {
	if !t.started {
		t.started = true
		fmt.Fprintf(t.w, "%-*s | %-*s | %s\n", stackColumn, "STACK (top at right)", inputColumn, "INPUT", "ACTION")
		t.rule()
	}

	if s.Action.Kind == ActionAccept {
		t.rule()
	}
	fmt.Fprintf(t.w, "%-*s | %-*s | %s\n", stackColumn, FormatStack(s.Stack), inputColumn, FormatTokens(s.Input), s.Action)
	if s.Action.Kind == ActionReject {
		t.rule()
	}
}

// Reset makes the next step start a new table.
func (t *TableTracer) Reset() {
	t.started = false
}

func (t *TableTracer) rule() {
	fmt.Fprintln(t.w, strings.Repeat("-", ruleWidth))
}
