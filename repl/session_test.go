package repl

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/ll1/config"
)

// scriptReader replays lines and then returns end.
type scriptReader struct {
	lines   []string
	end     error
	prompts []string
	history []string
}

func (r *scriptReader) Prompt(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		if r.end == nil {
			return "", io.EOF
		}
		return "", r.end
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptReader) AppendHistory(item string) {
	r.history = append(r.history, item)
}

func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.Trace = false
	cfg.Color = false
	return cfg
}

func TestSessionAcceptedLine(t *testing.T) {
	in := &scriptReader{lines: []string{"", "   ", "1+2", "  EXIT  ", "3"}}
	var out bytes.Buffer

	require.NoError(t, NewSession(in, &out, quietConfig()).Run())

	got := out.String()
	assert.Contains(t, got, "--- LL(1) Parser and Tree Builder ---\n")
	assert.Contains(t, got, "Valid examples: 1.2+3  |  (12*3)-.4  |  -5/(2+1)\n")
	assert.Contains(t, got, "Type an expression or 'exit' to quit.\n")
	assert.Contains(t, got, "Analyzing: \"1+2\"\n")
	assert.Contains(t, got, "Result: ACCEPTED\n")
	assert.Contains(t, got, "--- Tree ---\n+\n├── 1\n└── 2\n------------\n")
	assert.Contains(t, got, "Goodbye.\n")
	assert.NotContains(t, got, "\"3\"")
	assert.NotContains(t, got, "STACK")
	assert.NotContains(t, got, "\x1b[")

	assert.Equal(t, []string{"> ", "> ", "> ", "> "}, in.prompts)
	assert.Equal(t, []string{"1+2"}, in.history)
}

func TestSessionRejectedLine(t *testing.T) {
	in := &scriptReader{lines: []string{"1+"}}
	var out bytes.Buffer

	require.NoError(t, NewSession(in, &out, quietConfig()).Run())

	got := out.String()
	assert.Contains(t, got, "Result: REJECTED\n")
	assert.Contains(t, got,
		"syntax error: unexpected token '$' at position 2 while expanding 'Term'\n\n"+
			"  | 1+\n"+
			"  |   ^\n")
	assert.NotContains(t, got, "--- Tree ---")
}

func TestSessionLexicalError(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&scriptReader{}, &out, quietConfig())

	assert.False(t, s.Eval("1@2"))
	assert.Contains(t, out.String(), "lexical error: invalid character '@' at position 1\n\n  | 1@2\n  |  ^\n")
}

func TestSessionTrace(t *testing.T) {
	cfg := quietConfig()
	cfg.Trace = true
	var out bytes.Buffer

	assert.True(t, NewSession(&scriptReader{}, &out, cfg).Eval("7"))

	got := out.String()
	assert.Contains(t, got, "STACK (top at right)")
	assert.Contains(t, got, "Match: 7")
	assert.Contains(t, got, "Use rule: Num -> d Digits' Num_tail")
	assert.Contains(t, got, "Success!")
}

func TestSessionCustomExitKeyword(t *testing.T) {
	cfg := quietConfig()
	cfg.ExitKeyword = "salir"
	in := &scriptReader{lines: []string{"exit", "Salir", "2"}}
	var out bytes.Buffer

	require.NoError(t, NewSession(in, &out, cfg).Run())

	got := out.String()
	assert.Contains(t, got, "or 'salir' to quit")
	assert.Contains(t, got, "Analyzing: \"exit\"")
	assert.NotContains(t, got, "Analyzing: \"2\"")

	s := NewSession(in, &out, cfg)
	assert.True(t, s.IsExit(" SALIR "))
	assert.False(t, s.IsExit("sal"))
}

func TestSessionFormats(t *testing.T) {
	cfg := quietConfig()
	cfg.Format = "json"
	var out bytes.Buffer

	NewSession(&scriptReader{}, &out, cfg).Eval("-1")
	assert.Contains(t, out.String(), `"kind": "UnaryOp"`)

	out.Reset()
	cfg.Format = "nope"
	NewSession(&scriptReader{}, &out, cfg).Eval("-1")
	assert.Contains(t, out.String(), "--- Tree ---\n-\n└── 1\n")
}

func TestSessionEndOfInput(t *testing.T) {
	for _, end := range []error{io.EOF, liner.ErrPromptAborted} {
		var out bytes.Buffer
		err := NewSession(&scriptReader{end: end}, &out, quietConfig()).Run()
		assert.NoError(t, err)
		assert.Contains(t, out.String(), "Goodbye.")
	}

	failure := errors.New("terminal gone")
	err := NewSession(&scriptReader{end: failure}, &bytes.Buffer{}, quietConfig()).Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
}

func TestSessionStyles(t *testing.T) {
	cfg := quietConfig()
	cfg.Color = true
	var out bytes.Buffer

	s := NewSession(&scriptReader{}, &out, cfg, WithStyles(PlainStyles()))
	s.Eval("1")
	assert.Contains(t, out.String(), "Result: ACCEPTED\n")
}
