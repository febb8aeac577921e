package lsp

import (
	"errors"
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/ll1/ast"
	"github.com/dhamidi/ll1/parser"
)

// Line is the analysis of one expression line of a document.
type Line struct {
	// Number is zero-based, as in the protocol.
	Number int
	Source string
	Tree   ast.Node
	Err    error
}

// Document holds one expression per line. Blank lines and lines whose
// first non-space character is '#' are not analyzed.
type Document struct {
	URI   string
	Text  string
	Lines []Line
}

func Analyze(uri, text string) *Document {
	doc := &Document{URI: uri, Text: text}
	p := parser.New()
	for i, src := range strings.Split(text, "\n") {
		src = strings.TrimSuffix(src, "\r")
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		line := Line{Number: i, Source: src}
		res, err := p.Parse(src)
		if err == nil {
			line.Tree, err = ast.Build(res.Tokens)
		}
		line.Err = err
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}

// LineAt returns the analyzed line with the given number.
func (d *Document) LineAt(number int) (Line, bool) {
	for _, l := range d.Lines {
		if l.Number == number {
			return l, true
		}
	}
	return Line{}, false
}

// Accepted counts the lines that parsed.
func (d *Document) Accepted() int {
	n := 0
	for _, l := range d.Lines {
		if l.Err == nil {
			n++
		}
	}
	return n
}

// Diagnostics returns one error diagnostic per rejected line. The result is
// never nil so that publishing it clears earlier diagnostics.
func (d *Document) Diagnostics() []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, l := range d.Lines {
		if l.Err == nil {
			continue
		}
		diagnostics = append(diagnostics, diagnostic(l))
	}
	return diagnostics
}

func diagnostic(l Line) protocol.Diagnostic {
	start, end := 0, len(l.Source)
	code := "construction"
	var perr *parser.Error
	var cerr *ast.ConstructionError
	switch {
	case errors.As(l.Err, &perr):
		start = perr.Pos
		end = perr.Pos + len(perr.Found.Value)
		code = perr.Kind.String()
	case errors.As(l.Err, &cerr):
		start = cerr.Found.Pos
		end = start + len(cerr.Found.Value)
	}

	severity := protocol.DiagnosticSeverityError
	source := "ll1"
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: position(l.Number, l.Source, start),
			End:   position(l.Number, l.Source, end),
		},
		Severity: &severity,
		Code:     &protocol.IntegerOrString{Value: code},
		Source:   &source,
		Message:  l.Err.Error(),
	}
}

// position converts a byte offset in src to a protocol position, which
// counts UTF-16 code units.
func position(line int, src string, offset int) protocol.Position {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	col := 0
	for _, r := range src[:offset] {
		if r >= 0x10000 && r != utf8.RuneError {
			col += 2
		} else {
			col++
		}
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)}
}

// Hover describes the line under the cursor: its tree when accepted,
// otherwise the error with a caret snippet.
func (d *Document) Hover(number int) (string, bool) {
	l, ok := d.LineAt(number)
	if !ok {
		return "", false
	}
	var b strings.Builder
	b.WriteString("```\n")
	if l.Err == nil {
		b.WriteString(ast.Render(l.Tree))
	} else {
		var perr *parser.Error
		if errors.As(l.Err, &perr) {
			b.WriteString(perr.Snippet(l.Source))
		} else {
			b.WriteString(l.Err.Error())
			b.WriteString("\n")
		}
	}
	b.WriteString("```")
	return b.String(), true
}
