// Package ui serves a browser playground: type an expression, see the
// parse trace, the verdict and the tree.
package ui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/ll1/ast"
	"github.com/dhamidi/ll1/grammar"
	"github.com/dhamidi/ll1/parser"
)

//go:embed templates
var embeddedFS embed.FS

type Server struct {
	templateFS fs.FS
	mux        *http.ServeMux
	log        commonlog.Logger
}

// NewServer returns a server whose templates come from ui/templates in the
// working directory when present, falling back to the embedded copies.
func NewServer() (*Server, error) {
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	if _, err := parseTemplates(templateFS); err != nil {
		return nil, err
	}

	s := &Server{
		templateFS: templateFS,
		mux:        http.NewServeMux(),
		log:        commonlog.GetLogger("ll1.ui"),
	}

	s.mux.HandleFunc("POST /parse", s.handleParse)
	s.mux.HandleFunc("GET /table", s.handleTable)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := parseTemplates(s.templateFS)
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Errorf("render %s: %s", name, err)
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// StepView is one row of the parse trace.
type StepView struct {
	Stack  string `json:"stack"`
	Input  string `json:"input"`
	Action string `json:"action"`
}

type ParseResult struct {
	Input    string     `json:"input"`
	Accepted bool       `json:"accepted"`
	Error    string     `json:"error,omitempty"`
	Snippet  string     `json:"snippet,omitempty"`
	Steps    []StepView `json:"steps,omitempty"`
	Tree     string     `json:"tree,omitempty"`
}

// Analyze parses input with a recorded trace and builds the tree when the
// input is accepted.
func Analyze(input string) ParseResult {
	rec := &parser.Recorder{}
	result := ParseResult{Input: input}

	res, err := parser.New(parser.WithTracer(rec)).Parse(input)
	for _, step := range rec.Steps {
		result.Steps = append(result.Steps, StepView{
			Stack:  parser.FormatStack(step.Stack),
			Input:  parser.FormatTokens(step.Input),
			Action: step.Action.String(),
		})
	}
	if err != nil {
		result.Error = err.Error()
		var perr *parser.Error
		if errors.As(err, &perr) {
			result.Snippet = perr.Snippet(input)
		}
		return result
	}

	tree, err := ast.Build(res.Tokens)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Accepted = true
	result.Tree = ast.Render(tree)
	return result
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", struct {
		Result *ParseResult
	}{})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var input string

	if r.Header.Get("Content-Type") == "application/json" {
		var req struct {
			Input string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		input = req.Input
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
			return
		}
		input = r.FormValue("input")
	}

	result := Analyze(input)
	s.log.Debugf("parse %q: accepted=%t", input, result.Accepted)

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}
	s.render(w, "index.html", struct {
		Result *ParseResult
	}{&result})
}

// TableView is the parsing table laid out for display.
type TableView struct {
	Terminals []string   `json:"terminals"`
	Rows      []TableRow `json:"rows"`
}

type TableRow struct {
	NonTerminal string   `json:"nonTerminal"`
	Cells       []string `json:"cells"`
}

func tableView(t *grammar.Table) TableView {
	var view TableView
	terminals := grammar.Terminals()
	for _, term := range terminals {
		view.Terminals = append(view.Terminals, term.String())
	}
	for _, nt := range grammar.NonTerminals() {
		row := TableRow{NonTerminal: nt.String()}
		for _, term := range terminals {
			cell := ""
			if rule, ok := t.Lookup(nt, term); ok {
				cell = rule.RHS()
			}
			row.Cells = append(row.Cells, cell)
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	view := tableView(grammar.Default)
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(view)
		return
	}
	s.render(w, "table.html", view)
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
