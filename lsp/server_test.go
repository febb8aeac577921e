package lsp

import (
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type notification struct {
	method string
	params protocol.PublishDiagnosticsParams
}

func recordingContext(out *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			p, _ := params.(protocol.PublishDiagnosticsParams)
			*out = append(*out, notification{method: method, params: p})
		},
	}
}

func TestServerPublishesDiagnostics(t *testing.T) {
	ls := NewServer("test")
	var sent []notification
	ctx := recordingContext(&sent)
	uri := "file:///tmp/a.expr"

	err := ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "1+\n2*3\n"},
	})
	if err != nil {
		t.Fatalf("didOpen = %v", err)
	}
	if len(sent) != 1 {
		t.Fatalf("%d notifications, want 1", len(sent))
	}
	if sent[0].method != protocol.ServerTextDocumentPublishDiagnostics {
		t.Errorf("method = %q", sent[0].method)
	}
	if sent[0].params.URI != uri || len(sent[0].params.Diagnostics) != 1 {
		t.Errorf("params = %+v, want one diagnostic for %s", sent[0].params, uri)
	}

	err = ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "1+4\n2*3\n"}},
	})
	if err != nil {
		t.Fatalf("didChange = %v", err)
	}
	if len(sent) != 2 || len(sent[1].params.Diagnostics) != 0 {
		t.Fatalf("fixed document did not clear diagnostics: %+v", sent)
	}
	if sent[1].params.Diagnostics == nil {
		t.Error("cleared diagnostics are nil, want empty slice")
	}

	doc, ok := ls.Document(uri)
	if !ok || doc.Accepted() != 2 {
		t.Errorf("Document(%s) = %v, %v", uri, doc, ok)
	}

	if err := ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}); err != nil {
		t.Fatalf("didClose = %v", err)
	}
	if _, ok := ls.Document(uri); ok {
		t.Error("document still known after close")
	}
	if len(sent) != 3 {
		t.Errorf("%d notifications after close, want 3", len(sent))
	}
}

func TestServerSaveWithText(t *testing.T) {
	ls := NewServer("test")
	var sent []notification
	text := "(1\n"

	err := ls.textDocumentDidSave(recordingContext(&sent), &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "u"},
		Text:         &text,
	})
	if err != nil {
		t.Fatalf("didSave = %v", err)
	}
	if len(sent) != 1 || len(sent[0].params.Diagnostics) != 1 {
		t.Errorf("notifications = %+v, want one diagnostic", sent)
	}
}

func TestServerHover(t *testing.T) {
	ls := NewServer("test")
	ls.update(nil, "u", "-5/(2+1)\n")

	hover, err := ls.textDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "u"},
			Position:     protocol.Position{Line: 0, Character: 3},
		},
	})
	if err != nil || hover == nil {
		t.Fatalf("hover = %v, %v", hover, err)
	}
	content, ok := hover.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("Contents = %T, want MarkupContent", hover.Contents)
	}
	if content.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("Kind = %q, want markdown", content.Kind)
	}
	want := "```\n/\n├── -\n│   └── 5\n└── +\n    ├── 2\n    └── 1\n```"
	if content.Value != want {
		t.Errorf("Value = %q, want %q", content.Value, want)
	}

	hover, _ = ls.textDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "missing"},
		},
	})
	if hover != nil {
		t.Errorf("hover on unknown document = %+v", hover)
	}
}

func TestServerInitialize(t *testing.T) {
	ls := NewServer("1.2.3")
	res, err := ls.initialize(nil, &protocol.InitializeParams{})
	if err != nil {
		t.Fatalf("initialize = %v", err)
	}
	result := res.(protocol.InitializeResult)
	if result.ServerInfo.Name != "ll1" || *result.ServerInfo.Version != "1.2.3" {
		t.Errorf("ServerInfo = %+v", result.ServerInfo)
	}
	if result.Capabilities.HoverProvider != true {
		t.Errorf("HoverProvider = %v", result.Capabilities.HoverProvider)
	}
}
