package lsp

import (
	"testing"

	"github.com/dhamidi/jlint/lint"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type recorder struct {
	published []protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method != protocol.ServerTextDocumentPublishDiagnostics {
				return
			}
			r.published = append(r.published, params.(protocol.PublishDiagnosticsParams))
		},
	}
}

func (r *recorder) last(t *testing.T) protocol.PublishDiagnosticsParams {
	t.Helper()
	if len(r.published) == 0 {
		t.Fatal("no diagnostics published")
	}
	return r.published[len(r.published)-1]
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	l, err := lint.New()
	if err != nil {
		t.Fatal(err)
	}
	return NewServer(l, "test")
}

const uri = protocol.DocumentUri("file:///src/A.java")

func TestPublishOnOpenChangeSaveAndClose(t *testing.T) {
	ls := newTestServer(t)
	rec := &recorder{}
	ctx := rec.context()

	err := ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "java", Text: "class A {\n  int new;\n}"},
	})
	if err != nil {
		t.Fatal(err)
	}
	open := rec.last(t)
	if open.URI != uri || len(open.Diagnostics) != 1 {
		t.Fatalf("after open: %+v", open)
	}
	d := open.Diagnostics[0]
	if d.Range.Start != (protocol.Position{Line: 1, Character: 6}) {
		t.Errorf("range start = %+v", d.Range.Start)
	}
	if d.Message != "'new' is a keyword and cannot be used as an identifier" {
		t.Errorf("message = %q", d.Message)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v", d.Severity)
	}

	err = ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "class A {\n  int n;\n}"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := rec.last(t); len(got.Diagnostics) != 0 {
		t.Errorf("after fix: %+v", got.Diagnostics)
	}

	text := "class A {\n  B() {}\n}"
	err = ls.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		Text:         &text,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := rec.last(t); len(got.Diagnostics) != 1 {
		t.Errorf("after save: %+v", got.Diagnostics)
	}

	before := len(rec.published)
	err = ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	if err != nil {
		t.Fatal(err)
	}
	closed := rec.last(t)
	if len(rec.published) != before+1 || closed.Diagnostics == nil || len(closed.Diagnostics) != 0 {
		t.Errorf("close should publish an empty list, got %+v", closed)
	}
	if len(ls.docs) != 0 {
		t.Errorf("document still tracked after close")
	}
}

func TestOtherLanguagesAreIgnored(t *testing.T) {
	ls := newTestServer(t)
	rec := &recorder{}
	err := ls.textDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: "file:///a.py", LanguageID: "python", Text: "def f(:"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.published) != 0 {
		t.Errorf("published %+v for a python file", rec.published)
	}
}

func TestToPosition(t *testing.T) {
	lines := []string{"class A {", "  String s = \"😀\"; int new;", "}"}
	tests := []struct {
		name         string
		line, column int
		want         protocol.Position
	}{
		{"first column", 1, 1, protocol.Position{Line: 0, Character: 0}},
		{"ascii", 1, 7, protocol.Position{Line: 0, Character: 6}},
		{"after astral rune", 2, 26, protocol.Position{Line: 1, Character: 23}},
		{"no position", 0, 0, protocol.Position{}},
		{"past last line", 9, 3, protocol.Position{Line: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toPosition(lines, tt.line, tt.column); got != tt.want {
				t.Errorf("toPosition(%d, %d) = %+v, want %+v", tt.line, tt.column, got, tt.want)
			}
		})
	}
}
