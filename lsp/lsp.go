// Package lsp is a language server that publishes lint problems for open
// Java documents.
package lsp

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dhamidi/jlint/lint"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "jlint"

var log = commonlog.GetLogger("jlint.lsp")

type document struct {
	languageID string
	text       string
}

type Server struct {
	linter  *lint.Linter
	handler protocol.Handler
	server  *server.Server
	version string

	mu   sync.Mutex
	docs map[protocol.DocumentUri]*document
}

func NewServer(linter *lint.Linter, version string) *Server {
	ls := &Server{
		linter:  linter,
		version: version,
		docs:    make(map[protocol.DocumentUri]*document),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		log.Infof("initialize from %s", params.ClientInfo.Name)
	}

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := &document{languageID: params.TextDocument.LanguageID, text: params.TextDocument.Text}
	ls.mu.Lock()
	ls.docs[params.TextDocument.URI] = doc
	ls.mu.Unlock()
	ls.publish(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		log.Warningf("%s: ignoring incremental change", params.TextDocument.URI)
		return nil
	}
	doc := ls.update(params.TextDocument.URI, textChange.Text)
	ls.publish(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	var doc *document
	if params.Text != nil {
		doc = ls.update(params.TextDocument.URI, *params.Text)
	} else {
		ls.mu.Lock()
		doc = ls.docs[params.TextDocument.URI]
		ls.mu.Unlock()
	}
	if doc != nil {
		ls.publish(ctx, params.TextDocument.URI, doc)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.docs, params.TextDocument.URI)
	ls.mu.Unlock()
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// update replaces the text of a document, opening it as Java if the client
// never sent didOpen.
func (ls *Server) update(uri protocol.DocumentUri, text string) *document {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	doc, ok := ls.docs[uri]
	if !ok {
		doc = &document{languageID: "java"}
		ls.docs[uri] = doc
	}
	doc.text = text
	return &document{languageID: doc.languageID, text: text}
}

func (ls *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, doc *document) {
	problems, err := ls.linter.Lint(doc.languageID, []byte(doc.text))
	if err != nil {
		log.Debugf("%s: %s", uri, err)
		return
	}
	log.Debugf("%s: %d problems", uri, len(problems))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: toDiagnostics(doc.text, problems),
	})
}

func toDiagnostics(text string, problems []lint.Problem) []protocol.Diagnostic {
	lines := strings.Split(text, "\n")
	diags := make([]protocol.Diagnostic, 0, len(problems))
	for _, p := range problems {
		start := toPosition(lines, p.Line, p.Column)
		end := start
		if int(start.Line) < len(lines) && int(start.Character) < utf16Len(lines[start.Line]) {
			end.Character++
		}
		diags = append(diags, protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: severityPtr(protocol.DiagnosticSeverityError),
			Source:   stringPtr(lsName),
			Message:  p.Message,
		})
	}
	return diags
}

// toPosition converts a 1-based line and byte column into an LSP position,
// whose character offset counts UTF-16 code units.
func toPosition(lines []string, line, column int) protocol.Position {
	if line < 1 {
		return protocol.Position{}
	}
	pos := protocol.Position{Line: protocol.UInteger(line - 1)}
	if line > len(lines) || column < 1 {
		return pos
	}
	text := lines[line-1]
	if column-1 < len(text) {
		text = text[:column-1]
	}
	pos.Character = protocol.UInteger(utf16Len(text))
	return pos
}

func utf16Len(s string) int {
	n := 0
	for _, r := range strings.TrimSuffix(s, "\r") {
		if r >= 0x10000 && r != utf8.RuneError {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}
