package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/jlint/java/parser"
)

// DiagnosticsJSONEncoder writes the diagnostics of one file as a JSON
// document.
type DiagnosticsJSONEncoder struct {
	w    io.Writer
	file string
}

func NewDiagnosticsJSONEncoder(w io.Writer, file string) *DiagnosticsJSONEncoder {
	return &DiagnosticsJSONEncoder{w: w, file: file}
}

type jsonDiagnostics struct {
	File        string              `json:"file,omitempty"`
	Diagnostics []parser.Diagnostic `json:"diagnostics"`
}

func (e *DiagnosticsJSONEncoder) Encode(diags parser.Diagnostics) error {
	text, err := e.MarshalDiagnostics(diags)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *DiagnosticsJSONEncoder) MarshalDiagnostics(diags parser.Diagnostics) ([]byte, error) {
	doc := jsonDiagnostics{File: e.file, Diagnostics: diags}
	if doc.Diagnostics == nil {
		doc.Diagnostics = parser.Diagnostics{}
	}
	text, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}
