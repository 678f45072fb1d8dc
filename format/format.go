package format

import (
	"encoding"
	"io"

	"github.com/dhamidi/jlint/java/parser"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(n parser.Node) error
}

// NewEncoder returns the encoder registered under name: "java", "json",
// "tree" or "outline".
func NewEncoder(name string, w io.Writer, opts ...PrinterOption) (Encoder, bool) {
	switch name {
	case "java":
		return NewJavaEncoder(w, opts...), true
	case "json":
		return NewASTJSONEncoder(w), true
	case "tree":
		return NewTreeEncoder(w), true
	case "outline":
		return NewLineEncoder(w), true
	}
	return nil, false
}
