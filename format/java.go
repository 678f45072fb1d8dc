package format

import (
	"bytes"
	"io"

	"github.com/dhamidi/jlint/java/parser"
)

// JavaEncoder writes nodes back as Java source.
type JavaEncoder struct {
	w    io.Writer
	node parser.Node
	opts []PrinterOption
}

func NewJavaEncoder(w io.Writer, opts ...PrinterOption) *JavaEncoder {
	return &JavaEncoder{w: w, opts: opts}
}

func (e *JavaEncoder) Encode(node parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := NewJavaPrettyPrinter(&buf, e.opts...).PrintNode(e.node); err != nil {
		return nil, err
	}
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
