package format

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/dhamidi/jlint/java/parser"
)

type ASTJSONEncoder struct {
	w    io.Writer
	node parser.Node
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText() ([]byte, error) {
	compact, err := parser.MarshalNode(e.node)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// TreeEncoder writes the indented tree dump of a node.
type TreeEncoder struct {
	w         io.Writer
	node      parser.Node
	positions bool
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

// WithPositions makes the dump include each node's span.
func (e *TreeEncoder) WithPositions() *TreeEncoder {
	e.positions = true
	return e
}

func (e *TreeEncoder) Encode(node parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	if e.positions {
		return []byte(parser.DumpWithPositions(e.node)), nil
	}
	return []byte(parser.Dump(e.node)), nil
}
