package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/jlint/java/parser"
)

// LineEncoder writes a one-line-per-declaration outline of a compilation
// unit: a line per type, then its fields and methods, tab separated.
type LineEncoder struct {
	w    io.Writer
	node parser.Node
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(node parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	switch n := e.node.(type) {
	case *parser.CompilationUnit:
		for _, decl := range n.Types {
			writeOutlineDecl(&sb, "", decl)
		}
	case parser.Decl:
		writeOutlineDecl(&sb, "", n)
	default:
		return nil, fmt.Errorf("outline: unsupported node %T", e.node)
	}
	return []byte(sb.String()), nil
}

func writeOutlineDecl(sb *strings.Builder, outer string, decl parser.Decl) {
	switch d := decl.(type) {
	case *parser.ClassDecl:
		name := d.Name
		if outer != "" {
			name = outer + "." + name
		}
		fmt.Fprintf(sb, "%s\t%s\t%s\n", classKind(d.Kind), name, modifiersStr(d.Modifiers))
		for _, c := range d.Constants {
			fmt.Fprintf(sb, "constant\t%s\n", c.Name)
		}
		for _, m := range d.Members {
			writeOutlineDecl(sb, name, m)
		}
	case *parser.FieldDecl:
		for _, v := range d.Vars {
			fmt.Fprintf(sb, "field\t%s\t%s%s\t%s\n",
				v.Name,
				typeStr(d.Type),
				strings.Repeat("[]", v.Dims),
				modifiersStr(d.Modifiers),
			)
		}
	case *parser.MethodSignature:
		kind, ret := "method", typeStr(d.ReturnType)
		if d.IsConstructor() {
			kind, ret = "constructor", "-"
		}
		fmt.Fprintf(sb, "%s\t%s\t%s\t%s\t%s\n",
			kind,
			d.Name,
			ret,
			parametersStr(d.Params),
			modifiersStr(d.Modifiers),
		)
	}
}

func classKind(k parser.ClassKind) string {
	if k == parser.ClassKindAnnotation {
		return "annotation"
	}
	return k.String()
}

func modifiersStr(mods parser.ModifierList) string {
	keywords := mods.Keywords()
	if len(keywords) == 0 {
		return "-"
	}
	return strings.Join(keywords, ",")
}

func typeStr(t *parser.TypeRef) string {
	if t == nil {
		return "-"
	}
	var buf strings.Builder
	pp := NewJavaPrettyPrinter(&buf)
	pp.printType(t)
	return buf.String()
}

func parametersStr(params []*parser.Parameter) string {
	if len(params) == 0 {
		return "()"
	}
	var buf strings.Builder
	pp := NewJavaPrettyPrinter(&buf)
	pp.write("(")
	for i, prm := range params {
		if i > 0 {
			pp.write(", ")
		}
		pp.printType(prm.Type)
	}
	pp.write(")")
	return buf.String()
}
