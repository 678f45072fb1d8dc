package format

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/dhamidi/jlint/java/parser"
)

type JavaPrettyPrinter struct {
	w            io.Writer
	err          error
	comments     []parser.Comment
	commentIndex int
	indent       int
	indentStr    string
	atLineStart  bool
	lastLine     int
	column       int // Current column position (0-indexed)
	maxColumn    int // Maximum line length (default 100)
}

type PrinterOption func(*JavaPrettyPrinter)

// WithIndent sets the string written once per indentation level.
func WithIndent(s string) PrinterOption {
	return func(p *JavaPrettyPrinter) {
		p.indentStr = s
	}
}

// WithMaxColumn sets the line length past which argument and parameter
// lists are wrapped.
func WithMaxColumn(n int) PrinterOption {
	return func(p *JavaPrettyPrinter) {
		if n > 0 {
			p.maxColumn = n
		}
	}
}

func NewJavaPrettyPrinter(w io.Writer, opts ...PrinterOption) *JavaPrettyPrinter {
	p := &JavaPrettyPrinter{
		w:           w,
		indentStr:   "    ",
		atLineStart: true,
		lastLine:    1,
		maxColumn:   100,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print writes a whole compilation unit, interleaving the comments it
// carries.
func (p *JavaPrettyPrinter) Print(cu *parser.CompilationUnit) error {
	p.comments = append([]parser.Comment(nil), cu.Comments...)
	sort.Slice(p.comments, func(i, j int) bool {
		return p.comments[i].Span.Start.Offset < p.comments[j].Span.Start.Offset
	})
	p.commentIndex = 0

	p.printCompilationUnit(cu)
	p.emitRemainingComments()
	return p.err
}

// PrintNode writes any node without comments. Declarations and statements
// end with a newline; expressions, types and patterns do not.
func (p *JavaPrettyPrinter) PrintNode(n parser.Node) error {
	switch n := n.(type) {
	case *parser.CompilationUnit:
		return p.Print(n)
	case *parser.MethodSignature:
		p.printMethod(n)
	case *parser.Parameter:
		p.printParameter(n)
	case *parser.TypeRef:
		p.printType(n)
	case *parser.Annotation:
		p.printAnnotation(n)
	case parser.Decl:
		p.printMember(n)
	case parser.Stmt:
		p.printStmt(n)
	case parser.Pattern:
		p.printPattern(n)
	case parser.Expr:
		p.printExpr(n)
	}
	return p.err
}

func (p *JavaPrettyPrinter) writeIndent() {
	if !p.atLineStart {
		return
	}
	for i := 0; i < p.indent; i++ {
		p.write(p.indentStr)
	}
	p.atLineStart = false
}

func (p *JavaPrettyPrinter) write(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
	if idx := strings.LastIndex(s, "\n"); idx >= 0 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *JavaPrettyPrinter) newline() {
	p.write("\n")
	p.atLineStart = true
	p.column = 0
}

// endLine finishes the line of a node ending on source line line, keeping a
// line comment that followed it there.
func (p *JavaPrettyPrinter) endLine(line int) {
	if !p.atLineStart {
		p.emitTrailingLineComment(line)
		p.newline()
	}
	if line > p.lastLine {
		p.lastLine = line
	}
}

// blankLineBefore preserves one blank line where the source had any.
func (p *JavaPrettyPrinter) blankLineBefore(span parser.Span) {
	if span.Start.Line > p.lastLine+1 {
		p.newline()
	}
}

func (p *JavaPrettyPrinter) wouldExceed(additionalChars int) bool {
	return p.column+additionalChars > p.maxColumn
}

// measure returns how many bytes print writes when laid out on one line.
func (p *JavaPrettyPrinter) measure(print func(mp *JavaPrettyPrinter)) int {
	var buf bytes.Buffer
	mp := &JavaPrettyPrinter{
		w:         &buf,
		indentStr: p.indentStr,
		maxColumn: 1000000, // Very high to prevent wrapping during measurement
	}
	print(mp)
	return buf.Len()
}

func (p *JavaPrettyPrinter) measureExpr(x parser.Expr) int {
	return p.measure(func(mp *JavaPrettyPrinter) { mp.printExpr(x) })
}

// PrettyPrintJava formats a Java source file. Input with errors is not
// formatted; the parse diagnostics are returned instead.
func PrettyPrintJava(source []byte, opts ...PrinterOption) ([]byte, error) {
	return PrettyPrintJavaFile(source, "", opts...)
}

func PrettyPrintJavaFile(source []byte, filename string, opts ...PrinterOption) ([]byte, error) {
	parseOpts := []parser.Option{parser.WithComments()}
	if filename != "" {
		parseOpts = append(parseOpts, parser.WithFile(filename))
	}
	cu, diags := parser.ParseCompilationUnit(source, parseOpts...)
	if diags.HasErrors() {
		return nil, diags.Err()
	}

	var buf bytes.Buffer
	pp := NewJavaPrettyPrinter(&buf, opts...)
	if err := pp.Print(cu); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatNode renders a single node on its own, as used for snippets.
func FormatNode(n parser.Node, opts ...PrinterOption) (string, error) {
	var buf bytes.Buffer
	if err := NewJavaPrettyPrinter(&buf, opts...).PrintNode(n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
