package format

import (
	"strings"

	"github.com/dhamidi/jlint/java/parser"
)

func (p *JavaPrettyPrinter) printCompilationUnit(cu *parser.CompilationUnit) {
	if cu.Package != nil {
		p.emitCommentsBefore(cu.Package.Span.Start.Offset)
		p.printPackageDecl(cu.Package)
	}

	for i, imp := range cu.Imports {
		if (i == 0 && cu.Package != nil) || (i > 0 && imp.Static != cu.Imports[i-1].Static) {
			p.newline()
			p.lastLine = imp.Span.Start.Line
		}
		p.emitCommentsBefore(imp.Span.Start.Offset)
		p.printImportDecl(imp)
	}

	for i, decl := range cu.Types {
		if i > 0 || cu.Package != nil || len(cu.Imports) > 0 {
			p.newline()
		}
		p.lastLine = decl.NodeSpan().Start.Line
		p.emitCommentsBefore(decl.NodeSpan().Start.Offset)
		p.printMember(decl)
	}
}

func (p *JavaPrettyPrinter) printPackageDecl(pkg *parser.PackageDecl) {
	for _, ann := range pkg.Annotations {
		p.writeIndent()
		p.printAnnotation(ann)
		p.newline()
	}
	p.writeIndent()
	p.write("package ")
	p.write(pkg.Name)
	p.write(";")
	p.endLine(pkg.Span.End.Line)
}

func (p *JavaPrettyPrinter) printImportDecl(imp *parser.ImportDecl) {
	p.writeIndent()
	p.write("import ")
	if imp.Static {
		p.write("static ")
	}
	p.write(imp.Name)
	if imp.OnDemand {
		p.write(".*")
	}
	p.write(";")
	p.endLine(imp.Span.End.Line)
}

// printMember writes one class member or top-level declaration, ending
// with a newline.
func (p *JavaPrettyPrinter) printMember(decl parser.Decl) {
	switch d := decl.(type) {
	case *parser.ClassDecl:
		p.printClassDecl(d)
		p.endLine(d.Span.End.Line)
	case *parser.MethodSignature:
		p.printMethod(d)
	case *parser.FieldDecl:
		p.printFieldDecl(d)
	case *parser.Initializer:
		p.writeIndent()
		if d.Static {
			p.write("static ")
		}
		p.printBlock(d.Body)
		p.endLine(d.Span.End.Line)
	case *parser.BadDecl:
		// nothing to print for input that did not parse
	}
}

// printDeclModifiers writes leading annotations on lines of their own and
// the rest of the modifiers inline.
func (p *JavaPrettyPrinter) printDeclModifiers(mods parser.ModifierList) {
	i := 0
	for ; i < len(mods) && mods[i].Annotation != nil; i++ {
		p.writeIndent()
		p.printAnnotation(mods[i].Annotation)
		p.newline()
	}
	p.writeIndent()
	p.printModifiers(mods[i:])
}

// printModifiers writes modifiers inline, each followed by a space.
func (p *JavaPrettyPrinter) printModifiers(mods parser.ModifierList) {
	for _, mod := range mods {
		if mod.Annotation != nil {
			p.printAnnotation(mod.Annotation)
		} else {
			p.write(mod.Keyword)
		}
		p.write(" ")
	}
}

func (p *JavaPrettyPrinter) printAnnotation(ann *parser.Annotation) {
	p.write("@")
	p.write(ann.Name)
	if !ann.Parens && len(ann.Elements) == 0 {
		return
	}
	p.write("(")
	for i, el := range ann.Elements {
		if i > 0 {
			p.write(", ")
		}
		if el.Name != "" {
			p.write(el.Name)
			p.write(" = ")
		}
		p.printExpr(el.Value)
	}
	p.write(")")
}

func (p *JavaPrettyPrinter) printInlineAnnotations(anns []*parser.Annotation) {
	for _, ann := range anns {
		p.printAnnotation(ann)
		p.write(" ")
	}
}

func (p *JavaPrettyPrinter) printType(t *parser.TypeRef) {
	if t == nil {
		return
	}
	if t.Scope != nil {
		p.printType(t.Scope)
		p.write(".")
	}
	p.printInlineAnnotations(t.Annotations)
	p.write(t.Name)
	if t.Bound != nil {
		p.write(" ")
		p.write(t.BoundKind)
		p.write(" ")
		p.printType(t.Bound)
	}
	if t.Diamond {
		p.write("<>")
	} else if len(t.Args) > 0 {
		p.printTypeArgs(t.Args)
	}
	p.write(strings.Repeat("[]", t.ArrayDepth))
	if t.Varargs {
		if len(t.VarargsAnnotations) > 0 {
			p.write(" ")
			p.printInlineAnnotations(t.VarargsAnnotations)
		}
		p.write("...")
	}
}

func (p *JavaPrettyPrinter) printTypeArgs(args []*parser.TypeRef) {
	p.write("<")
	p.printTypeList(args)
	p.write(">")
}

func (p *JavaPrettyPrinter) printTypeList(types []*parser.TypeRef) {
	for i, t := range types {
		if i > 0 {
			p.write(", ")
		}
		p.printType(t)
	}
}

func (p *JavaPrettyPrinter) printTypeParameters(params []*parser.TypeParameter) {
	if len(params) == 0 {
		return
	}
	p.write("<")
	for i, tp := range params {
		if i > 0 {
			p.write(", ")
		}
		p.printInlineAnnotations(tp.Annotations)
		p.write(tp.Name)
		for j, bound := range tp.Bounds {
			if j == 0 {
				p.write(" extends ")
			} else {
				p.write(" & ")
			}
			p.printType(bound)
		}
	}
	p.write(">")
}

func (p *JavaPrettyPrinter) printClassDecl(cd *parser.ClassDecl) {
	p.printDeclModifiers(cd.Modifiers)
	p.write(cd.Kind.String())
	p.write(" ")
	p.write(cd.Name)
	p.printTypeParameters(cd.TypeParams)
	if cd.Kind == parser.ClassKindRecord {
		p.printParameters(cd.Components)
	}
	if len(cd.Extends) > 0 {
		p.write(" extends ")
		p.printTypeList(cd.Extends)
	}
	if len(cd.Implements) > 0 {
		p.write(" implements ")
		p.printTypeList(cd.Implements)
	}
	if len(cd.Permits) > 0 {
		p.write(" permits ")
		p.printTypeList(cd.Permits)
	}
	p.write(" ")

	if cd.Kind == parser.ClassKindEnum {
		p.printEnumBody(cd)
		return
	}
	p.printClassBody(cd.Members, cd.Span)
}

// printClassBody writes a brace-delimited member list. span is the extent
// of the declaration owning the body, used to place trailing comments.
func (p *JavaPrettyPrinter) printClassBody(members []parser.Decl, span parser.Span) {
	if len(members) == 0 && !p.hasCommentsBefore(span.End.Offset) {
		p.write("{}")
		return
	}
	p.write("{")
	p.newline()
	p.indent++
	p.printMembers(members)
	p.emitCommentsBefore(span.End.Offset)
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *JavaPrettyPrinter) printMembers(members []parser.Decl) {
	for i, m := range members {
		span := m.NodeSpan()
		if i == 0 {
			p.lastLine = span.Start.Line
		} else if isBlockMember(m) || isBlockMember(members[i-1]) {
			p.newline()
			p.lastLine = span.Start.Line
		}
		p.emitCommentsBefore(span.Start.Offset)
		p.blankLineBefore(span)
		p.printMember(m)
	}
}

// isBlockMember reports whether a member is set apart from its neighbours
// by a blank line.
func isBlockMember(d parser.Decl) bool {
	switch d := d.(type) {
	case *parser.MethodSignature:
		return d.Body != nil
	case *parser.ClassDecl, *parser.Initializer:
		return true
	}
	return false
}

func (p *JavaPrettyPrinter) hasCommentsBefore(offset int) bool {
	return p.commentIndex < len(p.comments) && p.comments[p.commentIndex].Span.Start.Offset < offset
}

func (p *JavaPrettyPrinter) printEnumBody(cd *parser.ClassDecl) {
	if len(cd.Constants) == 0 && len(cd.Members) == 0 && !p.hasCommentsBefore(cd.Span.End.Offset) {
		p.write("{}")
		return
	}
	p.write("{")
	p.newline()
	p.indent++
	for i, c := range cd.Constants {
		p.emitCommentsBefore(c.Span.Start.Offset)
		p.writeIndent()
		p.printEnumConstant(c)
		if i < len(cd.Constants)-1 {
			p.write(",")
		} else if len(cd.Members) > 0 {
			p.write(";")
		}
		p.endLine(c.Span.End.Line)
	}
	if len(cd.Members) > 0 {
		if len(cd.Constants) == 0 {
			p.writeIndent()
			p.write(";")
			p.newline()
		}
		p.newline()
		p.printMembers(cd.Members)
	}
	p.emitCommentsBefore(cd.Span.End.Offset)
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *JavaPrettyPrinter) printEnumConstant(c *parser.EnumConstant) {
	p.printInlineAnnotations(c.Annotations)
	p.write(c.Name)
	if c.HasArgs {
		p.printArguments(c.Args)
	}
	if c.HasBody {
		p.write(" ")
		p.printClassBody(c.Body, c.Span)
	}
}

func (p *JavaPrettyPrinter) printMethod(m *parser.MethodSignature) {
	p.printDeclModifiers(m.Modifiers)
	if len(m.TypeParams) > 0 {
		p.printTypeParameters(m.TypeParams)
		p.write(" ")
	}
	if m.ReturnType != nil {
		p.printType(m.ReturnType)
		p.write(" ")
	}
	p.write(m.Name)
	if !m.Compact {
		p.printParameters(m.Params)
	}
	p.write(strings.Repeat("[]", m.ExtraDims))
	if len(m.Throws) > 0 {
		p.write(" throws ")
		p.printTypeList(m.Throws)
	}

	switch {
	case m.Default != nil:
		p.write(" default ")
		p.printExpr(m.Default)
		p.write(";")
	case m.Body != nil:
		p.write(" ")
		p.printBlock(m.Body)
	default:
		p.write(";")
	}
	p.endLine(m.Span.End.Line)
}

// printParameters writes a parenthesized parameter list, one parameter per
// line when it does not fit.
func (p *JavaPrettyPrinter) printParameters(params []*parser.Parameter) {
	width := p.measure(func(mp *JavaPrettyPrinter) {
		for i, prm := range params {
			if i > 0 {
				mp.write(", ")
			}
			mp.printParameter(prm)
		}
	})

	p.write("(")
	if len(params) > 1 && p.wouldExceed(width+1) {
		p.newline()
		p.indent += 2
		for i, prm := range params {
			p.writeIndent()
			p.printParameter(prm)
			if i < len(params)-1 {
				p.write(",")
				p.newline()
			}
		}
		p.indent -= 2
	} else {
		for i, prm := range params {
			if i > 0 {
				p.write(", ")
			}
			p.printParameter(prm)
		}
	}
	p.write(")")
}

func (p *JavaPrettyPrinter) printParameter(prm *parser.Parameter) {
	p.printModifiers(prm.Modifiers)
	p.printType(prm.Type)
	p.write(" ")
	p.write(prm.Name)
}

func (p *JavaPrettyPrinter) printFieldDecl(f *parser.FieldDecl) {
	p.printDeclModifiers(f.Modifiers)
	p.printType(f.Type)
	p.write(" ")
	p.printVarDeclarators(f.Vars)
	p.write(";")
	p.endLine(f.Span.End.Line)
}

func (p *JavaPrettyPrinter) printVarDeclarators(vars []*parser.VarDeclarator) {
	for i, v := range vars {
		if i > 0 {
			p.write(", ")
		}
		p.write(v.Name)
		p.write(strings.Repeat("[]", v.Dims))
		if v.Init != nil {
			p.write(" = ")
			p.printExpr(v.Init)
		}
	}
}
