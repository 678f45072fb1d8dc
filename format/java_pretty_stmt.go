package format

import (
	"github.com/dhamidi/jlint/java/parser"
)

// printBlock writes a block from its opening to its closing brace, leaving
// the cursor after the '}'.
func (p *JavaPrettyPrinter) printBlock(b *parser.Block) {
	if b == nil {
		p.write("{}")
		return
	}
	if len(b.Stmts) == 0 && !p.hasCommentsBefore(b.Span.End.Offset) {
		p.write("{}")
		return
	}
	p.write("{")
	p.newline()
	p.indent++
	p.printStmts(b.Stmts)
	p.emitCommentsBefore(b.Span.End.Offset)
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *JavaPrettyPrinter) printStmts(stmts []parser.Stmt) {
	for i, s := range stmts {
		span := s.NodeSpan()
		if i == 0 {
			p.lastLine = span.Start.Line
		}
		p.emitCommentsBefore(span.Start.Offset)
		p.blankLineBefore(span)
		p.printStmt(s)
	}
}

// printStmt writes a statement on its own lines, ending with a newline.
func (p *JavaPrettyPrinter) printStmt(s parser.Stmt) {
	p.writeIndent()
	p.printStmtInline(s)
	p.endLine(s.NodeSpan().End.Line)
}

// printStmtInline writes a statement at the cursor without the final
// newline.
func (p *JavaPrettyPrinter) printStmtInline(s parser.Stmt) {
	switch s := s.(type) {
	case *parser.Block:
		p.printBlock(s)
	case *parser.LocalVarDecl:
		p.printLocalVarDecl(s)
		p.write(";")
	case *parser.LocalClassDecl:
		p.printClassDecl(s.Decl)
	case *parser.ExprStmt:
		p.printExpr(s.X)
		p.write(";")
	case *parser.IfStmt:
		p.printIfStmt(s)
	case *parser.WhileStmt:
		p.write("while (")
		p.printExpr(s.Cond)
		p.write(")")
		p.printBody(s.Body)
	case *parser.DoStmt:
		p.write("do")
		p.printBody(s.Body)
		p.continueLine()
		p.write("while (")
		p.printExpr(s.Cond)
		p.write(");")
	case *parser.ForStmt:
		p.printForStmt(s)
	case *parser.ForEachStmt:
		p.write("for (")
		p.printModifiers(s.Modifiers)
		p.printType(s.Type)
		p.write(" ")
		p.write(s.Name)
		p.write(" : ")
		p.printExpr(s.Iterable)
		p.write(")")
		p.printBody(s.Body)
	case *parser.ReturnStmt:
		p.write("return")
		if s.Result != nil {
			p.write(" ")
			p.printExpr(s.Result)
		}
		p.write(";")
	case *parser.ThrowStmt:
		p.write("throw ")
		p.printExpr(s.X)
		p.write(";")
	case *parser.BreakStmt:
		p.printJump("break", s.Label)
	case *parser.ContinueStmt:
		p.printJump("continue", s.Label)
	case *parser.YieldStmt:
		p.write("yield ")
		p.printExpr(s.Value)
		p.write(";")
	case *parser.LabeledStmt:
		p.write(s.Label)
		p.write(": ")
		p.printStmtInline(s.Body)
	case *parser.AssertStmt:
		p.write("assert ")
		p.printExpr(s.Cond)
		if s.Message != nil {
			p.write(" : ")
			p.printExpr(s.Message)
		}
		p.write(";")
	case *parser.SynchronizedStmt:
		p.write("synchronized (")
		p.printExpr(s.Lock)
		p.write(") ")
		p.printBlock(s.Body)
	case *parser.SwitchStmt:
		p.printSwitch(s.Switch)
	case *parser.TryStmt:
		p.printTryStmt(s)
	case *parser.EmptyStmt:
		p.write(";")
	case *parser.BadStmt:
		// nothing to print for input that did not parse
	}
}

func (p *JavaPrettyPrinter) printJump(keyword, label string) {
	p.write(keyword)
	if label != "" {
		p.write(" ")
		p.write(label)
	}
	p.write(";")
}

// printBody writes the body of a control statement. A block stays on the
// header's line; any other statement goes indented on the next line, and
// the cursor is left at the start of a fresh line.
func (p *JavaPrettyPrinter) printBody(s parser.Stmt) {
	if b, ok := s.(*parser.Block); ok {
		p.write(" ")
		p.printBlock(b)
		return
	}
	if _, ok := s.(*parser.EmptyStmt); ok {
		p.write(";")
		return
	}
	p.newline()
	p.indent++
	p.writeIndent()
	p.printStmtInline(s)
	p.newline()
	p.indent--
}

// continueLine separates a trailing keyword such as else from the body
// printed before it.
func (p *JavaPrettyPrinter) continueLine() {
	if p.atLineStart {
		p.writeIndent()
	} else {
		p.write(" ")
	}
}

func (p *JavaPrettyPrinter) printLocalVarDecl(d *parser.LocalVarDecl) {
	p.printModifiers(d.Modifiers)
	p.printType(d.Type)
	p.write(" ")
	p.printVarDeclarators(d.Vars)
}

func (p *JavaPrettyPrinter) printIfStmt(s *parser.IfStmt) {
	p.write("if (")
	p.printExpr(s.Cond)
	p.write(")")
	p.printBody(s.Then)
	if s.Else == nil {
		return
	}
	p.continueLine()
	p.write("else")
	if elseIf, ok := s.Else.(*parser.IfStmt); ok {
		p.write(" ")
		p.printIfStmt(elseIf)
		return
	}
	p.printBody(s.Else)
}

func (p *JavaPrettyPrinter) printForStmt(s *parser.ForStmt) {
	p.write("for (")
	for i, init := range s.Init {
		if i > 0 {
			p.write(", ")
		}
		switch init := init.(type) {
		case *parser.LocalVarDecl:
			p.printLocalVarDecl(init)
		case *parser.ExprStmt:
			p.printExpr(init.X)
		}
	}
	p.write(";")
	if s.Cond != nil {
		p.write(" ")
		p.printExpr(s.Cond)
	}
	p.write(";")
	if len(s.Update) > 0 {
		p.write(" ")
		p.printExprList(s.Update)
	}
	p.write(")")
	p.printBody(s.Body)
}

func (p *JavaPrettyPrinter) printTryStmt(s *parser.TryStmt) {
	p.write("try ")
	if len(s.Resources) > 0 {
		p.write("(")
		for i, r := range s.Resources {
			if i > 0 {
				p.write("; ")
			}
			p.printResource(r)
		}
		p.write(") ")
	}
	p.printBlock(s.Body)
	for _, c := range s.Catches {
		p.write(" catch (")
		p.printModifiers(c.Modifiers)
		for i, t := range c.Types {
			if i > 0 {
				p.write(" | ")
			}
			p.printType(t)
		}
		p.write(" ")
		p.write(c.Name)
		p.write(") ")
		p.printBlock(c.Body)
	}
	if s.Finally != nil {
		p.write(" finally ")
		p.printBlock(s.Finally)
	}
}

func (p *JavaPrettyPrinter) printResource(r *parser.ResourceDecl) {
	if r.Type == nil {
		p.printExpr(r.Init)
		return
	}
	p.printModifiers(r.Modifiers)
	p.printType(r.Type)
	p.write(" ")
	p.write(r.Name)
	p.write(" = ")
	p.printExpr(r.Init)
}

// printSwitch writes a switch statement or expression from 'switch' to the
// closing brace.
func (p *JavaPrettyPrinter) printSwitch(sw *parser.SwitchExpr) {
	p.write("switch (")
	p.printExpr(sw.Selector)
	p.write(") ")
	if len(sw.Cases) == 0 && !p.hasCommentsBefore(sw.Span.End.Offset) {
		p.write("{}")
		return
	}
	p.write("{")
	p.newline()
	p.indent++
	for i, c := range sw.Cases {
		if i == 0 {
			p.lastLine = c.Span.Start.Line
		}
		p.emitCommentsBefore(c.Span.Start.Offset)
		p.blankLineBefore(c.Span)
		p.printSwitchCase(c)
	}
	p.emitCommentsBefore(sw.Span.End.Offset)
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *JavaPrettyPrinter) printSwitchCase(c *parser.SwitchCase) {
	p.writeIndent()
	if len(c.Labels) > 0 {
		p.write("case ")
		for i, label := range c.Labels {
			if i > 0 {
				p.write(", ")
			}
			p.printPattern(label)
		}
		if c.Default {
			p.write(", default")
		}
	} else {
		p.write("default")
	}
	if c.Guard != nil {
		p.write(" when ")
		p.printExpr(c.Guard)
	}

	if !c.Arrow {
		p.write(":")
		if len(c.Stmts) == 0 {
			p.endLine(c.Span.Start.Line)
			return
		}
		p.newline()
		p.indent++
		p.lastLine = c.Stmts[0].NodeSpan().Start.Line
		p.printStmts(c.Stmts)
		p.indent--
		return
	}

	p.write(" -> ")
	switch body := c.Body.(type) {
	case *parser.Block:
		p.printBlock(body)
	case *parser.ThrowStmt:
		p.printStmtInline(body)
	case parser.Expr:
		p.printExpr(body)
		p.write(";")
	}
	p.endLine(c.Span.End.Line)
}

func (p *JavaPrettyPrinter) printPattern(pat parser.Pattern) {
	switch pat := pat.(type) {
	case *parser.RecordPattern:
		p.printType(pat.Type)
		p.write("(")
		for i, comp := range pat.Components {
			if i > 0 {
				p.write(", ")
			}
			p.printPattern(comp)
		}
		p.write(")")
	case *parser.BindingPattern:
		if pat.Wildcard {
			p.write("_")
			return
		}
		p.printModifiers(pat.Modifiers)
		p.printType(pat.Type)
		p.write(" ")
		p.write(pat.Name)
	case *parser.TypePattern:
		p.printModifiers(pat.Modifiers)
		p.printType(pat.Type)
		p.write(" ")
		p.write(pat.Name)
	case *parser.LiteralPattern:
		p.printExpr(pat.Value)
	}
}
