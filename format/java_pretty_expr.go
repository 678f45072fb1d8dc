package format

import (
	"strings"

	"github.com/dhamidi/jlint/java/parser"
)

// Expression binding strengths used to decide where parentheses are
// needed. Binary operators sit between precCond and precUnary, offset by
// their parser precedence.
const (
	precLowest = iota
	precCond
	precBinaryBase
	precUnary   = precBinaryBase + 20
	precPostfix = precUnary + 1
)

func exprPrec(x parser.Expr) int {
	switch x := x.(type) {
	case *parser.AssignExpr, *parser.LambdaExpr:
		return precLowest
	case *parser.CondExpr:
		return precCond
	case *parser.BinaryExpr:
		return precBinaryBase + parser.BinaryPrecedence(x.Op)
	case *parser.InstanceOfExpr:
		return precBinaryBase + parser.BinaryPrecedence(parser.TokenInstanceof)
	case *parser.UnaryExpr:
		if x.Postfix {
			return precPostfix
		}
		return precUnary
	case *parser.CastExpr:
		return precUnary
	}
	return precPostfix
}

// printOperand writes x, parenthesized when it binds looser than min.
func (p *JavaPrettyPrinter) printOperand(x parser.Expr, min int) {
	if exprPrec(x) < min {
		p.write("(")
		p.printExpr(x)
		p.write(")")
		return
	}
	p.printExpr(x)
}

func (p *JavaPrettyPrinter) printExpr(x parser.Expr) {
	switch x := x.(type) {
	case nil:
	case *parser.Ident:
		p.write(x.Name)
	case *parser.Literal:
		p.write(x.Value)
	case *parser.BinaryExpr:
		prec := exprPrec(x)
		p.printOperand(x.X, prec)
		p.write(" ")
		p.write(x.Op.String())
		p.write(" ")
		p.printOperand(x.Y, prec+1)
	case *parser.UnaryExpr:
		p.printUnary(x)
	case *parser.AssignExpr:
		p.printOperand(x.Target, precUnary)
		p.write(" ")
		p.write(x.Op.String())
		p.write(" ")
		p.printExpr(x.Value)
	case *parser.CondExpr:
		p.printOperand(x.Cond, precCond+1)
		p.write(" ? ")
		p.printExpr(x.Then)
		p.write(" : ")
		if _, ok := x.Else.(*parser.LambdaExpr); ok {
			p.printExpr(x.Else)
		} else {
			p.printOperand(x.Else, precCond)
		}
	case *parser.ParenExpr:
		p.write("(")
		p.printExpr(x.X)
		p.write(")")
	case *parser.FieldAccess:
		p.printOperand(x.X, precPostfix)
		p.write(".")
		p.write(x.Name)
	case *parser.CallExpr:
		if x.Target != nil {
			p.printOperand(x.Target, precPostfix)
			p.write(".")
		}
		if len(x.TypeArgs) > 0 {
			p.printTypeArgs(x.TypeArgs)
		}
		p.write(x.Name)
		p.printArguments(x.Args)
	case *parser.IndexExpr:
		p.printOperand(x.X, precPostfix)
		p.write("[")
		p.printExpr(x.Index)
		p.write("]")
	case *parser.NewExpr:
		if x.Outer != nil {
			p.printOperand(x.Outer, precPostfix)
			p.write(".")
		}
		p.write("new ")
		p.printType(x.Type)
		p.printArguments(x.Args)
		if x.HasBody {
			p.write(" ")
			p.printClassBody(x.Body, x.Span)
		}
	case *parser.NewArrayExpr:
		p.write("new ")
		p.printType(x.Type)
		for _, dim := range x.Dims {
			p.write("[")
			p.printExpr(dim)
			p.write("]")
		}
		p.write(strings.Repeat("[]", x.ExtraDims))
		if x.Init != nil {
			p.write(" ")
			p.printArrayInit(x.Init)
		}
	case *parser.ArrayInit:
		p.printArrayInit(x)
	case *parser.CastExpr:
		p.write("(")
		p.printType(x.Type)
		for _, b := range x.Bounds {
			p.write(" & ")
			p.printType(b)
		}
		p.write(") ")
		if _, ok := x.X.(*parser.LambdaExpr); ok {
			p.printExpr(x.X)
		} else {
			p.printOperand(x.X, precUnary)
		}
	case *parser.InstanceOfExpr:
		p.printOperand(x.X, exprPrec(x))
		p.write(" instanceof ")
		if x.Pattern != nil {
			p.printPattern(x.Pattern)
		} else {
			p.printType(x.Type)
		}
	case *parser.LambdaExpr:
		p.printLambda(x)
	case *parser.MethodRef:
		p.printOperand(x.X, precPostfix)
		p.write("::")
		if len(x.TypeArgs) > 0 {
			p.printTypeArgs(x.TypeArgs)
		}
		p.write(x.Name)
	case *parser.TypeExpr:
		p.printType(x.Type)
	case *parser.ClassLit:
		p.printType(x.Type)
		p.write(".class")
	case *parser.SwitchExpr:
		p.printSwitch(x)
	case *parser.Annotation:
		p.printAnnotation(x)
	case *parser.BadExpr:
		// nothing to print for input that did not parse
	}
}

func (p *JavaPrettyPrinter) printUnary(x *parser.UnaryExpr) {
	if x.Postfix {
		p.printOperand(x.X, precPostfix)
		p.write(x.Op.String())
		return
	}
	op := x.Op.String()
	p.write(op)
	// - -x and + +x must not merge into a decrement or increment
	if inner, ok := x.X.(*parser.UnaryExpr); ok && !inner.Postfix {
		if innerOp := inner.Op.String(); innerOp[0] == op[0] && (op == "+" || op == "-") {
			p.write(" ")
		}
	}
	p.printOperand(x.X, precUnary)
}

func (p *JavaPrettyPrinter) printLambda(l *parser.LambdaExpr) {
	if !l.Parens && len(l.Params) == 1 && l.Params[0].Type == nil {
		p.write(l.Params[0].Name)
	} else {
		p.write("(")
		for i, prm := range l.Params {
			if i > 0 {
				p.write(", ")
			}
			p.printModifiers(prm.Modifiers)
			if prm.Type != nil {
				p.printType(prm.Type)
				p.write(" ")
			}
			p.write(prm.Name)
		}
		p.write(")")
	}
	p.write(" -> ")
	switch body := l.Body.(type) {
	case *parser.Block:
		p.printBlock(body)
	case parser.Expr:
		p.printExpr(body)
	}
}

func (p *JavaPrettyPrinter) printArrayInit(init *parser.ArrayInit) {
	p.write("{")
	p.printExprList(init.Elems)
	p.write("}")
}

func (p *JavaPrettyPrinter) printExprList(list []parser.Expr) {
	for i, x := range list {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(x)
	}
}

// printArguments writes a parenthesized argument list, one argument per
// line when the list does not fit on the current line.
func (p *JavaPrettyPrinter) printArguments(args []parser.Expr) {
	p.write("(")
	if len(args) == 0 {
		p.write(")")
		return
	}

	var totalLen int
	for i, arg := range args {
		if i > 0 {
			totalLen += 2 // ", "
		}
		totalLen += p.measureExpr(arg)
	}

	if p.wouldExceed(totalLen+1) && len(args) > 1 {
		p.newline()
		p.indent += 2
		for i, arg := range args {
			p.writeIndent()
			p.printExpr(arg)
			if i < len(args)-1 {
				p.write(",")
				p.newline()
			}
		}
		p.indent -= 2
	} else {
		p.printExprList(args)
	}
	p.write(")")
}
