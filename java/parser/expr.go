package parser

// Binary operator precedence, loosest first. instanceof binds like the
// relational operators.
var binaryPrec = map[TokenKind]int{
	TokenOr:         1,
	TokenAnd:        2,
	TokenBitOr:      3,
	TokenBitXor:     4,
	TokenBitAnd:     5,
	TokenEQ:         6,
	TokenNE:         6,
	TokenLT:         7,
	TokenGT:         7,
	TokenLE:         7,
	TokenGE:         7,
	TokenInstanceof: 7,
	TokenShl:        8,
	TokenShr:        8,
	TokenUShr:       8,
	TokenPlus:       9,
	TokenMinus:      9,
	TokenStar:       10,
	TokenSlash:      10,
	TokenPercent:    10,
}

// BinaryPrecedence returns the binding strength of a binary operator, or 0
// for tokens that are not binary operators.
func BinaryPrecedence(op TokenKind) int {
	return binaryPrec[op]
}

func isAssignOp(kind TokenKind) bool {
	switch kind {
	case TokenAssign, TokenPlusAssign, TokenMinusAssign,
		TokenStarAssign, TokenSlashAssign, TokenPercentAssign,
		TokenAndAssign, TokenOrAssign, TokenXorAssign,
		TokenShlAssign, TokenShrAssign, TokenUShrAssign:
		return true
	}
	return false
}

func (p *Parser) parseExpression() Expr {
	if p.isLambda() {
		return p.parseLambda()
	}
	start := p.peek().Span.Start
	x := p.parseConditional()
	if isAssignOp(p.peek().Kind) {
		op := p.advance().Kind
		value := p.parseExpression()
		return &AssignExpr{Span: p.spanFrom(start), Op: op, Target: x, Value: value}
	}
	return x
}

func (p *Parser) parseConditional() Expr {
	start := p.peek().Span.Start
	cond := p.parseBinary(1)
	if !p.accept(TokenQuestion) {
		return cond
	}
	c := &CondExpr{Cond: cond}
	c.Then = p.parseExpression()
	p.expect(TokenColon)
	if p.isLambda() {
		c.Else = p.parseLambda()
	} else {
		c.Else = p.parseConditional()
	}
	c.Span = p.spanFrom(start)
	return c
}

// parseBinary is a precedence climber over binaryPrec; every level is left
// associative.
func (p *Parser) parseBinary(minPrec int) Expr {
	start := p.peek().Span.Start
	x := p.parseUnary()
	for {
		op := p.peek().Kind
		prec := binaryPrec[op]
		if prec == 0 || prec < minPrec {
			return x
		}
		p.advance()
		if op == TokenInstanceof {
			x = p.parseInstanceOf(start, x)
			continue
		}
		y := p.parseBinary(prec + 1)
		x = &BinaryExpr{Span: p.spanFrom(start), Op: op, X: x, Y: y}
	}
}

func (p *Parser) parseInstanceOf(start Position, x Expr) Expr {
	inst := &InstanceOfExpr{X: x}
	if p.looksLikePattern() {
		inst.Pattern = p.parsePattern(false)
	} else {
		inst.Type = p.parseType()
	}
	inst.Span = p.spanFrom(start)
	return inst
}

func (p *Parser) parseUnary() Expr {
	start := p.peek().Span.Start
	switch p.peek().Kind {
	case TokenIncrement, TokenDecrement, TokenPlus, TokenMinus, TokenNot, TokenBitNot:
		op := p.advance().Kind
		x := p.parseUnary()
		return &UnaryExpr{Span: p.spanFrom(start), Op: op, X: x}
	case TokenLParen:
		if p.isCast() {
			return p.parseCast()
		}
	}
	return p.parsePostfix(p.parsePrimary())
}

func (p *Parser) parseCast() Expr {
	start := p.peek().Span.Start
	p.expect(TokenLParen)
	c := &CastExpr{Type: p.parseType()}
	for p.accept(TokenBitAnd) {
		c.Bounds = append(c.Bounds, p.parseType())
	}
	p.expect(TokenRParen)
	if p.isLambda() {
		c.X = p.parseLambda()
	} else {
		c.X = p.parseUnary()
	}
	c.Span = p.spanFrom(start)
	return c
}

func (p *Parser) parsePostfix(x Expr) Expr {
	start := x.NodeSpan().Start
	for {
		progress := p.mustProgress()
		switch p.peek().Kind {
		case TokenIncrement, TokenDecrement:
			op := p.advance().Kind
			x = &UnaryExpr{Span: p.spanFrom(start), Op: op, X: x, Postfix: true}
		case TokenDot:
			x = p.parseSelector(start, x)
		case TokenLBracket:
			if p.peekN(1).Kind == TokenRBracket {
				x = p.parseArrayTypeSuffix(start, x)
				continue
			}
			p.advance()
			idx := &IndexExpr{X: x, Index: p.parseExpression()}
			p.expect(TokenRBracket)
			idx.Span = p.spanFrom(start)
			x = idx
		case TokenColonColon:
			p.advance()
			ref := &MethodRef{X: x}
			if p.check(TokenLT) {
				ref.TypeArgs = p.parseTypeArgumentList()
			}
			if p.check(TokenNew) {
				ref.Name = p.advance().Literal
			} else {
				ref.Name = p.expectIdent()
			}
			ref.Span = p.spanFrom(start)
			x = ref
		default:
			return x
		}
		if !progress() {
			return x
		}
	}
}

// parseSelector parses what follows a '.' after a primary: a field, a
// method call, a qualified new, this or class.
func (p *Parser) parseSelector(start Position, x Expr) Expr {
	p.expect(TokenDot)
	switch p.peek().Kind {
	case TokenNew:
		n := p.parseNew()
		if inner, ok := n.(*NewExpr); ok {
			inner.Outer = x
			inner.Span = p.spanFrom(start)
		}
		return n
	case TokenClass:
		p.advance()
		return &ClassLit{Span: p.spanFrom(start), Type: exprToType(x)}
	case TokenThis, TokenSuper:
		name := p.advance().Literal
		return &FieldAccess{Span: p.spanFrom(start), X: x, Name: name}
	case TokenLT:
		typeArgs := p.parseTypeArgumentList()
		name := p.expectIdent()
		call := &CallExpr{Target: x, TypeArgs: typeArgs, Name: name, Args: p.parseArguments()}
		call.Span = p.spanFrom(start)
		return call
	}
	name := p.expectIdent()
	if p.check(TokenLParen) {
		call := &CallExpr{Target: x, Name: name, Args: p.parseArguments()}
		call.Span = p.spanFrom(start)
		return call
	}
	return &FieldAccess{Span: p.spanFrom(start), X: x, Name: name}
}

// parseArrayTypeSuffix handles Name[].class and Name[]::new, where a name
// already parsed as an expression turns out to be an array type.
func (p *Parser) parseArrayTypeSuffix(start Position, x Expr) Expr {
	t := exprToType(x)
	p.parseDims(t)
	t.Span = p.spanFrom(start)
	if p.check(TokenDot) && p.peekN(1).Kind == TokenClass {
		p.advance()
		p.advance()
		return &ClassLit{Span: p.spanFrom(start), Type: t}
	}
	if !p.check(TokenColonColon) {
		p.errorExpected("'.class' or '::'")
	}
	return &TypeExpr{Span: t.Span, Type: t}
}

// exprToType reinterprets a dotted name expression as a type.
func exprToType(x Expr) *TypeRef {
	return &TypeRef{Span: x.NodeSpan(), Name: exprName(x)}
}

func exprName(x Expr) string {
	switch x := x.(type) {
	case *Ident:
		return x.Name
	case *FieldAccess:
		return exprName(x.X) + "." + x.Name
	}
	return ""
}

func (p *Parser) parseArguments() []Expr {
	p.expect(TokenLParen)
	args := []Expr{}
	if !p.check(TokenRParen) {
		args = p.parseExpressionList()
	}
	p.expect(TokenRParen)
	return args
}

func (p *Parser) parsePrimary() Expr {
	start := p.peek().Span.Start
	tok := p.peek()
	switch {
	case tok.Kind.IsLiteral():
		p.advance()
		return &Literal{Span: tok.Span, Kind: tok.Kind, Value: tok.Literal}

	case tok.Kind == TokenThis || tok.Kind == TokenSuper:
		p.advance()
		if p.check(TokenLParen) {
			// explicit constructor invocation
			return &CallExpr{Name: tok.Literal, Args: p.parseArguments(), Span: p.spanFrom(start)}
		}
		return &Ident{Span: tok.Span, Name: tok.Literal}

	case tok.Kind == TokenNew:
		return p.parseNew()

	case tok.Kind == TokenLParen:
		p.advance()
		x := &ParenExpr{X: p.parseExpression()}
		p.expect(TokenRParen)
		x.Span = p.spanFrom(start)
		return x

	case tok.Kind == TokenSwitch:
		return p.parseSwitch()

	case tok.Kind.IsPrimitive() || tok.Kind == TokenVoid:
		t := p.parseType()
		if p.check(TokenColonColon) {
			return &TypeExpr{Span: t.Span, Type: t}
		}
		p.expect(TokenDot)
		p.expect(TokenClass)
		return &ClassLit{Span: p.spanFrom(start), Type: t}

	case tok.Kind == TokenIdent:
		p.advance()
		if p.check(TokenLParen) {
			return &CallExpr{Name: tok.Literal, Args: p.parseArguments(), Span: p.spanFrom(start)}
		}
		return &Ident{Span: tok.Span, Name: tok.Literal}
	}

	p.errorExpected("expression")
	switch tok.Kind {
	case TokenSemicolon, TokenComma, TokenRParen, TokenRBracket, TokenRBrace, TokenEOF:
	default:
		p.advance()
	}
	return &BadExpr{Span: p.spanFrom(start)}
}

// parseNew parses class instance and array creation after 'new'.
func (p *Parser) parseNew() Expr {
	start := p.peek().Span.Start
	p.expect(TokenNew)
	if p.check(TokenLT) {
		p.parseTypeArgumentList()
	}

	t := p.parseTypeNoDims()
	if p.check(TokenLBracket) {
		return p.parseNewArray(start, t)
	}

	n := &NewExpr{Type: t, Args: p.parseArguments()}
	if p.check(TokenLBrace) {
		n.HasBody = true
		n.Body = p.parseClassBody("", ClassKindClass)
	}
	n.Span = p.spanFrom(start)
	return n
}

func (p *Parser) parseNewArray(start Position, t *TypeRef) Expr {
	a := &NewArrayExpr{Type: t}
	for p.check(TokenLBracket) && p.peekN(1).Kind != TokenRBracket {
		p.advance()
		a.Dims = append(a.Dims, p.parseExpression())
		p.expect(TokenRBracket)
	}
	for p.check(TokenLBracket) && p.peekN(1).Kind == TokenRBracket {
		p.advance()
		p.advance()
		a.ExtraDims++
	}
	if len(a.Dims) == 0 {
		if p.check(TokenLBrace) {
			a.Init = p.parseArrayInitWith((*Parser).parseVarInit)
		} else {
			p.errorExpected("array initializer")
		}
	}
	a.Span = p.spanFrom(start)
	return a
}

func (p *Parser) parseArrayInitWith(elem func(*Parser) Expr) *ArrayInit {
	start := p.peek().Span.Start
	p.expect(TokenLBrace)
	init := &ArrayInit{Elems: []Expr{}}
	for !p.check(TokenRBrace) && !p.check(TokenEOF) {
		progress := p.mustProgress()
		init.Elems = append(init.Elems, elem(p))
		if !p.accept(TokenComma) {
			break
		}
		if !progress() {
			break
		}
	}
	p.expect(TokenRBrace)
	init.Span = p.spanFrom(start)
	return init
}

func (p *Parser) parseLambda() Expr {
	start := p.peek().Span.Start
	l := &LambdaExpr{}

	if p.check(TokenIdent) {
		tok := p.advance()
		l.Params = []*LambdaParam{{Span: tok.Span, Name: tok.Literal}}
	} else {
		l.Parens = true
		l.Params = p.parseLambdaParams()
	}

	p.expect(TokenArrow)
	if p.check(TokenLBrace) {
		l.Body = p.parseBlock()
	} else {
		l.Body = p.parseExpression()
	}
	l.Span = p.spanFrom(start)
	return l
}

func (p *Parser) parseLambdaParams() []*LambdaParam {
	p.expect(TokenLParen)
	params := []*LambdaParam{}
	for !p.check(TokenRParen) && !p.check(TokenEOF) {
		progress := p.mustProgress()
		start := p.peek().Span.Start
		lp := &LambdaParam{}
		if p.isLambdaTypedParam() {
			mods := p.parseModifiers()
			lp.Type = p.parseParameterType()
			lp.Modifiers = moveTypeAnnotations(mods, lp.Type)
		}
		lp.Name = p.expectIdent()
		lp.Span = p.spanFrom(start)
		params = append(params, lp)
		if !p.accept(TokenComma) {
			break
		}
		if !progress() {
			break
		}
	}
	p.expect(TokenRParen)
	return params
}
