package parser

func (p *Parser) parseBlock() *Block {
	start := p.peek().Span.Start
	b := &Block{}
	if p.expect(TokenLBrace) == nil {
		b.Span = p.spanFrom(start)
		return b
	}
	for !p.check(TokenRBrace) && !p.check(TokenEOF) {
		progress := p.mustProgress()
		b.Stmts = append(b.Stmts, p.parseBlockStatement())
		if !progress() {
			break
		}
	}
	p.expect(TokenRBrace)
	b.Span = p.spanFrom(start)
	return b
}

// parseBlockStatement parses a statement that may also be a local variable
// or local class declaration.
func (p *Parser) parseBlockStatement() Stmt {
	start := p.peek().Span.Start
	switch {
	case p.isYieldStmt():
		return p.parseStatement()
	case p.isLocalClassDecl():
		decl := p.parseClassDecl(start, p.parseModifiers())
		return &LocalClassDecl{Span: decl.Span, Decl: decl}
	case p.isLocalVarDecl():
		decl := p.parseLocalVarDeclNoSemi()
		if p.expect(TokenSemicolon) == nil {
			p.syncStatement()
		}
		decl.Span = p.spanFrom(start)
		return decl
	}
	return p.parseStatement()
}

func (p *Parser) parseLocalVarDeclNoSemi() *LocalVarDecl {
	start := p.peek().Span.Start
	decl := &LocalVarDecl{Modifiers: p.parseModifiers()}
	decl.Type = p.parseType()
	decl.Vars = p.parseVarDeclarators()
	decl.Span = p.spanFrom(start)
	return decl
}

// isYieldStmt tells a yield statement from an expression that uses a
// variable named yield.
func (p *Parser) isYieldStmt() bool {
	if !p.checkContextual("yield") {
		return false
	}
	switch next := p.peekN(1).Kind; next {
	case TokenAssign, TokenDot, TokenLBracket, TokenIncrement, TokenDecrement,
		TokenSemicolon, TokenColon, TokenArrow, TokenEOF:
		return false
	default:
		return !isAssignOp(next)
	}
}

func (p *Parser) parseStatement() Stmt {
	start := p.peek().Span.Start
	switch p.peek().Kind {
	case TokenLBrace:
		return p.parseBlock()
	case TokenSemicolon:
		p.advance()
		return &EmptyStmt{Span: p.spanFrom(start)}
	case TokenIf:
		return p.parseIfStmt()
	case TokenWhile:
		p.advance()
		s := &WhileStmt{Cond: p.parseParenCond()}
		s.Body = p.parseStatement()
		s.Span = p.spanFrom(start)
		return s
	case TokenDo:
		p.advance()
		s := &DoStmt{Body: p.parseStatement()}
		p.expect(TokenWhile)
		s.Cond = p.parseParenCond()
		p.expectSemicolon()
		s.Span = p.spanFrom(start)
		return s
	case TokenFor:
		return p.parseForStmt()
	case TokenReturn:
		p.advance()
		s := &ReturnStmt{}
		if !p.check(TokenSemicolon) {
			s.Result = p.parseExpression()
		}
		p.expectSemicolon()
		s.Span = p.spanFrom(start)
		return s
	case TokenThrow:
		return p.parseThrowStmt()
	case TokenBreak:
		p.advance()
		s := &BreakStmt{}
		if p.check(TokenIdent) {
			s.Label = p.advance().Literal
		}
		p.expectSemicolon()
		s.Span = p.spanFrom(start)
		return s
	case TokenContinue:
		p.advance()
		s := &ContinueStmt{}
		if p.check(TokenIdent) {
			s.Label = p.advance().Literal
		}
		p.expectSemicolon()
		s.Span = p.spanFrom(start)
		return s
	case TokenSwitch:
		sw := p.parseSwitch()
		return &SwitchStmt{Span: sw.Span, Switch: sw}
	case TokenTry:
		return p.parseTryStmt()
	case TokenSynchronized:
		p.advance()
		s := &SynchronizedStmt{Lock: p.parseParenCond()}
		s.Body = p.parseBlock()
		s.Span = p.spanFrom(start)
		return s
	case TokenAssert:
		p.advance()
		s := &AssertStmt{Cond: p.parseExpression()}
		if p.accept(TokenColon) {
			s.Message = p.parseExpression()
		}
		p.expectSemicolon()
		s.Span = p.spanFrom(start)
		return s
	}

	if p.isYieldStmt() {
		p.advance()
		s := &YieldStmt{Value: p.parseExpression()}
		p.expectSemicolon()
		s.Span = p.spanFrom(start)
		return s
	}
	if p.check(TokenIdent) && p.peekN(1).Kind == TokenColon {
		label := p.advance().Literal
		p.advance()
		s := &LabeledStmt{Label: label, Body: p.parseStatement()}
		s.Span = p.spanFrom(start)
		return s
	}

	x := p.parseExpression()
	if _, bad := x.(*BadExpr); bad {
		p.syncStatement()
		return &BadStmt{Span: p.spanFrom(start)}
	}
	p.expectSemicolon()
	return &ExprStmt{Span: p.spanFrom(start), X: x}
}

// expectSemicolon ends a statement, resynchronizing at the next statement
// boundary when the ';' is missing.
func (p *Parser) expectSemicolon() {
	if p.expect(TokenSemicolon) == nil {
		p.syncStatement()
	}
}

func (p *Parser) parseParenCond() Expr {
	p.expect(TokenLParen)
	x := p.parseExpression()
	p.expect(TokenRParen)
	return x
}

func (p *Parser) parseIfStmt() *IfStmt {
	start := p.peek().Span.Start
	p.expect(TokenIf)
	s := &IfStmt{Cond: p.parseParenCond()}
	s.Then = p.parseStatement()
	if p.accept(TokenElse) {
		s.Else = p.parseStatement()
	}
	s.Span = p.spanFrom(start)
	return s
}

func (p *Parser) parseForStmt() Stmt {
	start := p.peek().Span.Start
	p.expect(TokenFor)
	p.expect(TokenLParen)

	if p.isEnhancedFor() {
		s := &ForEachStmt{Modifiers: p.parseModifiers()}
		s.Type = p.parseType()
		s.Name = p.expectIdent()
		p.expect(TokenColon)
		s.Iterable = p.parseExpression()
		p.expect(TokenRParen)
		s.Body = p.parseStatement()
		s.Span = p.spanFrom(start)
		return s
	}

	s := &ForStmt{}
	if !p.check(TokenSemicolon) {
		if p.isLocalVarDecl() {
			s.Init = []Stmt{p.parseLocalVarDeclNoSemi()}
		} else {
			for _, x := range p.parseExpressionList() {
				s.Init = append(s.Init, &ExprStmt{Span: x.NodeSpan(), X: x})
			}
		}
	}
	p.expect(TokenSemicolon)
	if !p.check(TokenSemicolon) {
		s.Cond = p.parseExpression()
	}
	p.expect(TokenSemicolon)
	if !p.check(TokenRParen) {
		s.Update = p.parseExpressionList()
	}
	p.expect(TokenRParen)
	s.Body = p.parseStatement()
	s.Span = p.spanFrom(start)
	return s
}

func (p *Parser) parseExpressionList() []Expr {
	var list []Expr
	for {
		progress := p.mustProgress()
		list = append(list, p.parseExpression())
		if !p.accept(TokenComma) {
			break
		}
		if !progress() {
			break
		}
	}
	return list
}

func (p *Parser) parseThrowStmt() *ThrowStmt {
	start := p.peek().Span.Start
	p.expect(TokenThrow)
	s := &ThrowStmt{X: p.parseExpression()}
	p.expectSemicolon()
	s.Span = p.spanFrom(start)
	return s
}

func (p *Parser) parseTryStmt() *TryStmt {
	start := p.peek().Span.Start
	tryTok := p.advance()
	s := &TryStmt{}

	if p.accept(TokenLParen) {
		for !p.check(TokenRParen) && !p.check(TokenEOF) {
			progress := p.mustProgress()
			s.Resources = append(s.Resources, p.parseResource())
			if !p.accept(TokenSemicolon) {
				break
			}
			if !progress() {
				break
			}
		}
		if len(s.Resources) == 0 {
			p.errorExpected("resource")
		}
		p.expect(TokenRParen)
	}

	s.Body = p.parseBlock()

	for p.check(TokenCatch) {
		s.Catches = append(s.Catches, p.parseCatchClause())
	}
	if p.accept(TokenFinally) {
		s.Finally = p.parseBlock()
	}

	s.Span = p.spanFrom(start)
	if s.Resources == nil && s.Catches == nil && s.Finally == nil {
		p.structuralError(s.Span, tryTok, "'try' without 'catch', 'finally' or resource declarations")
	}
	return s
}

// parseResource parses a resource declaration, or a reference to an
// effectively final variable or field.
func (p *Parser) parseResource() *ResourceDecl {
	start := p.peek().Span.Start
	r := &ResourceDecl{}
	if p.isLocalVarDecl() {
		r.Modifiers = p.parseModifiers()
		r.Type = p.parseType()
		r.Name = p.expectIdent()
		p.expect(TokenAssign)
		r.Init = p.parseExpression()
	} else {
		r.Init = p.parseExpression()
	}
	r.Span = p.spanFrom(start)
	return r
}

func (p *Parser) parseCatchClause() *CatchClause {
	start := p.peek().Span.Start
	p.expect(TokenCatch)
	p.expect(TokenLParen)
	c := &CatchClause{Modifiers: p.parseModifiers()}
	c.Types = append(c.Types, p.parseType())
	for p.accept(TokenBitOr) {
		c.Types = append(c.Types, p.parseType())
	}
	c.Name = p.expectIdent()
	p.expect(TokenRParen)
	c.Body = p.parseBlock()
	c.Span = p.spanFrom(start)
	return c
}

// parseSwitch parses switch (selector) { cases }, shared by the statement
// and expression forms.
func (p *Parser) parseSwitch() *SwitchExpr {
	start := p.peek().Span.Start
	p.expect(TokenSwitch)
	sw := &SwitchExpr{Selector: p.parseParenCond()}
	if p.expect(TokenLBrace) == nil {
		sw.Span = p.spanFrom(start)
		return sw
	}
	for !p.check(TokenRBrace) && !p.check(TokenEOF) {
		progress := p.mustProgress()
		if p.check(TokenCase) || p.check(TokenDefault) {
			sw.Cases = append(sw.Cases, p.parseSwitchCase())
		} else {
			p.errorExpected("'case' or 'default'")
			p.recoverTo(TokenCase, TokenDefault, TokenRBrace)
		}
		if !progress() {
			break
		}
	}
	p.expect(TokenRBrace)
	sw.Span = p.spanFrom(start)
	return sw
}

func (p *Parser) parseSwitchCase() *SwitchCase {
	start := p.peek().Span.Start
	c := &SwitchCase{}

	if p.accept(TokenDefault) {
		c.Default = true
	} else {
		p.expect(TokenCase)
		for {
			progress := p.mustProgress()
			c.Labels = append(c.Labels, p.parseCaseLabel())
			if !p.accept(TokenComma) {
				break
			}
			// case null, default
			if p.accept(TokenDefault) {
				c.Default = true
				break
			}
			if !progress() {
				break
			}
		}
		if p.checkContextual("when") {
			p.advance()
			c.Guard = p.parseConditional()
		}
	}

	switch {
	case p.accept(TokenArrow):
		c.Arrow = true
		switch p.peek().Kind {
		case TokenLBrace:
			c.Body = p.parseBlock()
		case TokenThrow:
			c.Body = p.parseThrowStmt()
		default:
			c.Body = p.parseExpression()
			p.expectSemicolon()
		}
	case p.expect(TokenColon) != nil:
		for !p.check(TokenCase) && !p.check(TokenDefault) && !p.check(TokenRBrace) && !p.check(TokenEOF) {
			progress := p.mustProgress()
			c.Stmts = append(c.Stmts, p.parseBlockStatement())
			if !progress() {
				break
			}
		}
	default:
		p.recoverTo(TokenCase, TokenDefault, TokenRBrace)
	}

	c.Span = p.spanFrom(start)
	return c
}

// parseCaseLabel parses one label of a case: a pattern or a constant.
// Constants are parsed without lambda detection, since 'A ->' ends the
// label rather than starting a lambda.
func (p *Parser) parseCaseLabel() Pattern {
	if p.looksLikePattern() {
		return p.parsePattern(false)
	}
	start := p.peek().Span.Start
	x := p.parseConditional()
	return &LiteralPattern{Span: p.spanFrom(start), Value: x}
}

// parsePattern parses a type or record pattern. Inside a record pattern
// (nested is true) a typed component is a BindingPattern and _ is the
// unnamed wildcard.
func (p *Parser) parsePattern(nested bool) Pattern {
	start := p.peek().Span.Start
	if p.isWildcardPattern() {
		p.advance()
		return &BindingPattern{Span: p.spanFrom(start), Wildcard: true}
	}

	mods := p.parseModifiers()
	t := p.parseType()
	if p.accept(TokenLParen) {
		rp := &RecordPattern{Type: t, Components: []Pattern{}}
		for !p.check(TokenRParen) && !p.check(TokenEOF) {
			progress := p.mustProgress()
			rp.Components = append(rp.Components, p.parsePattern(true))
			if !p.accept(TokenComma) {
				break
			}
			if !progress() {
				break
			}
		}
		p.expect(TokenRParen)
		rp.Span = p.spanFrom(start)
		return rp
	}

	name := p.expectIdent()
	if nested {
		return &BindingPattern{Span: p.spanFrom(start), Modifiers: mods, Type: t, Name: name}
	}
	return &TypePattern{Span: p.spanFrom(start), Modifiers: mods, Type: t, Name: name}
}
