package parser

// parseType parses a type with its leading annotations and array
// brackets. The varargs ellipsis is left for parseParameterType.
func (p *Parser) parseType() *TypeRef {
	t := p.parseTypeNoDims()
	p.parseDims(t)
	return t
}

func (p *Parser) parseDims(t *TypeRef) {
	for p.check(TokenLBracket) && p.peekN(1).Kind == TokenRBracket {
		p.advance()
		p.advance()
		t.ArrayDepth++
	}
	t.Span = p.spanFrom(t.Span.Start)
}

func (p *Parser) parseTypeNoDims() *TypeRef {
	start := p.peek().Span.Start
	t := &TypeRef{Span: Span{Start: start}}
	t.Annotations = p.parseAnnotations()

	tok := p.peek()
	switch {
	case tok.Kind.IsPrimitive() || tok.Kind == TokenVoid:
		t.Name = p.advance().Literal
	case tok.Kind == TokenIdent:
		t.Name = p.parseQualifiedName()
		if p.check(TokenLT) {
			p.parseTypeArguments(t)
		}
		for p.check(TokenDot) && p.peekN(1).Kind == TokenIdent {
			// Outer<T>.Inner
			p.advance()
			t.Span = p.spanFrom(start)
			inner := &TypeRef{Span: Span{Start: start}, Scope: t, Name: p.parseQualifiedName()}
			if p.check(TokenLT) {
				p.parseTypeArguments(inner)
			}
			t = inner
		}
	case tok.Kind == TokenQuestion:
		p.advance()
		t.Name = "?"
		if p.check(TokenExtends) || p.check(TokenSuper) {
			t.BoundKind = p.advance().Literal
			t.Bound = p.parseType()
		}
	default:
		p.errorExpected("type")
	}

	t.Span = p.spanFrom(start)
	return t
}

// parseTypeArguments parses '<' TypeArg { ',' TypeArg } '>' into t.Args.
// An empty list is the diamond of a class instance creation.
func (p *Parser) parseTypeArguments(t *TypeRef) {
	p.expect(TokenLT)
	if p.check(TokenGT) {
		p.advance()
		t.Diamond = true
		return
	}
	for {
		progress := p.mustProgress()
		t.Args = append(t.Args, p.parseType())
		if !p.accept(TokenComma) {
			break
		}
		if !progress() {
			break
		}
	}
	p.expectGT()
}

// parseTypeArgumentList parses explicit type arguments of a generic call,
// as in Collections.<String>emptyList().
func (p *Parser) parseTypeArgumentList() []*TypeRef {
	holder := &TypeRef{}
	p.parseTypeArguments(holder)
	return holder.Args
}

// parseParameterType parses a formal parameter's type. Annotations after
// the element type are only valid in front of '...', and go into the
// ellipsis slot rather than the type slot.
func (p *Parser) parseParameterType() *TypeRef {
	t := p.parseType()
	if !p.check(TokenAt) && !p.check(TokenEllipsis) {
		return t
	}
	anns := p.parseAnnotations()
	if !p.check(TokenEllipsis) {
		p.errorExpected("'...' after annotations")
		return t
	}
	p.advance()
	t.Varargs = true
	t.VarargsAnnotations = anns
	t.Span = p.spanFrom(t.Span.Start)
	return t
}

func (p *Parser) parseTypeParameters() []*TypeParameter {
	p.expect(TokenLT)
	var params []*TypeParameter
	for {
		progress := p.mustProgress()
		start := p.peek().Span.Start
		tp := &TypeParameter{Annotations: p.parseAnnotations()}
		tp.Name = p.expectIdent()
		if p.accept(TokenExtends) {
			tp.Bounds = append(tp.Bounds, p.parseType())
			for p.accept(TokenBitAnd) {
				tp.Bounds = append(tp.Bounds, p.parseType())
			}
		}
		tp.Span = p.spanFrom(start)
		params = append(params, tp)
		if !p.accept(TokenComma) {
			break
		}
		if !progress() {
			break
		}
	}
	p.expectGT()
	return params
}

func (p *Parser) parseTypeList() []*TypeRef {
	var types []*TypeRef
	for {
		progress := p.mustProgress()
		types = append(types, p.parseType())
		if !p.accept(TokenComma) {
			break
		}
		if !progress() {
			break
		}
	}
	return types
}
