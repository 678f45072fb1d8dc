package parser

var modifierKeywords = map[TokenKind]bool{
	TokenPublic:       true,
	TokenProtected:    true,
	TokenPrivate:      true,
	TokenAbstract:     true,
	TokenStatic:       true,
	TokenFinal:        true,
	TokenStrictfp:     true,
	TokenNative:       true,
	TokenSynchronized: true,
	TokenTransient:    true,
	TokenVolatile:     true,
	TokenNonSealed:    true,
}

// isModifierStart reports whether the current token continues a modifier
// list. default is a modifier only on interface methods, never as a switch
// label; sealed is a modifier only where an identifier could not be.
func (p *Parser) isModifierStart() bool {
	tok := p.peek()
	switch {
	case tok.Kind == TokenAt:
		return p.peekN(1).Kind != TokenInterface
	case modifierKeywords[tok.Kind]:
		return true
	case tok.Kind == TokenDefault:
		next := p.peekN(1).Kind
		return next != TokenColon && next != TokenArrow
	case tok.Kind == TokenIdent && tok.Literal == "sealed":
		next := p.peekN(1)
		return next.Kind == TokenClass || next.Kind == TokenInterface || next.Kind == TokenAt ||
			modifierKeywords[next.Kind] || (next.Kind == TokenIdent && next.Literal == "sealed")
	}
	return false
}

// parseModifiers consumes annotations and modifier keywords in any order.
func (p *Parser) parseModifiers() ModifierList {
	var mods ModifierList
	for p.isModifierStart() {
		if p.check(TokenAt) {
			ann := p.parseAnnotation()
			mods = append(mods, Modifier{Span: ann.Span, Annotation: ann})
			continue
		}
		tok := p.advance()
		mods = append(mods, Modifier{Span: tok.Span, Keyword: tok.Literal})
	}
	return mods
}

func (p *Parser) parseAnnotations() []*Annotation {
	var anns []*Annotation
	for p.check(TokenAt) && p.peekN(1).Kind != TokenInterface {
		anns = append(anns, p.parseAnnotation())
	}
	return anns
}

func (p *Parser) parseAnnotation() *Annotation {
	start := p.peek().Span.Start
	ann := &Annotation{}
	p.expect(TokenAt)

	if !p.check(TokenIdent) {
		p.errorExpected("annotation name after '@'")
		ann.Span = p.spanFrom(start)
		return ann
	}
	ann.Name = p.parseQualifiedName()

	if p.accept(TokenLParen) {
		ann.Parens = true
		if !p.check(TokenRParen) {
			ann.Elements = p.parseAnnotationElements()
		}
		p.expect(TokenRParen)
	}

	ann.Span = p.spanFrom(start)
	return ann
}

func (p *Parser) parseAnnotationElements() []AnnotationElement {
	if !(p.check(TokenIdent) && p.peekN(1).Kind == TokenAssign) {
		return []AnnotationElement{{Value: p.parseElementValue()}}
	}
	var elems []AnnotationElement
	for {
		progress := p.mustProgress()
		name := p.expectIdent()
		p.expect(TokenAssign)
		elems = append(elems, AnnotationElement{Name: name, Value: p.parseElementValue()})
		if !p.accept(TokenComma) {
			break
		}
		if !progress() {
			break
		}
	}
	return elems
}

func (p *Parser) parseElementValue() Expr {
	switch p.peek().Kind {
	case TokenAt:
		return p.parseAnnotation()
	case TokenLBrace:
		return p.parseArrayInitWith((*Parser).parseElementValue)
	}
	return p.parseConditional()
}

// parseQualifiedName parses Ident { '.' Ident }.
func (p *Parser) parseQualifiedName() string {
	name := p.expectIdent()
	for p.check(TokenDot) && p.peekN(1).Kind == TokenIdent {
		p.advance()
		name += "." + p.advance().Literal
	}
	return name
}
