package parser

// The functions in this file scan ahead over token indices without
// consuming input or recording diagnostics. They decide between
// productions that share a prefix, such as a local variable declaration
// and an expression statement.

func (p *Parser) at(i int) Token {
	if i >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[i]
}

func (p *Parser) kindAt(i int) TokenKind {
	return p.at(i).Kind
}

// skipBalanced skips from an opening token at i to just past its matching
// closer.
func (p *Parser) skipBalanced(i int, open, close TokenKind) (int, bool) {
	if p.kindAt(i) != open {
		return i, false
	}
	depth := 0
	for ; p.kindAt(i) != TokenEOF; i++ {
		switch p.kindAt(i) {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return i, false
}

func (p *Parser) skipAnnotation(i int) (int, bool) {
	if p.kindAt(i) != TokenAt || p.kindAt(i+1) != TokenIdent {
		return i, false
	}
	i += 2
	for p.kindAt(i) == TokenDot && p.kindAt(i+1) == TokenIdent {
		i += 2
	}
	if p.kindAt(i) == TokenLParen {
		return p.skipBalanced(i, TokenLParen, TokenRParen)
	}
	return i, true
}

// skipModifiers skips annotations and the modifiers that may precede a
// local declaration or pattern.
func (p *Parser) skipModifiers(i int) int {
	for {
		switch p.kindAt(i) {
		case TokenFinal:
			i++
		case TokenAt:
			if p.kindAt(i+1) == TokenInterface {
				return i
			}
			next, ok := p.skipAnnotation(i)
			if !ok {
				return i
			}
			i = next
		default:
			return i
		}
	}
}

// skipTypeArgs skips a type argument list starting at '<'. Nesting is
// tracked by counting, so a closing '>>' or '>>>' ends several levels.
func (p *Parser) skipTypeArgs(i int) (int, bool) {
	if p.kindAt(i) != TokenLT {
		return i, false
	}
	depth := 0
	for {
		switch k := p.kindAt(i); {
		case k == TokenLT:
			depth++
		case k == TokenGT:
			depth--
		case k == TokenShr:
			depth -= 2
		case k == TokenUShr:
			depth -= 3
		case k == TokenAt:
			next, ok := p.skipAnnotation(i)
			if !ok {
				return i, false
			}
			i = next
			continue
		case k == TokenIdent, k == TokenDot, k == TokenComma, k == TokenQuestion,
			k == TokenExtends, k == TokenSuper, k == TokenBitAnd,
			k == TokenLBracket, k == TokenRBracket, k.IsPrimitive():
		default:
			return i, false
		}
		i++
		if depth == 0 {
			return i, true
		}
		if depth < 0 {
			return i, false
		}
	}
}

// skipType skips a type: annotations, a primitive or dotted name with
// optional type arguments, then array brackets.
func (p *Parser) skipType(i int) (int, bool) {
	for p.kindAt(i) == TokenAt {
		next, ok := p.skipAnnotation(i)
		if !ok {
			return i, false
		}
		i = next
	}
	switch k := p.kindAt(i); {
	case k.IsPrimitive() || k == TokenVoid:
		i++
	case k == TokenIdent:
		i++
		for {
			if p.kindAt(i) == TokenLT {
				next, ok := p.skipTypeArgs(i)
				if !ok {
					return i, false
				}
				i = next
			}
			if p.kindAt(i) == TokenDot && p.kindAt(i+1) == TokenIdent {
				i += 2
				continue
			}
			break
		}
	default:
		return i, false
	}
	for p.kindAt(i) == TokenLBracket && p.kindAt(i+1) == TokenRBracket {
		i += 2
	}
	return i, true
}

// isLocalVarDecl reports whether a statement starting at the current
// token declares local variables.
func (p *Parser) isLocalVarDecl() bool {
	i := p.skipModifiers(p.pos)
	i, ok := p.skipType(i)
	return ok && p.isDeclaratorName(i)
}

// isEnhancedFor reports whether the header of a for statement, just past
// '(', is Type name ':'.
func (p *Parser) isEnhancedFor() bool {
	i := p.skipModifiers(p.pos)
	i, ok := p.skipType(i)
	return ok && p.isDeclaratorName(i) && p.kindAt(i+1) == TokenColon
}

// isDeclaratorName reports whether the token at i names a declared
// variable. A reserved word counts when the declaration goes on after it,
// so that expectIdent reports it as a keyword.
func (p *Parser) isDeclaratorName(i int) bool {
	k := p.kindAt(i)
	if k == TokenIdent {
		return true
	}
	if !k.IsKeyword() || k == TokenInstanceof {
		return false
	}
	switch p.kindAt(i + 1) {
	case TokenAssign, TokenSemicolon, TokenComma, TokenLBracket, TokenColon:
		return true
	}
	return false
}

// isLocalClassDecl reports whether a block statement declares a type.
func (p *Parser) isLocalClassDecl() bool {
	i := p.pos
	for {
		switch k := p.kindAt(i); {
		case k == TokenAt && p.kindAt(i+1) != TokenInterface:
			next, ok := p.skipAnnotation(i)
			if !ok {
				return false
			}
			i = next
			continue
		case k == TokenFinal, k == TokenAbstract, k == TokenStatic, k == TokenStrictfp, k == TokenNonSealed:
			i++
			continue
		case k == TokenIdent && p.at(i).Literal == "sealed" && p.kindAt(i+1) != TokenIdent:
			i++
			continue
		case k == TokenClass, k == TokenInterface, k == TokenEnum:
			return true
		case k == TokenAt && p.kindAt(i+1) == TokenInterface:
			return true
		}
		return p.isRecordStart(i)
	}
}

// isRecordStart reports whether i starts "record Name(" or "record Name<".
func (p *Parser) isRecordStart(i int) bool {
	t := p.at(i)
	if t.Kind != TokenIdent || t.Literal != "record" || p.kindAt(i+1) != TokenIdent {
		return false
	}
	next := p.kindAt(i + 2)
	return next == TokenLParen || next == TokenLT
}

// isAnnotatedPackage reports whether leading annotations belong to a
// package declaration.
func (p *Parser) isAnnotatedPackage() bool {
	i := p.pos
	for p.kindAt(i) == TokenAt && p.kindAt(i+1) != TokenInterface {
		next, ok := p.skipAnnotation(i)
		if !ok {
			return false
		}
		i = next
	}
	return p.kindAt(i) == TokenPackage
}

func (p *Parser) isLambda() bool {
	if p.check(TokenIdent) && p.peekN(1).Kind == TokenArrow {
		return true
	}
	if !p.check(TokenLParen) {
		return false
	}
	i, ok := p.skipBalanced(p.pos, TokenLParen, TokenRParen)
	return ok && p.kindAt(i) == TokenArrow
}

func (p *Parser) isLambdaTypedParam() bool {
	switch p.peek().Kind {
	case TokenFinal, TokenAt:
		return true
	case TokenBoolean, TokenByte, TokenChar, TokenShort,
		TokenInt, TokenLong, TokenFloat, TokenDouble:
		return true
	case TokenIdent:
		switch p.peekN(1).Kind {
		case TokenIdent, TokenLT, TokenDot, TokenLBracket, TokenEllipsis:
			return true
		}
	}
	return false
}

// isCast reports whether a '(' starts a cast rather than a parenthesized
// expression.
func (p *Parser) isCast() bool {
	if !p.check(TokenLParen) {
		return false
	}
	first := p.kindAt(p.pos + 1)
	i, ok := p.skipType(p.pos + 1)
	if !ok {
		return false
	}
	for p.kindAt(i) == TokenBitAnd {
		if i, ok = p.skipType(i + 1); !ok {
			return false
		}
	}
	if p.kindAt(i) != TokenRParen {
		return false
	}
	if first.IsPrimitive() {
		return true
	}
	switch k := p.kindAt(i + 1); {
	case k == TokenIdent, k == TokenThis, k == TokenSuper, k == TokenNew,
		k == TokenLParen, k == TokenNot, k == TokenBitNot, k == TokenSwitch,
		k.IsLiteral(), k.IsPrimitive():
		return true
	}
	return false
}

// isWildcardPattern reports whether the current token is the unnamed
// pattern _ rather than the start of a type.
func (p *Parser) isWildcardPattern() bool {
	if !p.checkContextual("_") {
		return false
	}
	switch p.peekN(1).Kind {
	case TokenComma, TokenRParen, TokenArrow, TokenColon:
		return true
	}
	return false
}

// looksLikePattern reports whether a case label or instanceof operand is a
// type or record pattern rather than a constant expression or bare type.
func (p *Parser) looksLikePattern() bool {
	if p.isWildcardPattern() {
		return true
	}
	i := p.skipModifiers(p.pos)
	i, ok := p.skipType(i)
	if !ok {
		return false
	}
	return p.kindAt(i) == TokenIdent || p.kindAt(i) == TokenLParen
}

// isMethodDecl reports whether a member, after its modifiers and type
// parameters, is a method: Type name '('.
func (p *Parser) isMethodDecl() bool {
	i, ok := p.skipType(p.pos)
	if !ok || p.kindAt(i+1) != TokenLParen {
		return false
	}
	// a keyword here is a misnamed method, reported by expectIdent
	k := p.kindAt(i)
	return k == TokenIdent || k.IsKeyword()
}
