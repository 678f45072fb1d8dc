package parser

func (p *Parser) parseCompilationUnit() *CompilationUnit {
	start := p.peek().Span.Start
	cu := &CompilationUnit{}

	if p.check(TokenPackage) || p.isAnnotatedPackage() {
		cu.Package = p.parsePackageDecl()
	}

	for p.check(TokenImport) {
		cu.Imports = append(cu.Imports, p.parseImportDecl())
	}

	for !p.check(TokenEOF) {
		progress := p.mustProgress()
		if p.accept(TokenSemicolon) {
			continue
		}
		cu.Types = append(cu.Types, p.parseTypeDecl())
		if !progress() {
			break
		}
	}

	cu.Span = p.spanFrom(start)
	for _, tok := range p.comments {
		cu.Comments = append(cu.Comments, Comment{
			Span: tok.Span,
			Text: tok.Literal,
			Line: tok.Kind == TokenLineComment,
		})
	}
	return cu
}

func (p *Parser) parsePackageDecl() *PackageDecl {
	start := p.peek().Span.Start
	pkg := &PackageDecl{Annotations: p.parseAnnotations()}
	p.expect(TokenPackage)
	pkg.Name = p.parseQualifiedName()
	p.expect(TokenSemicolon)
	pkg.Span = p.spanFrom(start)
	return pkg
}

func (p *Parser) parseImportDecl() *ImportDecl {
	start := p.peek().Span.Start
	imp := &ImportDecl{}
	p.expect(TokenImport)
	imp.Static = p.accept(TokenStatic)
	imp.Name = p.expectIdent()
	for p.accept(TokenDot) {
		if p.accept(TokenStar) {
			imp.OnDemand = true
			break
		}
		imp.Name += "." + p.expectIdent()
	}
	if p.expect(TokenSemicolon) == nil {
		p.syncStatement()
	}
	imp.Span = p.spanFrom(start)
	return imp
}

// parseTypeDecl parses a top-level declaration. Anything other than a type
// declaration is reported and skipped up to the next member boundary.
func (p *Parser) parseTypeDecl() Decl {
	start := p.peek().Span.Start
	mods := p.parseModifiers()
	if p.isTypeDeclStart() {
		return p.parseClassDecl(start, mods)
	}
	p.errorExpected("class, interface, enum or record declaration")
	p.syncMember()
	if p.check(TokenRBrace) {
		p.advance()
	}
	return &BadDecl{Span: p.spanFrom(start)}
}

func (p *Parser) isTypeDeclStart() bool {
	switch p.peek().Kind {
	case TokenClass, TokenInterface, TokenEnum:
		return true
	case TokenAt:
		return p.peekN(1).Kind == TokenInterface
	}
	return p.isRecordStart(p.pos)
}

func (p *Parser) parseClassDecl(start Position, mods ModifierList) *ClassDecl {
	cd := &ClassDecl{Modifiers: mods}

	switch {
	case p.accept(TokenClass):
		cd.Kind = ClassKindClass
	case p.accept(TokenInterface):
		cd.Kind = ClassKindInterface
	case p.accept(TokenEnum):
		cd.Kind = ClassKindEnum
	case p.check(TokenAt):
		p.advance()
		p.expect(TokenInterface)
		cd.Kind = ClassKindAnnotation
	default:
		// record, checked by isTypeDeclStart
		p.advance()
		cd.Kind = ClassKindRecord
	}

	cd.Name = p.expectIdent()
	if p.check(TokenLT) {
		cd.TypeParams = p.parseTypeParameters()
	}
	if cd.Kind == ClassKindRecord {
		cd.Components = p.parseParameters()
	}

	if p.accept(TokenExtends) {
		if cd.Kind == ClassKindInterface {
			cd.Extends = p.parseTypeList()
		} else {
			cd.Extends = []*TypeRef{p.parseType()}
		}
	}
	if p.accept(TokenImplements) {
		cd.Implements = p.parseTypeList()
	}
	if p.checkContextual("permits") {
		p.advance()
		cd.Permits = p.parseTypeList()
	}

	if cd.Kind == ClassKindEnum {
		cd.Constants, cd.Members = p.parseEnumBody()
	} else {
		cd.Members = p.parseClassBody(cd.Name, cd.Kind)
	}

	cd.Span = p.spanFrom(start)
	return cd
}

func (p *Parser) parseClassBody(className string, kind ClassKind) []Decl {
	if p.expect(TokenLBrace) == nil {
		return nil
	}
	members := p.parseMembers(className, kind)
	p.expect(TokenRBrace)
	return members
}

func (p *Parser) parseMembers(className string, kind ClassKind) []Decl {
	var members []Decl
	for !p.check(TokenRBrace) && !p.check(TokenEOF) {
		progress := p.mustProgress()
		if p.accept(TokenSemicolon) {
			continue
		}
		members = append(members, p.parseMember(className, kind))
		if !progress() {
			break
		}
	}
	return members
}

func (p *Parser) parseEnumBody() ([]*EnumConstant, []Decl) {
	if p.expect(TokenLBrace) == nil {
		return nil, nil
	}
	var constants []*EnumConstant
	for p.check(TokenIdent) || p.check(TokenAt) {
		progress := p.mustProgress()
		constants = append(constants, p.parseEnumConstant())
		if !p.accept(TokenComma) {
			break
		}
		if !progress() {
			break
		}
	}
	var members []Decl
	if p.accept(TokenSemicolon) {
		members = p.parseMembers("", ClassKindEnum)
	}
	p.expect(TokenRBrace)
	return constants, members
}

func (p *Parser) parseEnumConstant() *EnumConstant {
	start := p.peek().Span.Start
	ec := &EnumConstant{Annotations: p.parseAnnotations()}
	ec.Name = p.expectIdent()
	if p.check(TokenLParen) {
		ec.HasArgs = true
		ec.Args = p.parseArguments()
	}
	if p.check(TokenLBrace) {
		ec.HasBody = true
		ec.Body = p.parseClassBody("", ClassKindClass)
	}
	ec.Span = p.spanFrom(start)
	return ec
}

// parseMember parses one class body declaration. className is used to
// recognize compact record constructors.
func (p *Parser) parseMember(className string, kind ClassKind) Decl {
	start := p.peek().Span.Start

	if p.check(TokenLBrace) || (p.check(TokenStatic) && p.peekN(1).Kind == TokenLBrace) {
		init := &Initializer{Static: p.accept(TokenStatic)}
		init.Body = p.parseBlock()
		init.Span = p.spanFrom(start)
		return init
	}

	mods := p.parseModifiers()
	if p.isTypeDeclStart() {
		return p.parseClassDecl(start, mods)
	}

	var typeParams []*TypeParameter
	if p.check(TokenLT) {
		typeParams = p.parseTypeParameters()
	}

	switch {
	case p.check(TokenIdent) && p.peekN(1).Kind == TokenLParen:
		name := p.advance().Literal
		return p.parseMethodRest(start, mods, typeParams, nil, name)
	case kind == ClassKindRecord && p.check(TokenIdent) && p.peek().Literal == className && p.peekN(1).Kind == TokenLBrace:
		p.advance()
		ctor := &MethodSignature{Modifiers: mods, TypeParams: typeParams, Name: className, Compact: true}
		ctor.Body = p.parseBlock()
		ctor.Span = p.spanFrom(start)
		return ctor
	case p.isMethodDecl():
		ret := p.parseType()
		name := p.expectIdent()
		return p.parseMethodRest(start, mods, typeParams, ret, name)
	}

	if _, ok := p.skipType(p.pos); !ok {
		p.errorExpected("member declaration")
		p.syncMember()
		return &BadDecl{Span: p.spanFrom(start)}
	}
	field := &FieldDecl{Modifiers: mods, Type: p.parseType()}
	field.Vars = p.parseVarDeclarators()
	if p.expect(TokenSemicolon) == nil {
		p.syncMember()
	}
	field.Span = p.spanFrom(start)
	return field
}

// parseMethodRest parses a method or constructor from its parameter list
// on. A nil ret marks a constructor.
func (p *Parser) parseMethodRest(start Position, mods ModifierList, typeParams []*TypeParameter, ret *TypeRef, name string) *MethodSignature {
	m := &MethodSignature{
		Modifiers:  mods,
		TypeParams: typeParams,
		ReturnType: ret,
		Name:       name,
	}
	m.Params = p.parseParameters()

	for p.check(TokenLBracket) && p.peekN(1).Kind == TokenRBracket {
		p.advance()
		p.advance()
		m.ExtraDims++
	}

	if p.accept(TokenThrows) {
		m.Throws = p.parseTypeList()
	}

	switch {
	case p.accept(TokenDefault):
		m.Default = p.parseElementValue()
		p.expect(TokenSemicolon)
	case p.check(TokenLBrace):
		m.Body = p.parseBlock()
	case p.accept(TokenSemicolon), p.check(TokenEOF):
	default:
		p.errorExpected("';' or method body")
		p.syncMember()
	}

	m.Span = p.spanFrom(start)
	return m
}

func (p *Parser) parseParameters() []*Parameter {
	if p.expect(TokenLParen) == nil {
		return nil
	}
	params := []*Parameter{}
	if !p.check(TokenRParen) {
		params = p.parseParameterList(TokenRParen)
	}
	p.expect(TokenRParen)
	return params
}

// parseParameterList parses comma-separated parameters up to closer. A
// varargs parameter anywhere but last is reported and kept.
func (p *Parser) parseParameterList(closer TokenKind) []*Parameter {
	var params []*Parameter
	for !p.check(closer) && !p.check(TokenEOF) {
		progress := p.mustProgress()
		params = append(params, p.parseParameter())
		if !p.accept(TokenComma) {
			break
		}
		if !progress() {
			break
		}
	}
	for _, prm := range params[:max(len(params)-1, 0)] {
		if prm.Type != nil && prm.Type.Varargs {
			p.structuralError(prm.Span, p.tokenAt(prm.Span.Start),
				"varargs parameter '%s' must be the last parameter", prm.Name)
		}
	}
	return params
}

func (p *Parser) parseParameter() *Parameter {
	start := p.peek().Span.Start
	mods := p.parseModifiers()
	prm := &Parameter{}
	prm.Type = p.parseParameterType()
	prm.Modifiers = moveTypeAnnotations(mods, prm.Type)
	if p.check(TokenThis) {
		// receiver parameter
		prm.Name = p.advance().Literal
	} else {
		prm.Name = p.expectIdent()
	}
	for p.check(TokenLBracket) && p.peekN(1).Kind == TokenRBracket {
		p.advance()
		p.advance()
		prm.Type.ArrayDepth++
	}
	prm.Span = p.spanFrom(start)
	return prm
}

// moveTypeAnnotations moves the annotations written directly in front of
// the type, after any modifier keyword, from mods onto t.
func moveTypeAnnotations(mods ModifierList, t *TypeRef) ModifierList {
	cut := len(mods)
	for cut > 0 && mods[cut-1].Annotation != nil {
		cut--
	}
	if cut == len(mods) || t == nil {
		return mods
	}
	var anns []*Annotation
	for _, mod := range mods[cut:] {
		anns = append(anns, mod.Annotation)
	}
	// Outer<T>.Inner carries its leading annotations on the outermost type
	root := t
	for root.Scope != nil {
		root = root.Scope
	}
	root.Annotations = append(anns, root.Annotations...)
	for s := t; s != nil; s = s.Scope {
		s.Span.Start = anns[0].Span.Start
	}
	if cut == 0 {
		return nil
	}
	return mods[:cut]
}

// tokenAt returns the token that starts at pos.
func (p *Parser) tokenAt(pos Position) Token {
	for _, tok := range p.tokens {
		if tok.Span.Start.Offset == pos.Offset {
			return tok
		}
	}
	return p.eof()
}

func (p *Parser) parseVarDeclarators() []*VarDeclarator {
	var vars []*VarDeclarator
	for {
		progress := p.mustProgress()
		start := p.peek().Span.Start
		v := &VarDeclarator{Name: p.expectIdent()}
		for p.check(TokenLBracket) && p.peekN(1).Kind == TokenRBracket {
			p.advance()
			p.advance()
			v.Dims++
		}
		if p.accept(TokenAssign) {
			v.Init = p.parseVarInit()
		}
		v.Span = p.spanFrom(start)
		vars = append(vars, v)
		if !p.accept(TokenComma) {
			break
		}
		if !progress() {
			break
		}
	}
	return vars
}

func (p *Parser) parseVarInit() Expr {
	if p.check(TokenLBrace) {
		return p.parseArrayInitWith((*Parser).parseVarInit)
	}
	return p.parseExpression()
}
