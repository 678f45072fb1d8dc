package parser

import (
	"fmt"
	"slices"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithStartLine numbers the first line of the input as line, for snippets
// cut out of a larger file.
func WithStartLine(line int) Option {
	return func(p *Parser) {
		p.startLine = line
	}
}

// WithComments keeps comment tokens. They are returned on the
// compilation unit and from Parser.Comments.
func WithComments() Option {
	return func(p *Parser) {
		p.includeComments = true
	}
}

// Parser holds the state of a single parse. A Parser is not safe for
// concurrent use; each entry point creates its own.
type Parser struct {
	file            string
	startLine       int
	includeComments bool
	tokens          []Token
	comments        []Token
	pos             int
	diags           Diagnostics
	reported        map[reportKey]bool
}

func newParser(src []byte, opts []Option) *Parser {
	p := &Parser{
		startLine: 1,
		reported:  make(map[reportKey]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.tokenize(NewLexer(src, p.file))
	return p
}

func (p *Parser) Comments() []Token {
	return p.comments
}

func (p *Parser) Diagnostics() Diagnostics {
	return p.diags
}

// ParseCompilationUnit parses a whole source file.
func ParseCompilationUnit(src []byte, opts ...Option) (*CompilationUnit, Diagnostics) {
	p := newParser(src, opts)
	cu := p.parseCompilationUnit()
	return cu, p.diags
}

// ParseMethodSignature parses one method or constructor declaration. The
// trailing ';' or body may be omitted.
func ParseMethodSignature(src []byte, opts ...Option) (*MethodSignature, Diagnostics) {
	p := newParser(src, opts)
	start := p.peek().Span.Start
	mods := p.parseModifiers()
	var typeParams []*TypeParameter
	if p.check(TokenLT) {
		typeParams = p.parseTypeParameters()
	}
	var sig *MethodSignature
	if p.check(TokenIdent) && p.peekN(1).Kind == TokenLParen {
		sig = p.parseMethodRest(start, mods, typeParams, nil, p.advance().Literal)
	} else {
		ret := p.parseType()
		name := p.expectIdent()
		sig = p.parseMethodRest(start, mods, typeParams, ret, name)
	}
	p.expectEOF()
	return sig, p.diags
}

// ParseParameters parses a formal parameter list, with or without the
// surrounding parentheses.
func ParseParameters(src []byte, opts ...Option) ([]*Parameter, Diagnostics) {
	p := newParser(src, opts)
	var params []*Parameter
	if p.check(TokenLParen) {
		params = p.parseParameters()
	} else if !p.check(TokenEOF) {
		params = p.parseParameterList(TokenEOF)
	}
	p.expectEOF()
	return params, p.diags
}

func ParseExpression(src []byte, opts ...Option) (Expr, Diagnostics) {
	p := newParser(src, opts)
	x := p.parseExpression()
	p.expectEOF()
	return x, p.diags
}

func ParseStatement(src []byte, opts ...Option) (Stmt, Diagnostics) {
	p := newParser(src, opts)
	s := p.parseBlockStatement()
	p.expectEOF()
	return s, p.diags
}

func (p *Parser) tokenize(lexer *Lexer) {
	shift := p.startLine - 1
	for tok := range lexer.Tokens() {
		if shift != 0 {
			tok.Span.Start.Line += shift
			tok.Span.End.Line += shift
		}
		switch tok.Kind {
		case TokenWhitespace:
			continue
		case TokenComment, TokenLineComment:
			if p.includeComments {
				p.comments = append(p.comments, tok)
			}
			continue
		case TokenError:
			p.report(Diagnostic{
				Kind:    LexError,
				Message: lexErrorMessage(tok),
				Got:     tok,
				Span:    tok.Span,
			})
		}
		p.tokens = append(p.tokens, tok)
	}
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekN(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) eof() Token {
	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1]
	}
	return Token{Kind: TokenEOF}
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) && tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) checkContextual(word string) bool {
	tok := p.peek()
	return tok.Kind == TokenIdent && tok.Literal == word
}

func (p *Parser) match(kinds ...TokenKind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// accept consumes the next token if it has the given kind.
func (p *Parser) accept(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind, or records a syntax error and
// leaves the input where it is.
func (p *Parser) expect(kind TokenKind) *Token {
	tok := p.peek()
	if tok.Kind == kind {
		p.advance()
		return &tok
	}
	p.errorExpected("'" + kind.String() + "'")
	return nil
}

// expectIdent consumes an identifier and returns its text. A reserved
// word in identifier position is reported and consumed so that the rest
// of the declaration still parses.
func (p *Parser) expectIdent() string {
	tok := p.peek()
	switch {
	case tok.Kind == TokenIdent:
		p.advance()
		return tok.Literal
	case tok.Kind.IsKeyword():
		p.report(Diagnostic{
			Kind:     SyntaxError,
			Message:  fmt.Sprintf("'%s' is a keyword and cannot be used as an identifier", tok.Literal),
			Expected: "identifier",
			Got:      tok,
			Span:     tok.Span,
		})
		p.advance()
		return tok.Literal
	}
	p.errorExpected("identifier")
	return ""
}

func (p *Parser) expectEOF() {
	if !p.check(TokenEOF) {
		p.errorExpected("end of input")
	}
}

// mustProgress returns a function that checks if the parser has advanced.
// Call it at the start of a loop iteration, then call the returned function
// at the end to break if no progress was made.
func (p *Parser) mustProgress() func() bool {
	saved := p.pos
	return func() bool {
		if p.pos == saved {
			if !p.check(TokenEOF) {
				p.advance()
			}
			return false
		}
		return true
	}
}

// spanFrom closes a span that started at start on the last consumed token.
func (p *Parser) spanFrom(start Position) Span {
	end := start
	if p.pos > 0 && p.pos <= len(p.tokens) {
		end = p.tokens[p.pos-1].Span.End
	}
	if end.Offset < start.Offset {
		end = start
	}
	return Span{Start: start, End: end}
}

// reportKey identifies a failure by source offset. An Error token and the
// syntax error it causes share a key; structural errors have their own.
type reportKey struct {
	offset     int
	structural bool
}

// report records d unless an equivalent diagnostic already exists at the
// same source offset, so a single failure never produces more than one
// entry.
func (p *Parser) report(d Diagnostic) {
	key := reportKey{d.Span.Start.Offset, d.Kind == StructuralError}
	if p.reported[key] {
		return
	}
	p.reported[key] = true
	p.diags = append(p.diags, d)
}

func (p *Parser) errorExpected(expected string) {
	tok := p.peek()
	p.report(Diagnostic{
		Kind:     SyntaxError,
		Message:  fmt.Sprintf("expected %s, found %s", expected, tok),
		Expected: expected,
		Got:      tok,
		Span:     tok.Span,
	})
}

func (p *Parser) structuralError(span Span, got Token, format string, args ...any) {
	p.report(Diagnostic{
		Kind:    StructuralError,
		Message: fmt.Sprintf(format, args...),
		Got:     got,
		Span:    span,
	})
}

// recoverTo skips at least one token and then everything up to the next
// token of one of the given kinds.
func (p *Parser) recoverTo(kinds ...TokenKind) {
	if !p.check(TokenEOF) {
		p.advance()
	}
	for !p.check(TokenEOF) && !p.match(kinds...) {
		p.advance()
	}
}

// syncStatement skips to the next statement boundary: past a ';' or up to
// a '}' that closes the enclosing block. Nested braces are skipped whole.
func (p *Parser) syncStatement() {
	depth := 0
	for !p.check(TokenEOF) {
		switch p.peek().Kind {
		case TokenSemicolon:
			p.advance()
			if depth == 0 {
				return
			}
			continue
		case TokenLBrace:
			depth++
		case TokenRBrace:
			if depth == 0 {
				return
			}
			depth--
			p.advance()
			if depth == 0 {
				return
			}
			continue
		}
		p.advance()
	}
}

// syncMember skips to the start of the next class member.
func (p *Parser) syncMember() {
	depth := 0
	for !p.check(TokenEOF) {
		switch p.peek().Kind {
		case TokenSemicolon:
			p.advance()
			if depth == 0 {
				return
			}
			continue
		case TokenLBrace:
			depth++
		case TokenRBrace:
			if depth == 0 {
				return
			}
			depth--
			p.advance()
			if depth == 0 {
				return
			}
			continue
		case TokenAt, TokenPublic, TokenProtected, TokenPrivate, TokenStatic,
			TokenAbstract, TokenFinal, TokenClass, TokenInterface, TokenEnum:
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}

// expectGT consumes a '>' closing a type argument list, splitting '>>',
// '>>>', '>=', '>>=' and '>>>=' so the rest stays in the input.
func (p *Parser) expectGT() bool {
	switch p.peek().Kind {
	case TokenGT:
		p.advance()
		return true
	case TokenShr:
		p.splitToken(TokenGT)
		return true
	case TokenUShr:
		p.splitToken(TokenShr)
		return true
	case TokenGE:
		p.splitToken(TokenAssign)
		return true
	case TokenShrAssign:
		p.splitToken(TokenGE)
		return true
	case TokenUShrAssign:
		p.splitToken(TokenShrAssign)
		return true
	}
	p.errorExpected("'>'")
	return false
}

// splitToken replaces the current token with a one-character '>' followed
// by the remainder, then consumes the '>'.
func (p *Parser) splitToken(remainder TokenKind) {
	tok := p.tokens[p.pos]
	mid := Position{
		File:   tok.Span.Start.File,
		Offset: tok.Span.Start.Offset + 1,
		Line:   tok.Span.Start.Line,
		Column: tok.Span.Start.Column + 1,
	}
	gt := Token{Kind: TokenGT, Literal: ">", Span: Span{Start: tok.Span.Start, End: mid}}
	rest := Token{Kind: remainder, Literal: tok.Literal[1:], Span: Span{Start: mid, End: tok.Span.End}}
	p.tokens[p.pos] = gt
	p.tokens = slices.Insert(p.tokens, p.pos+1, rest)
	p.advance()
}
