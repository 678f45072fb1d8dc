package parser

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Tokens returns the remaining tokens lazily, ending with (and including)
// the EOF token. Restarting requires a new Lexer.
func (l *Lexer) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := l.NextToken()
			if !yield(tok) || tok.Kind == TokenEOF {
				return
			}
		}
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) peekRune() (rune, int) {
	if l.pos >= len(l.input) {
		return 0, 0
	}
	return utf8.DecodeRune(l.input[l.pos:])
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// advanceRune consumes one code point; columns count bytes like the rest of
// the position tracking.
func (l *Lexer) advanceRune() {
	_, size := l.peekRune()
	l.advanceN(size)
}

func (l *Lexer) NextToken() Token {
	startPos := l.Position()

	if l.atEOF() {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanLineComment(startPos)
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(startPos)
	}

	if isWhitespace(ch) {
		return l.scanWhitespace(startPos)
	}

	if r, _ := l.peekRune(); isJavaLetter(r) {
		return l.scanIdentOrKeyword(startPos)
	}

	if isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))) {
		return l.scanNumber(startPos)
	}

	if ch == '\'' {
		return l.scanCharLiteral(startPos)
	}

	if ch == '"' {
		if l.peekN(1) == '"' && l.peekN(2) == '"' {
			return l.scanTextBlock(startPos)
		}
		return l.scanStringLiteral(startPos)
	}

	return l.scanOperator(startPos)
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for isWhitespace(l.peek()) {
		l.advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(2)
	for !l.atEOF() && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenLineComment, start)
}

func (l *Lexer) scanBlockComment(start Position) Token {
	l.advanceN(2)
	for !l.atEOF() {
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			return l.token(TokenComment, start)
		}
		l.advance()
	}
	return l.token(TokenError, start)
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	for {
		r, _ := l.peekRune()
		if l.atEOF() || !isJavaLetterOrDigit(r) {
			break
		}
		l.advanceRune()
	}
	end := l.Position()
	literal := string(l.input[start.Offset:end.Offset])

	if literal == "non" && strings.HasPrefix(string(l.input[l.pos:]), "-sealed") {
		rest := l.input[l.pos+len("-sealed"):]
		r, _ := utf8.DecodeRune(rest)
		if len(rest) == 0 || !isJavaLetterOrDigit(r) {
			l.advanceN(len("-sealed"))
			return l.token(TokenNonSealed, start)
		}
	}

	return Token{
		Kind:    LookupKeyword(literal),
		Span:    Span{Start: start, End: end},
		Literal: literal,
	}
}

func (l *Lexer) scanDigits(valid func(byte) bool) {
	for valid(l.peek()) || l.peek() == '_' {
		l.advance()
	}
}

func (l *Lexer) scanNumber(start Position) Token {
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		return l.scanHexNumber(start)
	}
	if l.peek() == '0' && (l.peekN(1) == 'b' || l.peekN(1) == 'B') {
		l.advanceN(2)
		l.scanDigits(func(ch byte) bool { return ch == '0' || ch == '1' })
		if l.peek() == 'l' || l.peek() == 'L' {
			l.advance()
		}
		return l.token(TokenIntLiteral, start)
	}

	isFloat := false
	l.scanDigits(isDigit)

	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.advance()
		l.scanDigits(isDigit)
	} else if l.peek() == '.' && l.peekN(1) != '.' && !isJavaStart(l.peekN(1)) {
		// 1. is a valid double literal
		isFloat = true
		l.advance()
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		l.scanDigits(isDigit)
	}

	switch l.peek() {
	case 'f', 'F', 'd', 'D':
		isFloat = true
		l.advance()
	case 'l', 'L':
		l.advance()
	}

	if isFloat {
		return l.token(TokenFloatLiteral, start)
	}
	return l.token(TokenIntLiteral, start)
}

func (l *Lexer) scanHexNumber(start Position) Token {
	l.advanceN(2)
	l.scanDigits(isHexDigit)
	isFloat := false
	if l.peek() == '.' {
		isFloat = true
		l.advance()
		l.scanDigits(isHexDigit)
	}
	if l.peek() == 'p' || l.peek() == 'P' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		l.scanDigits(isDigit)
	}
	if isFloat {
		switch l.peek() {
		case 'f', 'F', 'd', 'D':
			l.advance()
		}
		return l.token(TokenFloatLiteral, start)
	}
	if l.peek() == 'l' || l.peek() == 'L' {
		l.advance()
	}
	return l.token(TokenIntLiteral, start)
}

func (l *Lexer) scanCharLiteral(start Position) Token {
	l.advance()
	for !l.atEOF() && l.peek() != '\'' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() != '\'' {
		return l.token(TokenError, start)
	}
	l.advance()
	return l.token(TokenCharLiteral, start)
}

func (l *Lexer) scanStringLiteral(start Position) Token {
	l.advance()
	for !l.atEOF() && l.peek() != '"' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() != '"' {
		return l.token(TokenError, start)
	}
	l.advance()
	return l.token(TokenStringLiteral, start)
}

func (l *Lexer) scanTextBlock(start Position) Token {
	l.advanceN(3)
	for !l.atEOF() {
		if l.peek() == '"' && l.peekN(1) == '"' && l.peekN(2) == '"' {
			l.advanceN(3)
			return l.token(TokenTextBlock, start)
		}
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	return l.token(TokenError, start)
}

var singleCharOperators = map[byte]TokenKind{
	'(': TokenLParen,
	')': TokenRParen,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'[': TokenLBracket,
	']': TokenRBracket,
	';': TokenSemicolon,
	',': TokenComma,
	'@': TokenAt,
	'~': TokenBitNot,
	'?': TokenQuestion,
}

// operators lists multi-character operators longest first so the first
// prefix match wins.
var operators = []struct {
	text string
	kind TokenKind
}{
	{">>>=", TokenUShrAssign},
	{"<<=", TokenShlAssign},
	{">>=", TokenShrAssign},
	{">>>", TokenUShr},
	{"...", TokenEllipsis},
	{"::", TokenColonColon},
	{"->", TokenArrow},
	{"==", TokenEQ},
	{"!=", TokenNE},
	{"<=", TokenLE},
	{">=", TokenGE},
	{"&&", TokenAnd},
	{"||", TokenOr},
	{"<<", TokenShl},
	{">>", TokenShr},
	{"++", TokenIncrement},
	{"--", TokenDecrement},
	{"+=", TokenPlusAssign},
	{"-=", TokenMinusAssign},
	{"*=", TokenStarAssign},
	{"/=", TokenSlashAssign},
	{"%=", TokenPercentAssign},
	{"&=", TokenAndAssign},
	{"|=", TokenOrAssign},
	{"^=", TokenXorAssign},
	{".", TokenDot},
	{":", TokenColon},
	{"=", TokenAssign},
	{"<", TokenLT},
	{">", TokenGT},
	{"!", TokenNot},
	{"&", TokenBitAnd},
	{"|", TokenBitOr},
	{"^", TokenBitXor},
	{"+", TokenPlus},
	{"-", TokenMinus},
	{"*", TokenStar},
	{"/", TokenSlash},
	{"%", TokenPercent},
}

func (l *Lexer) scanOperator(start Position) Token {
	if kind, ok := singleCharOperators[l.peek()]; ok {
		l.advance()
		return l.token(kind, start)
	}

	rest := l.input[l.pos:]
	for _, op := range operators {
		if len(rest) >= len(op.text) && string(rest[:len(op.text)]) == op.text {
			l.advanceN(len(op.text))
			return l.token(op.kind, start)
		}
	}

	l.advanceRune()
	return l.token(TokenError, start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

// lexErrorMessage describes why the lexer produced an Error token.
func lexErrorMessage(tok Token) string {
	switch {
	case strings.HasPrefix(tok.Literal, `"""`):
		return "unterminated text block"
	case strings.HasPrefix(tok.Literal, `"`):
		return "unterminated string literal"
	case strings.HasPrefix(tok.Literal, "'"):
		return "unterminated character literal"
	case strings.HasPrefix(tok.Literal, "/*"):
		return "unterminated block comment"
	}
	return "unrecognized character " + quoteLiteral(tok.Literal)
}

func quoteLiteral(s string) string {
	return "'" + s + "'"
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isJavaStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isJavaLetter(r rune) bool {
	if r < utf8.RuneSelf {
		return isJavaStart(byte(r))
	}
	return unicode.IsLetter(r)
}

func isJavaLetterOrDigit(r rune) bool {
	if r < utf8.RuneSelf {
		return isJavaStart(byte(r)) || isDigit(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
