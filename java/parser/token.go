package parser

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes strictly before q in the same source.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment
	TokenLineComment

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenCharLiteral
	TokenStringLiteral
	TokenTextBlock
	TokenTrue
	TokenFalse
	TokenNull

	// Reserved keywords
	keywordsStart
	TokenAbstract
	TokenAssert
	TokenBoolean
	TokenBreak
	TokenByte
	TokenCase
	TokenCatch
	TokenChar
	TokenClass
	TokenConst
	TokenContinue
	TokenDefault
	TokenDo
	TokenDouble
	TokenElse
	TokenEnum
	TokenExtends
	TokenFinal
	TokenFinally
	TokenFloat
	TokenFor
	TokenGoto
	TokenIf
	TokenImplements
	TokenImport
	TokenInstanceof
	TokenInt
	TokenInterface
	TokenLong
	TokenNative
	TokenNew
	TokenPackage
	TokenPrivate
	TokenProtected
	TokenPublic
	TokenReturn
	TokenShort
	TokenStatic
	TokenStrictfp
	TokenSuper
	TokenSwitch
	TokenSynchronized
	TokenThis
	TokenThrow
	TokenThrows
	TokenTransient
	TokenTry
	TokenVoid
	TokenVolatile
	TokenWhile
	keywordsEnd

	// non-sealed is the only hyphenated contextual keyword, so the lexer
	// has to produce it. The other contextual keywords (var, yield, record,
	// sealed, permits, when) stay identifiers and are recognized by the parser.
	TokenNonSealed

	// Operators and punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenEllipsis
	TokenAt
	TokenColonColon

	TokenAssign
	TokenEQ
	TokenNE
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenAnd
	TokenOr
	TokenNot
	TokenBitAnd
	TokenBitOr
	TokenBitXor
	TokenBitNot
	TokenShl
	TokenShr
	TokenUShr
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenIncrement
	TokenDecrement
	TokenQuestion
	TokenColon
	TokenArrow
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenSlashAssign
	TokenPercentAssign
	TokenAndAssign
	TokenOrAssign
	TokenXorAssign
	TokenShlAssign
	TokenShrAssign
	TokenUShrAssign
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "EOF",
	TokenError:         "Error",
	TokenWhitespace:    "Whitespace",
	TokenComment:       "Comment",
	TokenLineComment:   "LineComment",
	TokenIdent:         "Identifier",
	TokenIntLiteral:    "IntLiteral",
	TokenFloatLiteral:  "FloatLiteral",
	TokenCharLiteral:   "CharLiteral",
	TokenStringLiteral: "StringLiteral",
	TokenTextBlock:     "TextBlock",
	TokenTrue:          "true",
	TokenFalse:         "false",
	TokenNull:          "null",
	TokenNonSealed:     "non-sealed",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenSemicolon:     ";",
	TokenComma:         ",",
	TokenDot:           ".",
	TokenEllipsis:      "...",
	TokenAt:            "@",
	TokenColonColon:    "::",
	TokenAssign:        "=",
	TokenEQ:            "==",
	TokenNE:            "!=",
	TokenLT:            "<",
	TokenLE:            "<=",
	TokenGT:            ">",
	TokenGE:            ">=",
	TokenAnd:           "&&",
	TokenOr:            "||",
	TokenNot:           "!",
	TokenBitAnd:        "&",
	TokenBitOr:         "|",
	TokenBitXor:        "^",
	TokenBitNot:        "~",
	TokenShl:           "<<",
	TokenShr:           ">>",
	TokenUShr:          ">>>",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenSlash:         "/",
	TokenPercent:       "%",
	TokenIncrement:     "++",
	TokenDecrement:     "--",
	TokenQuestion:      "?",
	TokenColon:         ":",
	TokenArrow:         "->",
	TokenPlusAssign:    "+=",
	TokenMinusAssign:   "-=",
	TokenStarAssign:    "*=",
	TokenSlashAssign:   "/=",
	TokenPercentAssign: "%=",
	TokenAndAssign:     "&=",
	TokenOrAssign:      "|=",
	TokenXorAssign:     "^=",
	TokenShlAssign:     "<<=",
	TokenShrAssign:     ">>=",
	TokenUShrAssign:    ">>>=",
}

// keywords maps reserved words to their kinds. true, false and null are
// literals rather than keywords, but they can't be identifiers either.
var keywords = map[string]TokenKind{
	"abstract":     TokenAbstract,
	"assert":       TokenAssert,
	"boolean":      TokenBoolean,
	"break":        TokenBreak,
	"byte":         TokenByte,
	"case":         TokenCase,
	"catch":        TokenCatch,
	"char":         TokenChar,
	"class":        TokenClass,
	"const":        TokenConst,
	"continue":     TokenContinue,
	"default":      TokenDefault,
	"do":           TokenDo,
	"double":       TokenDouble,
	"else":         TokenElse,
	"enum":         TokenEnum,
	"extends":      TokenExtends,
	"final":        TokenFinal,
	"finally":      TokenFinally,
	"float":        TokenFloat,
	"for":          TokenFor,
	"goto":         TokenGoto,
	"if":           TokenIf,
	"implements":   TokenImplements,
	"import":       TokenImport,
	"instanceof":   TokenInstanceof,
	"int":          TokenInt,
	"interface":    TokenInterface,
	"long":         TokenLong,
	"native":       TokenNative,
	"new":          TokenNew,
	"package":      TokenPackage,
	"private":      TokenPrivate,
	"protected":    TokenProtected,
	"public":       TokenPublic,
	"return":       TokenReturn,
	"short":        TokenShort,
	"static":       TokenStatic,
	"strictfp":     TokenStrictfp,
	"super":        TokenSuper,
	"switch":       TokenSwitch,
	"synchronized": TokenSynchronized,
	"this":         TokenThis,
	"throw":        TokenThrow,
	"throws":       TokenThrows,
	"transient":    TokenTransient,
	"try":          TokenTry,
	"void":         TokenVoid,
	"volatile":     TokenVolatile,
	"while":        TokenWhile,
	"true":         TokenTrue,
	"false":        TokenFalse,
	"null":         TokenNull,
}

func init() {
	for word, kind := range keywords {
		tokenKindNames[kind] = word
	}
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsKeyword reports whether k is a reserved word, including the literals
// true, false and null.
func (k TokenKind) IsKeyword() bool {
	return (k > keywordsStart && k < keywordsEnd) || k == TokenTrue || k == TokenFalse || k == TokenNull
}

// IsPrimitive reports whether k names a primitive type.
func (k TokenKind) IsPrimitive() bool {
	switch k {
	case TokenBoolean, TokenByte, TokenChar, TokenShort,
		TokenInt, TokenLong, TokenFloat, TokenDouble:
		return true
	}
	return false
}

func (k TokenKind) IsLiteral() bool {
	switch k {
	case TokenIntLiteral, TokenFloatLiteral, TokenCharLiteral,
		TokenStringLiteral, TokenTextBlock, TokenTrue, TokenFalse, TokenNull:
		return true
	}
	return false
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenIdent, TokenIntLiteral, TokenFloatLiteral, TokenCharLiteral,
		TokenStringLiteral, TokenTextBlock, TokenError:
		return fmt.Sprintf("%q", t.Literal)
	}
	return "'" + t.Kind.String() + "'"
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
