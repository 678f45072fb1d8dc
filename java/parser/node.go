package parser

// Node is implemented by every AST value. Nodes are built once by the
// parser and never mutated afterwards.
type Node interface {
	NodeSpan() Span
}

// Decl is a declaration that can appear at the top level of a compilation
// unit or inside a class body.
type Decl interface {
	Node
	declNode()
}

type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

// Pattern is one of *RecordPattern, *BindingPattern, *TypePattern or
// *LiteralPattern.
type Pattern interface {
	Node
	patternNode()
}

type Comment struct {
	Span Span
	Text string
	Line bool
}

type CompilationUnit struct {
	Span     Span
	Package  *PackageDecl
	Imports  []*ImportDecl
	Types    []Decl
	Comments []Comment
}

type PackageDecl struct {
	Span        Span
	Annotations []*Annotation
	Name        string
}

type ImportDecl struct {
	Span     Span
	Static   bool
	Name     string
	OnDemand bool
}

type AnnotationElement struct {
	// Name is empty for the single-element form @Foo(value).
	Name  string
	Value Expr
}

type Annotation struct {
	Span     Span
	Name     string
	Elements []AnnotationElement
	// Parens records whether the source wrote an argument list, so that
	// @Foo() prints back as written.
	Parens bool
}

// Modifier is either an annotation or a modifier keyword.
type Modifier struct {
	Span       Span
	Annotation *Annotation
	Keyword    string
}

// ModifierList keeps annotations and keywords interleaved in source order.
type ModifierList []Modifier

func (m ModifierList) Annotations() []*Annotation {
	var out []*Annotation
	for _, mod := range m {
		if mod.Annotation != nil {
			out = append(out, mod.Annotation)
		}
	}
	return out
}

func (m ModifierList) Keywords() []string {
	var out []string
	for _, mod := range m {
		if mod.Annotation == nil {
			out = append(out, mod.Keyword)
		}
	}
	return out
}

func (m ModifierList) Has(keyword string) bool {
	for _, mod := range m {
		if mod.Annotation == nil && mod.Keyword == keyword {
			return true
		}
	}
	return false
}

// TypeRef is any type written in source. A wildcard type argument has Name
// "?" and an optional Bound introduced by BoundKind ("extends" or "super").
type TypeRef struct {
	Span        Span
	Annotations []*Annotation
	Name        string
	Args        []*TypeRef
	ArrayDepth  int
	BoundKind   string
	Bound       *TypeRef
	// Scope is the enclosing parameterized type of Outer<T>.Inner.
	Scope *TypeRef
	// Diamond records new Foo<>().
	Diamond bool

	// Varargs is set for the trailing T... parameter type. Annotations
	// written between the type and the ellipsis belong to the ellipsis,
	// not to the element type, and are kept apart in VarargsAnnotations.
	Varargs            bool
	VarargsAnnotations []*Annotation
}

func (t *TypeRef) IsWildcard() bool {
	return t.Name == "?"
}

type TypeParameter struct {
	Span        Span
	Annotations []*Annotation
	Name        string
	Bounds      []*TypeRef
}

type Parameter struct {
	Span      Span
	Modifiers ModifierList
	Type      *TypeRef
	Name      string
}

func (p *Parameter) Final() bool {
	return p.Modifiers.Has("final")
}

// Annotations returns every annotation on the parameter in source order,
// whether written among the modifiers or directly on the type.
func (p *Parameter) Annotations() []*Annotation {
	anns := p.Modifiers.Annotations()
	if p.Type != nil {
		anns = append(anns, p.Type.Annotations...)
	}
	return anns
}

// MethodSignature is a method or constructor declaration. ReturnType is nil
// for constructors; Body is nil when the declaration ends with ';'.
type MethodSignature struct {
	Span       Span
	Modifiers  ModifierList
	TypeParams []*TypeParameter
	ReturnType *TypeRef
	Name       string
	Params     []*Parameter
	// ExtraDims counts legacy brackets after the parameter list: int f()[].
	ExtraDims int
	Throws    []*TypeRef
	Default   Expr
	Body      *Block
	// Compact marks a record's compact canonical constructor, written
	// without a parameter list.
	Compact bool
}

func (m *MethodSignature) Annotations() []*Annotation {
	return m.Modifiers.Annotations()
}

func (m *MethodSignature) Keywords() []string {
	return m.Modifiers.Keywords()
}

func (m *MethodSignature) IsConstructor() bool {
	return m.ReturnType == nil
}

type ClassKind int

const (
	ClassKindClass ClassKind = iota
	ClassKindInterface
	ClassKindEnum
	ClassKindRecord
	ClassKindAnnotation
)

var classKindKeywords = map[ClassKind]string{
	ClassKindClass:      "class",
	ClassKindInterface:  "interface",
	ClassKindEnum:       "enum",
	ClassKindRecord:     "record",
	ClassKindAnnotation: "@interface",
}

func (k ClassKind) String() string {
	return classKindKeywords[k]
}

type EnumConstant struct {
	Span        Span
	Annotations []*Annotation
	Name        string
	Args        []Expr
	HasArgs     bool
	Body        []Decl
	HasBody     bool
}

type ClassDecl struct {
	Span       Span
	Kind       ClassKind
	Modifiers  ModifierList
	Name       string
	TypeParams []*TypeParameter
	Components []*Parameter
	Extends    []*TypeRef
	Implements []*TypeRef
	Permits    []*TypeRef
	Constants  []*EnumConstant
	Members    []Decl
}

type VarDeclarator struct {
	Span Span
	Name string
	Dims int
	Init Expr
}

type FieldDecl struct {
	Span      Span
	Modifiers ModifierList
	Type      *TypeRef
	Vars      []*VarDeclarator
}

type Initializer struct {
	Span   Span
	Static bool
	Body   *Block
}

// BadDecl stands in for a declaration that failed to parse.
type BadDecl struct {
	Span Span
}

// Statements

type Block struct {
	Span  Span
	Stmts []Stmt
}

type LocalVarDecl struct {
	Span      Span
	Modifiers ModifierList
	Type      *TypeRef
	Vars      []*VarDeclarator
}

type LocalClassDecl struct {
	Span Span
	Decl *ClassDecl
}

type ExprStmt struct {
	Span Span
	X    Expr
}

type IfStmt struct {
	Span Span
	Cond Expr
	Then Stmt
	Else Stmt
}

type WhileStmt struct {
	Span Span
	Cond Expr
	Body Stmt
}

type DoStmt struct {
	Span Span
	Body Stmt
	Cond Expr
}

type ForStmt struct {
	Span   Span
	Init   []Stmt
	Cond   Expr
	Update []Expr
	Body   Stmt
}

type ForEachStmt struct {
	Span      Span
	Modifiers ModifierList
	Type      *TypeRef
	Name      string
	Iterable  Expr
	Body      Stmt
}

type ReturnStmt struct {
	Span   Span
	Result Expr
}

type ThrowStmt struct {
	Span Span
	X    Expr
}

type BreakStmt struct {
	Span  Span
	Label string
}

type ContinueStmt struct {
	Span  Span
	Label string
}

type YieldStmt struct {
	Span  Span
	Value Expr
}

type LabeledStmt struct {
	Span  Span
	Label string
	Body  Stmt
}

type AssertStmt struct {
	Span    Span
	Cond    Expr
	Message Expr
}

type SynchronizedStmt struct {
	Span Span
	Lock Expr
	Body *Block
}

type SwitchStmt struct {
	Span   Span
	Switch *SwitchExpr
}

// ResourceDecl is one entry of a try-with-resources header. A resource that
// refers to an existing variable has a nil Type and an empty Name; its
// reference is held in Init.
type ResourceDecl struct {
	Span      Span
	Modifiers ModifierList
	Type      *TypeRef
	Name      string
	Init      Expr
}

type CatchClause struct {
	Span      Span
	Modifiers ModifierList
	Types     []*TypeRef
	Name      string
	Body      *Block
}

type TryStmt struct {
	Span      Span
	Resources []*ResourceDecl
	Body      *Block
	Catches   []*CatchClause
	Finally   *Block
}

type EmptyStmt struct {
	Span Span
}

type BadStmt struct {
	Span Span
}

// Expressions

type Ident struct {
	Span Span
	Name string
}

type Literal struct {
	Span  Span
	Kind  TokenKind
	Value string
}

type BinaryExpr struct {
	Span Span
	Op   TokenKind
	X    Expr
	Y    Expr
}

type UnaryExpr struct {
	Span    Span
	Op      TokenKind
	X       Expr
	Postfix bool
}

type AssignExpr struct {
	Span   Span
	Op     TokenKind
	Target Expr
	Value  Expr
}

type CondExpr struct {
	Span Span
	Cond Expr
	Then Expr
	Else Expr
}

type ParenExpr struct {
	Span Span
	X    Expr
}

type FieldAccess struct {
	Span Span
	X    Expr
	Name string
}

// CallExpr is a method invocation; Target is nil for unqualified calls.
type CallExpr struct {
	Span     Span
	Target   Expr
	TypeArgs []*TypeRef
	Name     string
	Args     []Expr
}

type IndexExpr struct {
	Span  Span
	X     Expr
	Index Expr
}

// NewExpr is a class instance creation. Body is non-nil for anonymous
// classes; Outer is set for qualified creation (outer.new Inner()).
type NewExpr struct {
	Span    Span
	Outer   Expr
	Type    *TypeRef
	Args    []Expr
	Body    []Decl
	HasBody bool
}

type NewArrayExpr struct {
	Span      Span
	Type      *TypeRef
	Dims      []Expr
	ExtraDims int
	Init      *ArrayInit
}

type ArrayInit struct {
	Span  Span
	Elems []Expr
}

type CastExpr struct {
	Span Span
	Type *TypeRef
	// Bounds holds the additional types of an intersection cast (A & B).
	Bounds []*TypeRef
	X      Expr
}

// InstanceOfExpr tests X against either a plain Type or a Pattern.
type InstanceOfExpr struct {
	Span    Span
	X       Expr
	Type    *TypeRef
	Pattern Pattern
}

type LambdaParam struct {
	Span      Span
	Modifiers ModifierList
	Type      *TypeRef
	Name      string
}

// LambdaExpr has either an expression body or a block body.
type LambdaExpr struct {
	Span   Span
	Params []*LambdaParam
	// Parens is false only for the single bare parameter form x -> ...
	Parens bool
	Body   Node
}

func (l *LambdaExpr) BlockBody() (*Block, bool) {
	b, ok := l.Body.(*Block)
	return b, ok
}

type MethodRef struct {
	Span     Span
	X        Expr
	TypeArgs []*TypeRef
	Name     string
}

// TypeExpr is a type in expression position, as in int[]::new.
type TypeExpr struct {
	Span Span
	Type *TypeRef
}

type ClassLit struct {
	Span Span
	Type *TypeRef
}

type SwitchCase struct {
	Span    Span
	Labels  []Pattern
	Default bool
	Guard   Expr
	Arrow   bool
	// Body holds the arrow form's expression, *Block or *ThrowStmt.
	Body Node
	// Stmts holds the colon form's statement group.
	Stmts []Stmt
}

type SwitchExpr struct {
	Span     Span
	Selector Expr
	Cases    []*SwitchCase
}

type BadExpr struct {
	Span Span
}

// Patterns

type RecordPattern struct {
	Span       Span
	Type       *TypeRef
	Components []Pattern
}

// BindingPattern is a component of a record pattern. The unnamed pattern _
// is a BindingPattern with Wildcard set, no Type and no Name.
type BindingPattern struct {
	Span      Span
	Modifiers ModifierList
	Type      *TypeRef
	Name      string
	Wildcard  bool
}

type TypePattern struct {
	Span      Span
	Modifiers ModifierList
	Type      *TypeRef
	Name      string
}

type LiteralPattern struct {
	Span  Span
	Value Expr
}

func (n *CompilationUnit) NodeSpan() Span  { return n.Span }
func (n *PackageDecl) NodeSpan() Span      { return n.Span }
func (n *ImportDecl) NodeSpan() Span       { return n.Span }
func (n *Annotation) NodeSpan() Span       { return n.Span }
func (n *TypeRef) NodeSpan() Span          { return n.Span }
func (n *TypeParameter) NodeSpan() Span    { return n.Span }
func (n *Parameter) NodeSpan() Span        { return n.Span }
func (n *MethodSignature) NodeSpan() Span  { return n.Span }
func (n *EnumConstant) NodeSpan() Span     { return n.Span }
func (n *ClassDecl) NodeSpan() Span        { return n.Span }
func (n *VarDeclarator) NodeSpan() Span    { return n.Span }
func (n *FieldDecl) NodeSpan() Span        { return n.Span }
func (n *Initializer) NodeSpan() Span      { return n.Span }
func (n *BadDecl) NodeSpan() Span          { return n.Span }
func (n *Block) NodeSpan() Span            { return n.Span }
func (n *LocalVarDecl) NodeSpan() Span     { return n.Span }
func (n *LocalClassDecl) NodeSpan() Span   { return n.Span }
func (n *ExprStmt) NodeSpan() Span         { return n.Span }
func (n *IfStmt) NodeSpan() Span           { return n.Span }
func (n *WhileStmt) NodeSpan() Span        { return n.Span }
func (n *DoStmt) NodeSpan() Span           { return n.Span }
func (n *ForStmt) NodeSpan() Span          { return n.Span }
func (n *ForEachStmt) NodeSpan() Span      { return n.Span }
func (n *ReturnStmt) NodeSpan() Span       { return n.Span }
func (n *ThrowStmt) NodeSpan() Span        { return n.Span }
func (n *BreakStmt) NodeSpan() Span        { return n.Span }
func (n *ContinueStmt) NodeSpan() Span     { return n.Span }
func (n *YieldStmt) NodeSpan() Span        { return n.Span }
func (n *SwitchStmt) NodeSpan() Span       { return n.Span }
func (n *LabeledStmt) NodeSpan() Span      { return n.Span }
func (n *AssertStmt) NodeSpan() Span       { return n.Span }
func (n *SynchronizedStmt) NodeSpan() Span { return n.Span }
func (n *TypeExpr) NodeSpan() Span         { return n.Span }
func (n *ResourceDecl) NodeSpan() Span     { return n.Span }
func (n *CatchClause) NodeSpan() Span      { return n.Span }
func (n *TryStmt) NodeSpan() Span          { return n.Span }
func (n *EmptyStmt) NodeSpan() Span        { return n.Span }
func (n *BadStmt) NodeSpan() Span          { return n.Span }
func (n *Ident) NodeSpan() Span            { return n.Span }
func (n *Literal) NodeSpan() Span          { return n.Span }
func (n *BinaryExpr) NodeSpan() Span       { return n.Span }
func (n *UnaryExpr) NodeSpan() Span        { return n.Span }
func (n *AssignExpr) NodeSpan() Span       { return n.Span }
func (n *CondExpr) NodeSpan() Span         { return n.Span }
func (n *ParenExpr) NodeSpan() Span        { return n.Span }
func (n *FieldAccess) NodeSpan() Span      { return n.Span }
func (n *CallExpr) NodeSpan() Span         { return n.Span }
func (n *IndexExpr) NodeSpan() Span        { return n.Span }
func (n *NewExpr) NodeSpan() Span          { return n.Span }
func (n *NewArrayExpr) NodeSpan() Span     { return n.Span }
func (n *ArrayInit) NodeSpan() Span        { return n.Span }
func (n *CastExpr) NodeSpan() Span         { return n.Span }
func (n *InstanceOfExpr) NodeSpan() Span   { return n.Span }
func (n *LambdaParam) NodeSpan() Span      { return n.Span }
func (n *LambdaExpr) NodeSpan() Span       { return n.Span }
func (n *MethodRef) NodeSpan() Span        { return n.Span }
func (n *ClassLit) NodeSpan() Span         { return n.Span }
func (n *SwitchCase) NodeSpan() Span       { return n.Span }
func (n *SwitchExpr) NodeSpan() Span       { return n.Span }
func (n *BadExpr) NodeSpan() Span          { return n.Span }
func (n *RecordPattern) NodeSpan() Span    { return n.Span }
func (n *BindingPattern) NodeSpan() Span   { return n.Span }
func (n *TypePattern) NodeSpan() Span      { return n.Span }
func (n *LiteralPattern) NodeSpan() Span   { return n.Span }

func (*MethodSignature) declNode() {}
func (*ClassDecl) declNode()       {}
func (*FieldDecl) declNode()       {}
func (*Initializer) declNode()     {}
func (*BadDecl) declNode()         {}

func (*Block) stmtNode()            {}
func (*LocalVarDecl) stmtNode()     {}
func (*LocalClassDecl) stmtNode()   {}
func (*ExprStmt) stmtNode()         {}
func (*IfStmt) stmtNode()           {}
func (*WhileStmt) stmtNode()        {}
func (*DoStmt) stmtNode()           {}
func (*ForStmt) stmtNode()          {}
func (*ForEachStmt) stmtNode()      {}
func (*ReturnStmt) stmtNode()       {}
func (*ThrowStmt) stmtNode()        {}
func (*BreakStmt) stmtNode()        {}
func (*ContinueStmt) stmtNode()     {}
func (*YieldStmt) stmtNode()        {}
func (*SwitchStmt) stmtNode()       {}
func (*LabeledStmt) stmtNode()      {}
func (*AssertStmt) stmtNode()       {}
func (*SynchronizedStmt) stmtNode() {}
func (*TryStmt) stmtNode()          {}
func (*EmptyStmt) stmtNode()        {}
func (*BadStmt) stmtNode()          {}

func (*Ident) exprNode()          {}
func (*Literal) exprNode()        {}
func (*BinaryExpr) exprNode()     {}
func (*UnaryExpr) exprNode()      {}
func (*AssignExpr) exprNode()     {}
func (*CondExpr) exprNode()       {}
func (*ParenExpr) exprNode()      {}
func (*FieldAccess) exprNode()    {}
func (*CallExpr) exprNode()       {}
func (*IndexExpr) exprNode()      {}
func (*NewExpr) exprNode()        {}
func (*NewArrayExpr) exprNode()   {}
func (*ArrayInit) exprNode()      {}
func (*CastExpr) exprNode()       {}
func (*InstanceOfExpr) exprNode() {}
func (*LambdaExpr) exprNode()     {}
func (*MethodRef) exprNode()      {}
func (*ClassLit) exprNode()       {}
func (*TypeExpr) exprNode()       {}
func (*SwitchExpr) exprNode()     {}
func (*BadExpr) exprNode()        {}

// Annotations appear as values of annotation elements.
func (*Annotation) exprNode() {}

func (*RecordPattern) patternNode()  {}
func (*BindingPattern) patternNode() {}
func (*TypePattern) patternNode()    {}
func (*LiteralPattern) patternNode() {}
