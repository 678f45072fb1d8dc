// Package parser is an error-tolerant recursive-descent parser for the
// subset of Java used by modern application code: annotated declarations,
// generics, records, pattern-matching switch, lambdas and
// try-with-resources.
//
// # Overview
//
// Source bytes are turned into tokens by a Lexer and into a typed AST by a
// Parser. Every parse returns the tree it could build together with the
// problems it found; malformed input never panics.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (bytes)    │     │  (tokens)   │     │   (AST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │  Comments   │     │ Diagnostics │
//	                    │ (optional)  │     │             │
//	                    └─────────────┘     └─────────────┘
//
// # Entry Points
//
//	func ParseCompilationUnit(src []byte, opts ...Option) (*CompilationUnit, Diagnostics)
//	func ParseMethodSignature(src []byte, opts ...Option) (*MethodSignature, Diagnostics)
//	func ParseExpression(src []byte, opts ...Option) (Expr, Diagnostics)
//	func ParseStatement(src []byte, opts ...Option) (Stmt, Diagnostics)
//	func ParseParameters(src []byte, opts ...Option) ([]*Parameter, Diagnostics)
//
// Each call creates its own Parser, so parses may run concurrently.
//
// # Varargs Annotations
//
// In
//
//	@NotNull RouteRole @NotNull ... roles
//
// the first annotation applies to the element type and the second to the
// ellipsis. They are kept in TypeRef.Annotations and
// TypeRef.VarargsAnnotations respectively.
//
// # Patterns
//
// Case labels and instanceof operands produce Pattern values. Inside a
// record pattern the unnamed pattern _ is a BindingPattern with Wildcard
// set; it is never read as a type named _.
//
// # Diagnostics
//
// A Diagnostic is one of three kinds:
//
//   - LexError: an Error token from the lexer
//   - SyntaxError: a token the grammar does not accept here
//   - StructuralError: well-formed input that Java still rejects, such as
//     a varargs parameter that is not last
//
// At most one diagnostic is recorded per source position. After a syntax
// error the parser skips to the next statement or member boundary and
// carries on, so one pass reports every independent problem.
//
// # Example Usage
//
//	sig, diags := parser.ParseMethodSignature([]byte("void run(String... args)"))
//	if err := diags.Err(); err != nil {
//	    return err
//	}
//	fmt.Println(sig.Params[0].Type.Varargs) // true
package parser
