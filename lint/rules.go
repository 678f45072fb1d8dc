package lint

import (
	"fmt"

	"github.com/dhamidi/jlint/java/parser"
)

// A Rule adds problems the parser does not report on its own.
type Rule interface {
	Name() string
	Check(cu *parser.CompilationUnit, report func(pos parser.Position, message string))
}

const (
	RuleKeywordIdentifier = "keyword-identifier"
	RuleConstructorName   = "constructor-name"
)

var allRules = []Rule{keywordIdentifierRule{}, constructorNameRule{}}

// RuleNames lists every rule, all of which are enabled by default.
func RuleNames() []string {
	names := make([]string, len(allRules))
	for i, r := range allRules {
		names[i] = r.Name()
	}
	return names
}

func ruleByName(name string) (Rule, bool) {
	for _, r := range allRules {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// diagnosticOwner names the rule a parser diagnostic belongs to, or ""
// when it is a plain syntax problem.
func diagnosticOwner(d parser.Diagnostic) string {
	if d.Expected == "identifier" && d.Got.Kind.IsKeyword() {
		return RuleKeywordIdentifier
	}
	return ""
}

// keywordIdentifierRule owns the parser's diagnostics for reserved words
// written where a name belongs. The parser already reports them, so Check
// adds nothing.
type keywordIdentifierRule struct{}

func (keywordIdentifierRule) Name() string { return RuleKeywordIdentifier }

func (keywordIdentifierRule) Check(*parser.CompilationUnit, func(parser.Position, string)) {}

// constructorNameRule reports constructors whose name differs from their
// class. Enum bodies are not checked.
type constructorNameRule struct{}

func (constructorNameRule) Name() string { return RuleConstructorName }

func (constructorNameRule) Check(cu *parser.CompilationUnit, report func(parser.Position, string)) {
	parser.Inspect(cu, func(n parser.Node) bool {
		cd, ok := n.(*parser.ClassDecl)
		if !ok || (cd.Kind != parser.ClassKindClass && cd.Kind != parser.ClassKindRecord) {
			return true
		}
		for _, member := range cd.Members {
			m, ok := member.(*parser.MethodSignature)
			if !ok || !m.IsConstructor() || m.Name == "" || m.Name == cd.Name {
				continue
			}
			report(m.Span.Start, fmt.Sprintf(
				"Invalid constructor name '%s'. Constructor name must match the class name '%s'",
				m.Name, cd.Name))
		}
		return true
	})
}
