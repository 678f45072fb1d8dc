// Package lint checks source code and reports problems as line, column and
// message triples.
//
// Java is the only supported language. Every parser diagnostic becomes a
// problem; rules then add checks the grammar cannot express.
package lint

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dhamidi/jlint/java/parser"
	"github.com/dlclark/regexp2"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jlint.lint")

type Problem struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%d:%d: %s", p.Line, p.Column, p.Message)
}

// UnsupportedLanguageError is returned by Lint for a language it does not
// know.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return "Unsupported language: " + e.Language
}

// ErrorProblem reports err as a problem at line 0, column 0, the position
// used for failures that are not tied to a place in the source.
func ErrorProblem(err error) Problem {
	return Problem{Message: err.Error()}
}

// Languages lists the languages Lint accepts.
func Languages() []string {
	return []string{"java"}
}

type Linter struct {
	rules    []Rule
	suppress []*regexp2.Regexp
}

type Option func(*Linter) error

// WithRules enables only the named rules. Parser diagnostics other than
// those owned by a rule are always reported.
func WithRules(names ...string) Option {
	return func(l *Linter) error {
		rules := make([]Rule, 0, len(names))
		for _, name := range names {
			rule, ok := ruleByName(name)
			if !ok {
				return fmt.Errorf("unknown lint rule %q", name)
			}
			rules = append(rules, rule)
		}
		l.rules = rules
		return nil
	}
}

// WithSuppressions drops problems whose message matches any of the
// patterns. Patterns use .NET regular expression syntax.
func WithSuppressions(patterns ...string) Option {
	return func(l *Linter) error {
		for _, pattern := range patterns {
			re, err := regexp2.Compile(pattern, regexp2.None)
			if err != nil {
				return fmt.Errorf("suppression %q: %w", pattern, err)
			}
			re.MatchTimeout = time.Second
			l.suppress = append(l.suppress, re)
		}
		return nil
	}
}

func New(opts ...Option) (*Linter, error) {
	l := &Linter{rules: slices.Clone(allRules)}
	var errs []error
	for _, opt := range opts {
		if err := opt(l); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return l, nil
}

// Lint checks code written in language. The result is never nil, so that
// a clean file encodes as an empty JSON array.
func (l *Linter) Lint(language string, code []byte) ([]Problem, error) {
	switch strings.ToLower(language) {
	case "java":
		return l.LintJava(code, ""), nil
	}
	return nil, &UnsupportedLanguageError{Language: language}
}

// LintJava parses code as a Java compilation unit and reports problems in
// source order.
func (l *Linter) LintJava(code []byte, file string) []Problem {
	var opts []parser.Option
	if file != "" {
		opts = append(opts, parser.WithFile(file))
	}
	cu, diags := parser.ParseCompilationUnit(code, opts...)

	problems := []Problem{}
	for _, d := range diags {
		if owner := diagnosticOwner(d); owner != "" && !l.enabled(owner) {
			continue
		}
		problems = l.add(problems, d.Span.Start, d.Message)
	}
	for _, rule := range l.rules {
		rule.Check(cu, func(pos parser.Position, message string) {
			problems = l.add(problems, pos, message)
		})
	}

	slices.SortStableFunc(problems, func(a, b Problem) int {
		if a.Line != b.Line {
			return a.Line - b.Line
		}
		return a.Column - b.Column
	})
	log.Debugf("%s: %d diagnostics, %d problems", displayName(file), len(diags), len(problems))
	return problems
}

func (l *Linter) enabled(name string) bool {
	return slices.ContainsFunc(l.rules, func(r Rule) bool { return r.Name() == name })
}

func (l *Linter) add(problems []Problem, pos parser.Position, message string) []Problem {
	if l.suppressed(message) {
		return problems
	}
	return append(problems, Problem{Line: pos.Line, Column: pos.Column, Message: message})
}

func (l *Linter) suppressed(message string) bool {
	for _, re := range l.suppress {
		ok, err := re.MatchString(message)
		if err != nil {
			log.Warningf("suppression %s: %s", re.String(), err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

func displayName(file string) string {
	if file == "" {
		return "<input>"
	}
	return file
}
