package parser

import (
	"fmt"
	"strings"
)

type ErrorKind int

const (
	// LexError is an Error token produced by the lexer.
	LexError ErrorKind = iota
	// SyntaxError is a token sequence no production accepts.
	SyntaxError
	// StructuralError is grammatical input that breaks a rule of the
	// language, such as a varargs parameter that is not last.
	StructuralError
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case SyntaxError:
		return "SyntaxError"
	case StructuralError:
		return "StructuralError"
	}
	return "Unknown"
}

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

type Diagnostic struct {
	Severity Severity
	Kind     ErrorKind
	Message  string
	// Expected names the construct the parser wanted, if any.
	Expected string
	// Got is the token found at the failure point.
	Got  Token
	Span Span
}

func (d Diagnostic) Position() Position {
	return d.Span.Start
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Span.Start, d.Message)
}

// Diagnostics is ordered by the point at which the parser found each
// problem, which is also source order.
type Diagnostics []Diagnostic

func (ds Diagnostics) Error() string {
	msgs := make([]string, len(ds))
	for i, d := range ds {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns ds as an error, or nil when there are no diagnostics.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return ds
}

func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (ds Diagnostics) OfKind(kind ErrorKind) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
