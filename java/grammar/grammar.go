// Package grammar holds the EBNF description of the Java subset that the
// parser accepts, in the notation of golang.org/x/exp/ebnf.
package grammar

import (
	"bytes"
	_ "embed"
	"io"
	"reflect"
	"sort"

	"golang.org/x/exp/ebnf"
)

// Start is the production every other production is reachable from.
const Start = "CompilationUnit"

//go:embed grammar.ebnf
var source []byte

// Source returns the embedded grammar text.
func Source() []byte {
	return bytes.Clone(source)
}

func Parse() (ebnf.Grammar, error) {
	return ebnf.Parse("grammar.ebnf", bytes.NewReader(source))
}

// Verify parses the embedded grammar and checks it from Start.
func Verify() error {
	return VerifyReader("grammar.ebnf", bytes.NewReader(source), Start)
}

// VerifyReader parses a grammar read from r. With an empty start only the
// syntax is checked.
func VerifyReader(filename string, r io.Reader, start string) error {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return err
	}
	if start == "" {
		return nil
	}
	return ebnf.Verify(g, start)
}

// Productions lists the production names of the embedded grammar in
// sorted order.
func Productions() ([]string, error) {
	g, err := Parse()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Errors splits the error list returned by ebnf.Parse and ebnf.Verify into
// its elements.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Slice {
		return []error{err}
	}
	errs := make([]error, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if e, ok := v.Index(i).Interface().(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}
