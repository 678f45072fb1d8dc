package parser

import (
	"fmt"
	"reflect"
	"strings"
)

var spanType = reflect.TypeOf(Span{})

// Dump renders n as an indented tree, one node per line followed by its
// non-zero fields. Positions and comments are left out, so two trees dump
// the same exactly when they are structurally equal.
func Dump(n Node) string {
	var b strings.Builder
	d := dumper{w: &b}
	d.node(reflect.ValueOf(n), 0)
	return b.String()
}

// DumpWithPositions is Dump with each node's span appended to its line.
func DumpWithPositions(n Node) string {
	var b strings.Builder
	d := dumper{w: &b, positions: true}
	d.node(reflect.ValueOf(n), 0)
	return b.String()
}

// Equal reports whether a and b are structurally equal, ignoring source
// positions and comments.
func Equal(a, b Node) bool {
	return Dump(a) == Dump(b)
}

type dumper struct {
	w         *strings.Builder
	positions bool
}

func (d *dumper) line(indent int, format string, args ...any) {
	d.w.WriteString(strings.Repeat("  ", indent))
	fmt.Fprintf(d.w, format, args...)
	d.w.WriteByte('\n')
}

func (d *dumper) node(v reflect.Value, indent int) {
	if !v.IsValid() {
		d.line(indent, "nil")
		return
	}
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			d.line(indent, "nil")
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		d.line(indent, "%v", v.Interface())
		return
	}

	t := v.Type()
	header := t.Name()
	if d.positions {
		if f := v.FieldByName("Span"); f.IsValid() {
			span := f.Interface().(Span)
			header += fmt.Sprintf(" [%s-%s]", span.Start, span.End)
		}
	}
	var children []int
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if !f.IsExported() || f.Type == spanType || f.Name == "Comments" || fv.IsZero() {
			continue
		}
		if scalar, ok := scalarString(fv); ok {
			header += fmt.Sprintf(" %s=%s", f.Name, scalar)
			continue
		}
		if fv.Kind() == reflect.Slice && fv.Len() == 0 {
			continue
		}
		children = append(children, i)
	}
	d.line(indent, "%s", header)

	for _, i := range children {
		fv := v.Field(i)
		d.line(indent+1, "%s:", t.Field(i).Name)
		if fv.Kind() == reflect.Slice {
			for j := 0; j < fv.Len(); j++ {
				d.node(fv.Index(j), indent+2)
			}
			continue
		}
		d.node(fv, indent+2)
	}
}

func scalarString(v reflect.Value) (string, bool) {
	switch v.Kind() {
	case reflect.String:
		return fmt.Sprintf("%q", v.String()), true
	case reflect.Bool:
		return fmt.Sprint(v.Bool()), true
	case reflect.Int:
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String(), true
		}
		return fmt.Sprint(v.Int()), true
	}
	return "", false
}
