package parser

import "reflect"

// Inspect traverses the tree rooted at n depth first, calling f for every
// node in source order. When f returns false the children of that node are
// skipped.
func Inspect(n Node, f func(Node) bool) {
	inspect(reflect.ValueOf(n), f)
}

func inspect(v reflect.Value, f func(Node) bool) {
	if !v.IsValid() {
		return
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		if n, ok := v.Interface().(Node); ok && !f(n) {
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if v.Type() == spanType {
			return
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if field := t.Field(i); !field.IsExported() || field.Name == "Comments" {
				continue
			}
			inspect(v.Field(i), f)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			inspect(v.Index(i), f)
		}
	}
}
