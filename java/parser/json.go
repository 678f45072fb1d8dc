package parser

import (
	"encoding/json"
	"reflect"
)

type jsonNode struct {
	Kind     string                 `json:"kind"`
	Span     *jsonSpan              `json:"span,omitempty"`
	Attrs    map[string]any         `json:"attrs,omitempty"`
	Children map[string][]*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonDiagnostic struct {
	Kind     string    `json:"kind"`
	Severity string    `json:"severity"`
	Message  string    `json:"message"`
	Expected string    `json:"expected,omitempty"`
	Got      string    `json:"got,omitempty"`
	Span     *jsonSpan `json:"span"`
}

func toJSONSpan(s Span) *jsonSpan {
	if s.Start.Line == 0 && s.End.Line == 0 {
		return nil
	}
	return &jsonSpan{
		Start: jsonPosition{Line: s.Start.Line, Column: s.Start.Column},
		End:   jsonPosition{Line: s.End.Line, Column: s.End.Column},
	}
}

// MarshalNode encodes an AST as nested objects of the form
// {kind, span, attrs, children}.
func MarshalNode(n Node) ([]byte, error) {
	return json.Marshal(toJSON(reflect.ValueOf(n)))
}

func (d Diagnostic) MarshalJSON() ([]byte, error) {
	jd := jsonDiagnostic{
		Kind:     d.Kind.String(),
		Severity: d.Severity.String(),
		Message:  d.Message,
		Expected: d.Expected,
		Span:     toJSONSpan(d.Span),
	}
	if d.Got.Kind != TokenEOF {
		jd.Got = d.Got.Literal
	}
	return json.Marshal(jd)
}

func toJSON(v reflect.Value) *jsonNode {
	if !v.IsValid() {
		return nil
	}
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	jn := &jsonNode{Kind: t.Name()}
	if f := v.FieldByName("Span"); f.IsValid() && f.Type() == spanType {
		jn.Span = toJSONSpan(f.Interface().(Span))
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if !f.IsExported() || f.Type == spanType || f.Name == "Comments" || fv.IsZero() {
			continue
		}
		if scalar, ok := scalarString(fv); ok {
			if jn.Attrs == nil {
				jn.Attrs = make(map[string]any)
			}
			if fv.Kind() == reflect.String {
				jn.Attrs[f.Name] = fv.String()
			} else {
				jn.Attrs[f.Name] = scalar
			}
			continue
		}
		var kids []*jsonNode
		if fv.Kind() == reflect.Slice {
			for j := 0; j < fv.Len(); j++ {
				if kid := toJSON(fv.Index(j)); kid != nil {
					kids = append(kids, kid)
				}
			}
		} else if kid := toJSON(fv); kid != nil {
			kids = append(kids, kid)
		}
		if len(kids) == 0 {
			continue
		}
		if jn.Children == nil {
			jn.Children = make(map[string][]*jsonNode)
		}
		jn.Children[f.Name] = kids
	}
	return jn
}
