package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dhamidi/jlint/lint"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	l, err := lint.New()
	if err != nil {
		t.Fatal(err)
	}
	return New(l)
}

func postLint(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, []lint.Problem) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/lint", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		return rec, nil
	}
	var problems []lint.Problem
	if err := json.Unmarshal(rec.Body.Bytes(), &problems); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, problems
}

func TestLintEndpoint(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []lint.Problem
	}{
		{
			name: "clean java",
			body: `{"language": "java", "code": "class A { void f(String... xs) {} }"}`,
			want: []lint.Problem{},
		},
		{
			name: "keyword identifier",
			body: `{"language": "java", "code": "class A { int new; }"}`,
			want: []lint.Problem{{Line: 1, Column: 15, Message: "'new' is a keyword and cannot be used as an identifier"}},
		},
		{
			name: "unsupported language",
			body: `{"language": "cobol", "code": "DISPLAY 'HI'."}`,
			want: []lint.Problem{{Line: 0, Column: 0, Message: "Unsupported language: cobol"}},
		},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, got := postLint(t, s, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("problem %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLintEndpointRejectsBadRequests(t *testing.T) {
	s := newTestServer(t)

	rec, _ := postLint(t, s, `{"language": `)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid JSON: status %d, want 400", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/lint", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /lint: status %d, want 405", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	postLint(t, s, `{"language": "java", "code": "class A { int new; }"}`)
	postLint(t, s, `{"language": "java", "code": "class A {}"}`)
	postLint(t, s, `{"language": "Java", "code": "class A {}"}`)
	postLint(t, s, `{"language": "python", "code": "x = 1"}`)
	postLint(t, s, `{"language": "no-such-language-1", "code": ""}`)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"lint_requests_total 5",
		`lint_requests_by_language{language="java"} 3`,
		`lint_requests_by_language{language="other"} 2`,
		"lint_errors_total 3",
		"# TYPE lint_duration_seconds gauge",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "no-such-language") {
		t.Errorf("client-supplied language became a label:\n%s", body)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Post("http://"+ln.Addr().String()+"/lint", "application/json",
		strings.NewReader(`{"language": "java", "code": "class A {}"}`))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("body = %q, want []", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
