package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", writeConfig(t)}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jlint.toml")
	if err := os.WriteFile(path, []byte("[log]\nverbosity = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeJava(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Main.java")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLintCommand(t *testing.T) {
	file := writeJava(t, "class Foo {\n    Bar() {}\n}\n")

	stdout, _, err := execute(t, "lint", "-l", "java", "-f", file)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	want := `[
  {
    "line": 2,
    "column": 5,
    "message": "Invalid constructor name 'Bar'. Constructor name must match the class name 'Foo'"
  }
]
`
	if stdout != want {
		t.Errorf("stdout:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestLintCommandCleanFile(t *testing.T) {
	file := writeJava(t, "class Foo { Foo() {} }\n")

	stdout, _, err := execute(t, "lint", "-f", file)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if stdout != "[]\n" {
		t.Errorf("stdout = %q, want %q", stdout, "[]\n")
	}
}

func TestLintCommandFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unsupported language",
			args:    []string{"lint", "-l", "python", "-f", writeJava(t, "x = 1\n")},
			wantErr: "Unsupported language: python",
		},
		{
			name:    "missing file",
			args:    []string{"lint", "-f", filepath.Join(t.TempDir(), "Missing.java")},
			wantErr: "failed to read file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			if !errors.Is(err, errReported) {
				t.Fatalf("err = %v, want errReported", err)
			}
			if stdout != "" {
				t.Errorf("unexpected stdout %q", stdout)
			}
			if !strings.Contains(stderr, `"line": 0`) || !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("stderr = %s, want a problem mentioning %q", stderr, tt.wantErr)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	file := writeJava(t, "class A {\n    void f(String... args) {}\n}\n")

	stdout, _, err := execute(t, "parse", "--format", "outline", file)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.Contains(stdout, "class\tA") || !strings.Contains(stdout, "method\tf\tvoid\t(String...)") {
		t.Errorf("unexpected outline:\n%s", stdout)
	}
}

func TestParseCommandReportsDiagnostics(t *testing.T) {
	file := writeJava(t, "void f(int... a, int b)")

	_, stderr, err := execute(t, "parse", "-m", file)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if !strings.Contains(stderr, "StructuralError") {
		t.Errorf("stderr = %q, want a StructuralError", stderr)
	}
}

func TestFmtCommand(t *testing.T) {
	file := writeJava(t, "class A{void f(){return;}}")

	stdout, _, err := execute(t, "fmt", file)
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	want := "class A {\n    void f() {\n        return;\n    }\n}\n"
	if stdout != want {
		t.Errorf("stdout:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestGrammarCheckCommand(t *testing.T) {
	stdout, _, err := execute(t, "grammar", "check")
	if err != nil {
		t.Fatalf("grammar check: %v", err)
	}
	if !strings.HasPrefix(stdout, "grammar ok: ") {
		t.Errorf("stdout = %q", stdout)
	}

	bad := filepath.Join(t.TempDir(), "bad.ebnf")
	if err := os.WriteFile(bad, []byte("A = B .\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, stderr, err := execute(t, "grammar", "check", "--start", "A", bad)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if !strings.Contains(stderr, "B") {
		t.Errorf("stderr = %q, want the undefined production named", stderr)
	}
}

func TestReplEval(t *testing.T) {
	var out bytes.Buffer
	r := &repl{out: &out, mode: modeExpr, output: "tree"}

	for _, line := range []string{":stmt", ":java", "try (var in = open()) { use(in); }"} {
		if !r.eval(line) {
			t.Fatalf("eval(%q) stopped the loop", line)
		}
	}
	want := "try (var in = open()) {\n    use(in);\n}\n"
	if out.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", out.String(), want)
	}
	if r.eval(":quit") {
		t.Error(":quit did not stop the loop")
	}
}

func TestReplIncompleteInput(t *testing.T) {
	r := &repl{mode: modeStmt}
	tests := []struct {
		src  string
		want bool
	}{
		{"if (x) {", true},
		{"foo(a,", true},
		{"foo(a);", false},
		{"foo(a) }", false},
	}
	for _, tt := range tests {
		_, diags := r.parse([]byte(tt.src))
		if got := incomplete(diags); got != tt.want {
			t.Errorf("incomplete(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}
