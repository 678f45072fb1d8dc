package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dhamidi/jlint/java/parser"
)

// Helper function to parse Java expression and pretty print it
func formatExpr(t *testing.T, input string) string {
	t.Helper()
	x, diags := parser.ParseExpression([]byte(input))
	if len(diags) > 0 {
		t.Fatalf("parse error for input %q: %v", input, diags)
	}
	out, err := FormatNode(x)
	if err != nil {
		t.Fatalf("FormatNode: %v", err)
	}
	return out
}

func formatStmt(t *testing.T, input string) string {
	t.Helper()
	s, diags := parser.ParseStatement([]byte(input))
	if len(diags) > 0 {
		t.Fatalf("parse error for input %q: %v", input, diags)
	}
	out, err := FormatNode(s)
	if err != nil {
		t.Fatalf("FormatNode: %v", err)
	}
	return out
}

func TestPrintBinaryExpr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple addition", "a+b", "a + b"},
		{"precedence kept", "a+b*c", "a + b * c"},
		{"parentheses kept", "(a+b)*c", "(a + b) * c"},
		{"shift", "a>>>b", "a >>> b"},
		{"logical", "a&&b||c", "a && b || c"},
		{"comparison", "a<=b", "a <= b"},
		{"instanceof", "o instanceof String", "o instanceof String"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatExpr(t, tt.input); got != tt.expected {
				t.Errorf("formatExpr(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPrintUnaryExpr(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-x", "-x"},
		{"!done", "!done"},
		{"~mask", "~mask"},
		{"++i", "++i"},
		{"i--", "i--"},
		{"- -x", "- -x"},
		{"-(-x)", "-(-x)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := formatExpr(t, tt.input); got != tt.expected {
				t.Errorf("formatExpr(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPrintExpressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"assignment", "x=y", "x = y"},
		{"compound assignment", "x+=1", "x += 1"},
		{"ternary", "a?b:c", "a ? b : c"},
		{"cast", "(String)o", "(String) o"},
		{"intersection cast", "(Runnable&Serializable)r", "(Runnable & Serializable) r"},
		{"call chain", "list.stream().map(x->x*2)", "list.stream().map(x -> x * 2)"},
		{"generic call", "foo.<String>bar()", "foo.<String>bar()"},
		{"diamond", "new ArrayList<>()", "new ArrayList<>()"},
		{"anonymous class", "new Runnable(){}", "new Runnable() {}"},
		{"array with init", "new int[]{1,2}", "new int[] {1, 2}"},
		{"array with dims", "new int[n][]", "new int[n][]"},
		{"index", "a[i+1]", "a[i + 1]"},
		{"method ref", "String::valueOf", "String::valueOf"},
		{"class literal", "int[].class", "int[].class"},
		{"lambda with params", "(a,b)->a+b", "(a, b) -> a + b"},
		{"typed lambda", "(final String s)->s", "(final String s) -> s"},
		{"type pattern", "o instanceof String s", "o instanceof String s"},
		{"record pattern", "o instanceof Point(int x,var y)", "o instanceof Point(int x, var y)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatExpr(t, tt.input); got != tt.expected {
				t.Errorf("formatExpr(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPrintStatements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "if without braces",
			input:    "if (x) return;",
			expected: "if (x)\n    return;\n",
		},
		{
			name:     "if else without braces",
			input:    "if (x) a(); else b();",
			expected: "if (x)\n    a();\nelse\n    b();\n",
		},
		{
			name:     "else if chain",
			input:    "if (a) { x(); } else if (b) { y(); } else { z(); }",
			expected: "if (a) {\n    x();\n} else if (b) {\n    y();\n} else {\n    z();\n}\n",
		},
		{
			name:     "for loop",
			input:    "for (int i=0;i<n;i++) sum+=i;",
			expected: "for (int i = 0; i < n; i++)\n    sum += i;\n",
		},
		{
			name:     "enhanced for",
			input:    "for (final var e : list) { use(e); }",
			expected: "for (final var e : list) {\n    use(e);\n}\n",
		},
		{
			name:     "do while",
			input:    "do { i++; } while (i < 10);",
			expected: "do {\n    i++;\n} while (i < 10);\n",
		},
		{
			name:     "lambda block body",
			input:    "run(() -> { a(); });",
			expected: "run(() -> {\n    a();\n});\n",
		},
		{
			name:     "labeled loop",
			input:    "outer: while (true) { break outer; }",
			expected: "outer: while (true) {\n    break outer;\n}\n",
		},
		{
			name:     "empty block",
			input:    "synchronized (lock) {}",
			expected: "synchronized (lock) {}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatStmt(t, tt.input); got != tt.expected {
				t.Errorf("formatStmt(%q):\ngot:\n%s\nwant:\n%s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPrintTryWithResources(t *testing.T) {
	input := `try (var in = open(); BufferedReader r = wrap(in)) { use(r); } catch (IOException | RuntimeException e) { log(e); } finally { close(); }`
	expected := `try (var in = open(); BufferedReader r = wrap(in)) {
    use(r);
} catch (IOException | RuntimeException e) {
    log(e);
} finally {
    close();
}
`
	if got := formatStmt(t, input); got != expected {
		t.Errorf("try-with-resources:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}

func TestPrintSwitchWithPatternMatching(t *testing.T) {
	input := `class X {
    String f(Object o) {
        return switch (o) {
            case Point(int x, Point(var a, _)) -> "p";
            case String s when s.isEmpty() -> "e";
            case null, default -> "d";
        };
    }
}`
	output, err := PrettyPrintJava([]byte(input))
	if err != nil {
		t.Fatalf("PrettyPrintJava error: %v", err)
	}
	if string(output) != input+"\n" {
		t.Errorf("switch patterns not preserved:\ngot:\n%s\nwant:\n%s", output, input)
	}
}

func TestPrintTraditionalSwitch(t *testing.T) {
	input := "switch (k) { case 1: case 2: a(); break; default: b(); }"
	expected := `switch (k) {
    case 1:
    case 2:
        a();
        break;
    default:
        b();
}
`
	if got := formatStmt(t, input); got != expected {
		t.Errorf("traditional switch:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}

func TestPrintClassDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty record",
			input:    "record Point(int x,int y){}",
			expected: "record Point(int x, int y) {}\n",
		},
		{
			name:  "enum constants",
			input: "enum Color { RED, GREEN, BLUE }",
			expected: `enum Color {
    RED,
    GREEN,
    BLUE
}
`,
		},
		{
			name:  "enum with members",
			input: `enum Op { ADD("+"), SUB("-"); private final String sym; Op(String sym) { this.sym = sym; } }`,
			expected: `enum Op {
    ADD("+"),
    SUB("-");

    private final String sym;

    Op(String sym) {
        this.sym = sym;
    }
}
`,
		},
		{
			name:  "annotations on their own line",
			input: "class A { @Override public String toString() { return \"a\"; } }",
			expected: `class A {
    @Override
    public String toString() {
        return "a";
    }
}
`,
		},
		{
			name:  "sealed interface",
			input: "sealed interface Shape permits Circle, Square { double area(); }",
			expected: `sealed interface Shape permits Circle, Square {
    double area();
}
`,
		},
		{
			name:  "generic class",
			input: "public final class Box<T extends Comparable<T>> implements Supplier<T> { private T value; }",
			expected: `public final class Box<T extends Comparable<T>> implements Supplier<T> {
    private T value;
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := PrettyPrintJava([]byte(tt.input))
			if err != nil {
				t.Fatalf("PrettyPrintJava error: %v", err)
			}
			if string(output) != tt.expected {
				t.Errorf("got:\n%s\nwant:\n%s", output, tt.expected)
			}
		})
	}
}

func TestPrintMethodSignatureVarargsAnnotations(t *testing.T) {
	src := "public void addWsHandler(@NotNull String path, @NotNull Consumer<WsConfig> wsConfig, @NotNull RouteRole @NotNull ... roles)"
	sig, diags := parser.ParseMethodSignature([]byte(src))
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	t.Run("one line", func(t *testing.T) {
		got, err := FormatNode(sig, WithMaxColumn(200))
		if err != nil {
			t.Fatal(err)
		}
		if want := src + ";\n"; got != want {
			t.Errorf("got  %q\nwant %q", got, want)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		got, err := FormatNode(sig)
		if err != nil {
			t.Fatal(err)
		}
		want := `public void addWsHandler(
        @NotNull String path,
        @NotNull Consumer<WsConfig> wsConfig,
        @NotNull RouteRole @NotNull ... roles);
`
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})
}

func TestPrintCommentsAndHeader(t *testing.T) {
	input := `// header
package a;

import static java.util.Objects.requireNonNull;
import b.C;

/** Doc. */
public class X {
    int x; // trailing

    /*
     * Block.
     */
    int y;
}
`
	expected := `// header
package a;

import static java.util.Objects.requireNonNull;

import b.C;

/** Doc. */
public class X {
    int x; // trailing

    /*
     * Block.
     */
    int y;
}
`
	output, err := PrettyPrintJava([]byte(input))
	if err != nil {
		t.Fatalf("PrettyPrintJava error: %v", err)
	}
	if string(output) != expected {
		t.Errorf("got:\n%s\nwant:\n%s", output, expected)
	}
}

func TestPreserveIntentionalBlankLines(t *testing.T) {
	input := `class X {
    void setup() {
        // Initialize resources
        resource1 = createResource();
        resource2 = createResource();


        // Configure settings
        config.setOption("a", true);
    }
}`
	expected := `class X {
    void setup() {
        // Initialize resources
        resource1 = createResource();
        resource2 = createResource();

        // Configure settings
        config.setOption("a", true);
    }
}
`
	output, err := PrettyPrintJava([]byte(input))
	if err != nil {
		t.Fatalf("PrettyPrintJava error: %v", err)
	}
	if string(output) != expected {
		t.Errorf("Intentional blank lines not preserved:\ngot:\n%s\nwant:\n%s", output, expected)
	}
}

func TestLongArgumentListWrapping(t *testing.T) {
	input := `class X {
    void f() {
        configure(firstArgumentWithLongName, secondArgumentWithLongName, thirdArgumentWithLongName);
    }
}`
	expected := `class X {
    void f() {
        configure(
                firstArgumentWithLongName,
                secondArgumentWithLongName,
                thirdArgumentWithLongName);
    }
}
`
	output, err := PrettyPrintJava([]byte(input), WithMaxColumn(80))
	if err != nil {
		t.Fatalf("PrettyPrintJava error: %v", err)
	}
	if string(output) != expected {
		t.Errorf("got:\n%s\nwant:\n%s", output, expected)
	}
}

func TestWithIndent(t *testing.T) {
	output, err := PrettyPrintJava([]byte("class X { void f() { g(); } }"), WithIndent("\t"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "class X {\n\tvoid f() {\n\t\tg();\n\t}\n}\n"; string(output) != want {
		t.Errorf("got %q, want %q", output, want)
	}
}

func TestPrettyPrintRejectsBrokenInput(t *testing.T) {
	_, err := PrettyPrintJavaFile([]byte("class X { void f( { }"), "X.java")
	if err == nil {
		t.Fatal("expected an error for input that does not parse")
	}
	if !strings.Contains(err.Error(), "X.java") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestEncoders(t *testing.T) {
	cu, diags := parser.ParseCompilationUnit([]byte(`class A {
    private int n;
    A(int n) { this.n = n; }
    public static String name(String... parts) { return ""; }
    enum K { ONE }
}`))
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	t.Run("outline", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewLineEncoder(&buf).Encode(cu); err != nil {
			t.Fatal(err)
		}
		want := "class\tA\t-\n" +
			"field\tn\tint\tprivate\n" +
			"constructor\tA\t-\t(int)\t-\n" +
			"method\tname\tString\t(String...)\tpublic,static\n" +
			"enum\tA.K\t-\n" +
			"constant\tONE\n"
		if buf.String() != want {
			t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewASTJSONEncoder(&buf).Encode(cu); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(buf.String(), "{\n  \"kind\": \"CompilationUnit\"") {
			t.Errorf("unexpected json:\n%s", buf.String())
		}
	})

	t.Run("java", func(t *testing.T) {
		enc, ok := NewEncoder("java", new(bytes.Buffer))
		if !ok {
			t.Fatal("java encoder not registered")
		}
		if err := enc.Encode(cu.Types[0]); err != nil {
			t.Fatal(err)
		}
		text, _ := enc.MarshalText()
		if !strings.HasPrefix(string(text), "class A {\n    private int n;\n") {
			t.Errorf("unexpected source:\n%s", text)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, ok := NewEncoder("yaml", new(bytes.Buffer)); ok {
			t.Error("yaml encoder should not exist")
		}
	})
}

func TestDiagnosticsJSONEncoder(t *testing.T) {
	_, diags := parser.ParseMethodSignature([]byte("void f(int... a, int b)"))
	var buf bytes.Buffer
	if err := NewDiagnosticsJSONEncoder(&buf, "F.java").Encode(diags); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"file": "F.java"`, `"kind": "StructuralError"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := NewDiagnosticsJSONEncoder(&buf, "").Encode(nil); err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"diagnostics\": []\n}\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
