package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "plain utf-8",
			input: []byte("class A {}"),
			want:  "class A {}",
		},
		{
			name:  "utf-8 with bom",
			input: append([]byte{0xEF, 0xBB, 0xBF}, "class Ä {}"...),
			want:  "class Ä {}",
		},
		{
			name:  "utf-16 big endian",
			input: []byte{0xFE, 0xFF, 0x00, 'i', 0x00, 'n', 0x00, 't'},
			want:  "int",
		},
		{
			name:  "utf-16 little endian",
			input: []byte{0xFF, 0xFE, 'i', 0x00, 'n', 0x00, 't', 0x00},
			want:  "int",
		},
		{
			name:  "empty",
			input: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "A.java")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFclass A {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "class A {}" {
		t.Errorf("ReadFile() = %q", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.java")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
