package config

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindAndLoadDefaults(t *testing.T) {
	cfg, path, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		// a jlint.toml above the temp dir would be picked up
		t.Skipf("found unrelated config at %s", path)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestFindAndLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, `
[service]
addr = "127.0.0.1:9000"

[log]
verbosity = 4

[lint]
rules = ["constructor-name"]
suppress = ["^Invalid constructor"]
`)
	nested := filepath.Join(root, "src", "main", "java")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := FindAndLoad(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if cfg.Service.Addr != "127.0.0.1:9000" {
		t.Errorf("Service.Addr = %q", cfg.Service.Addr)
	}
	if cfg.Log.Verbosity != 4 {
		t.Errorf("Log.Verbosity = %d", cfg.Log.Verbosity)
	}
	if !slices.Equal(cfg.Lint.Rules, []string{"constructor-name"}) {
		t.Errorf("Lint.Rules = %v", cfg.Lint.Rules)
	}
	if !slices.Equal(cfg.Lint.Suppress, []string{"^Invalid constructor"}) {
		t.Errorf("Lint.Suppress = %v", cfg.Lint.Suppress)
	}
	if cfg.Format.MaxColumn != 100 || cfg.Format.Indent != "    " {
		t.Errorf("format defaults lost: %+v", cfg.Format)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[service\naddr = 1", "load"},
		{"unknown key", "[service]\nport = 80", "unknown key service.port"},
		{"bad max column", "[format]\nmax_column = 0", "max_column"},
		{"wrong type", "[log]\nverbosity = \"loud\"", "load"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
