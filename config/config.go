// Package config loads jlint.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up from the working directory
// towards the root.
const FileName = "jlint.toml"

type Config struct {
	Service ServiceConfig `toml:"service"`
	Log     LogConfig     `toml:"log"`
	Lint    LintConfig    `toml:"lint"`
	Format  FormatConfig  `toml:"format"`
}

type ServiceConfig struct {
	Addr string `toml:"addr"`
}

type LogConfig struct {
	// Verbosity follows commonlog: 0 is errors only, 2 adds info, 4 adds
	// debug output.
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

type LintConfig struct {
	// Rules lists the enabled rules; empty means all of them.
	Rules    []string `toml:"rules"`
	Suppress []string `toml:"suppress"`
}

type FormatConfig struct {
	Indent    string `toml:"indent"`
	MaxColumn int    `toml:"max_column"`
}

func Default() *Config {
	return &Config{
		Service: ServiceConfig{Addr: ":8080"},
		Log:     LogConfig{Verbosity: 1},
		Format:  FormatConfig{Indent: "    ", MaxColumn: 100},
	}
}

// FindAndLoad looks for jlint.toml in startDir and its parents. Without
// one it returns the defaults and an empty path.
func FindAndLoad(startDir string) (*Config, string, error) {
	path := FindConfigFile(startDir)
	if path == "" {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func FindConfigFile(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		dir = startDir
	}
	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load reads path on top of the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load %s: unknown key %s", path, undecoded[0])
	}
	if cfg.Format.MaxColumn <= 0 {
		return nil, fmt.Errorf("load %s: format.max_column must be positive", path)
	}
	return cfg, nil
}
