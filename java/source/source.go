// Package source loads Java source text and normalizes its encoding.
//
// Files may be UTF-8, UTF-8 with a byte order mark, or UTF-16 (either byte
// order) with a byte order mark. Everything is handed to the lexer as UTF-8
// without a BOM, so that offsets and columns count from the first
// character of the file.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts src to UTF-8, honoring and removing a leading byte order
// mark.
func Decode(src []byte) ([]byte, error) {
	if !hasBOM(src) {
		return src, nil
	}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, src)
	if err != nil {
		return nil, fmt.Errorf("decode source: %w", err)
	}
	return out, nil
}

func Read(r io.Reader) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(src)
}

// ReadFile reads path and decodes it. The path "-" reads standard input.
func ReadFile(path string) ([]byte, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src, err = Decode(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

func hasBOM(src []byte) bool {
	return bytes.HasPrefix(src, bomUTF8) ||
		bytes.HasPrefix(src, bomUTF16BE) ||
		bytes.HasPrefix(src, bomUTF16LE)
}
