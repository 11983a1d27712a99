package cliutil

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/erraggy/yamlbridge/bridgeerrors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StdinPath is the special file path used to indicate reading from stdin.
const StdinPath = "-"

// DisplayPath returns "<stdin>" for StdinPath, otherwise path as-is.
func DisplayPath(path string) string {
	if path == StdinPath {
		return "<stdin>"
	}
	return path
}

// ReadInput reads path (or stdin for "-") and returns its text as UTF-8.
//
// A UTF-8 byte order mark is stripped and UTF-16 input with a byte order mark
// is transcoded. Input without a BOM is passed through unchanged and must
// already be valid UTF-8.
func ReadInput(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == StdinPath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // G304: reading user-specified files is the purpose of this command
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", DisplayPath(path), err)
	}
	return DecodeText(data)
}

// DecodeText applies BOM detection to data and checks the result is UTF-8.
func DecodeText(data []byte) (string, error) {
	dec := unicode.BOMOverride(encoding.Nop.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("decoding input: %w", err)
	}
	if off := invalidUTF8Offset(out); off >= 0 {
		return "", &bridgeerrors.EncodingError{Offset: off}
	}
	return string(out), nil
}

// invalidUTF8Offset returns the byte offset of the first invalid sequence, or -1.
func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
