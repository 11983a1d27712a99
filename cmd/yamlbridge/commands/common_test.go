package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/erraggy/yamlbridge/convert"
	"github.com/stretchr/testify/assert"
)

// captureStreams swaps the package streams for the duration of the test.
func captureStreams(t *testing.T, stdin string) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	savedIn, savedOut, savedErr := Stdin, Stdout, Stderr
	Stdin, Stdout, Stderr = strings.NewReader(stdin), stdout, stderr
	t.Cleanup(func() { Stdin, Stdout, Stderr = savedIn, savedOut, savedErr })
	return stdout, stderr
}

func TestNewLogger(t *testing.T) {
	_, stderr := captureStreams(t, "")

	assert.IsType(t, convert.NopLogger{}, newLogger(false))

	logger := newLogger(true)
	logger.Debug("converted yaml to json", "in_bytes", 5)
	assert.Contains(t, stderr.String(), "converted yaml to json")
	assert.Contains(t, stderr.String(), "in_bytes")
}

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s=%d", "a", 1)
	assert.Equal(t, "a=1", buf.String())
	Writef(io.Discard, "ignored")
}
