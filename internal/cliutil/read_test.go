package cliutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/yamlbridge/bridgeerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain utf-8", []byte("a: café\n"), "a: café\n"},
		{"utf-8 bom stripped", []byte("\xef\xbb\xbfa: 1\n"), "a: 1\n"},
		{"utf-16le bom", []byte{0xff, 0xfe, 'a', 0, ':', 0, ' ', 0, '1', 0}, "a: 1"},
		{"utf-16be bom", []byte{0xfe, 0xff, 0, '{', 0, '}'}, "{}"},
		{"empty", nil, ""},
		{"replacement char is valid", []byte("x: \xef\xbf\xbd"), "x: �"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeText_InvalidUTF8(t *testing.T) {
	_, err := DecodeText([]byte("ab\xffcd"))
	require.Error(t, err)
	assert.ErrorIs(t, err, bridgeerrors.ErrInvalidEncoding)

	var encErr *bridgeerrors.EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, 2, encErr.Offset)
}

func TestReadInput(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.yaml")
		require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbfkey: value\n"), 0o600))

		got, err := ReadInput(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "key: value\n", got)
	})

	t.Run("stdin", func(t *testing.T) {
		got, err := ReadInput(StdinPath, strings.NewReader(`{"a":1}`))
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadInput(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading ")
	})
}

func TestDisplayPath(t *testing.T) {
	assert.Equal(t, "<stdin>", DisplayPath(StdinPath))
	assert.Equal(t, "a.yaml", DisplayPath("a.yaml"))
}
