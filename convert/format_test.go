package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"object", `{"a":1}`, FormatJSON},
		{"array with leading space", "\n  [1]", FormatJSON},
		{"bom then object", "\xef\xbb\xbf{}", FormatJSON},
		{"mapping", "a: 1\n", FormatYAML},
		{"document marker", "---\na: 1\n", FormatYAML},
		{"scalar", "42", FormatYAML},
		{"empty", "", FormatUnknown},
		{"blank", " \n\t", FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat([]byte(tt.data)))
		})
	}
}

func TestDetectFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormatFromPath("a/b.JSON"))
	assert.Equal(t, FormatYAML, DetectFormatFromPath("c.yml"))
	assert.Equal(t, FormatYAML, DetectFormatFromPath("c.yaml"))
	assert.Equal(t, FormatUnknown, DetectFormatFromPath("notes.txt"))
	assert.Equal(t, FormatUnknown, DetectFormatFromPath("-"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatYAML, ParseFormat(" yml "))
	assert.Equal(t, FormatYAML, ParseFormat("yaml"))
	assert.Equal(t, FormatUnknown, ParseFormat("toml"))
}
