package convert

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format identifies a textual data format.
type Format string

const (
	FormatUnknown Format = "unknown"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// ParseFormat maps a user supplied name to a Format. "yml" is accepted as YAML.
func ParseFormat(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// DetectFormatFromPath detects the format from a file extension
func DetectFormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// DetectFormat attempts to detect the format from the content bytes.
// JSON documents start with '{' or '['; anything else non-empty is treated as YAML.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	trimmed = bytes.TrimPrefix(trimmed, []byte("\xef\xbb\xbf"))
	trimmed = bytes.TrimLeft(trimmed, " \t\n\r")

	if len(trimmed) == 0 {
		return FormatUnknown
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}

	return FormatYAML
}
