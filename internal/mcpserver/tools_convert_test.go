package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestYAMLToJSONTool_Content(t *testing.T) {
	resultCache.reset()
	input := yamlToJSONInput{
		Document: docInput{Content: "name: test\ntags: [a, b]\ncount: 3\n"},
	}
	result, output, err := handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, `{"name":"test","tags":["a","b"],"count":3}`, output.Document)
	assert.Equal(t, "json", output.Format)
	assert.Equal(t, len(output.Document), output.Bytes)
	assert.False(t, output.Cached)
}

func TestYAMLToJSONTool_Indent(t *testing.T) {
	resultCache.reset()
	input := yamlToJSONInput{
		Document: docInput{Content: "a: 1\n"},
		Indent:   intPtr(2),
	}
	_, output, err := handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", output.Document)
}

func TestYAMLToJSONTool_IndentFromConfig(t *testing.T) {
	resultCache.reset()
	withConfig(t, func(c *serverConfig) { c.JSONIndent = 4 })

	_, output, err := handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, yamlToJSONInput{
		Document: docInput{Content: "a: 1\n"},
	})
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": 1\n}", output.Document)

	// An explicit zero overrides the configured default.
	_, output, err = handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, yamlToJSONInput{
		Document: docInput{Content: "a: 1\n"},
		Indent:   intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, output.Document)
}

func TestYAMLToJSONTool_InvalidIndent(t *testing.T) {
	result, _, err := handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, yamlToJSONInput{
		Document: docInput{Content: "a: 1\n"},
		Indent:   intPtr(9),
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestYAMLToJSONTool_Malformed(t *testing.T) {
	resultCache.reset()
	result, output, err := handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, yamlToJSONInput{
		Document: docInput{Content: "key: [unclosed\n"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Document)
}

func TestYAMLToJSONTool_Cached(t *testing.T) {
	resultCache.reset()
	withConfig(t, func(c *serverConfig) { c.CacheEnabled = true })
	input := yamlToJSONInput{Document: docInput{Content: "a: 1\n"}}

	_, first, err := handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	_, second, err := handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Document, second.Document)
}

func TestYAMLToJSONTool_FileInputModified(t *testing.T) {
	resultCache.reset()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o600))
	input := yamlToJSONInput{Document: docInput{File: path}}

	_, output, err := handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, output.Document)

	// A new mtime yields a new cache key.
	require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0o600))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	_, output, err = handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, output.Document)
	assert.False(t, output.Cached)
}

func TestJSONToYAMLTool_Block(t *testing.T) {
	resultCache.reset()
	_, output, err := handleJSONToYAML(context.Background(), &mcp.CallToolRequest{}, jsonToYAMLInput{
		Document: docInput{Content: `{"name":"test","value":42}`},
	})
	require.NoError(t, err)
	assert.Equal(t, "name: test\nvalue: 42\n", output.Document)
	assert.Equal(t, "yaml", output.Format)
}

func TestJSONToYAMLTool_Flow(t *testing.T) {
	resultCache.reset()
	_, output, err := handleJSONToYAML(context.Background(), &mcp.CallToolRequest{}, jsonToYAMLInput{
		Document: docInput{Content: `{"a":1}`},
		Flow:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "{a: 1}\n", output.Document)
}

func TestJSONToYAMLTool_StylesCachedSeparately(t *testing.T) {
	resultCache.reset()
	withConfig(t, func(c *serverConfig) { c.CacheEnabled = true })
	doc := docInput{Content: `{"a":1}`}

	_, block, err := handleJSONToYAML(context.Background(), &mcp.CallToolRequest{}, jsonToYAMLInput{Document: doc})
	require.NoError(t, err)
	_, flow, err := handleJSONToYAML(context.Background(), &mcp.CallToolRequest{}, jsonToYAMLInput{Document: doc, Flow: true})
	require.NoError(t, err)

	assert.Equal(t, "a: 1\n", block.Document)
	assert.Equal(t, "{a: 1}\n", flow.Document)
	assert.False(t, flow.Cached)
}

func TestJSONToYAMLTool_InvalidIndent(t *testing.T) {
	resultCache.reset()
	result, _, err := handleJSONToYAML(context.Background(), &mcp.CallToolRequest{}, jsonToYAMLInput{
		Document: docInput{Content: `{"a":1}`},
		Indent:   1,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestJSONToYAMLTool_Malformed(t *testing.T) {
	resultCache.reset()
	result, _, err := handleJSONToYAML(context.Background(), &mcp.CallToolRequest{}, jsonToYAMLInput{
		Document: docInput{Content: `{"key": "value", invalid_structure}`},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTools_OutputFile(t *testing.T) {
	resultCache.reset()
	path := filepath.Join(t.TempDir(), "out.json")

	result, output, err := handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, yamlToJSONInput{
		Document: docInput{Content: "a: 1\n"},
		Output:   path,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, path, output.WrittenTo)
	assert.Empty(t, output.Document)
	assert.Equal(t, 7, output.Bytes)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))
}

func TestConvertTools_InvalidOutputPath(t *testing.T) {
	resultCache.reset()
	result, _, err := handleJSONToYAML(context.Background(), &mcp.CallToolRequest{}, jsonToYAMLInput{
		Document: docInput{Content: `{"a":1}`},
		Output:   filepath.Join(t.TempDir(), "missing", "out.yaml"),
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTools_NoInputProvided(t *testing.T) {
	result, _, err := handleYAMLToJSON(context.Background(), &mcp.CallToolRequest{}, yamlToJSONInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTools_OutputOverwritesInput(t *testing.T) {
	resultCache.reset()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o600))

	result, _, err := handleJSONToYAML(context.Background(), &mcp.CallToolRequest{}, jsonToYAMLInput{
		Document: docInput{File: path},
		Output:   path,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))
}
