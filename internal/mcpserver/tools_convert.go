package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/yamlbridge/convert"
	"github.com/erraggy/yamlbridge/internal/cliutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type yamlToJSONInput struct {
	Document docInput `json:"document"         jsonschema:"The YAML document to convert"`
	Indent   *int     `json:"indent,omitempty" jsonschema:"Spaces per indentation level for pretty output (0 = compact, max 8)"`
	Output   string   `json:"output,omitempty" jsonschema:"Write the JSON to this file path instead of returning it inline"`
}

type jsonToYAMLInput struct {
	Document docInput `json:"document"         jsonschema:"The JSON document to convert"`
	Flow     bool     `json:"flow,omitempty"   jsonschema:"Emit flow style ({a: 1, b: [x, y]}) instead of block style"`
	Indent   int      `json:"indent,omitempty" jsonschema:"Spaces per block indentation level (2-9, default 2)"`
	Output   string   `json:"output,omitempty" jsonschema:"Write the YAML to this file path instead of returning it inline"`
}

type convertOutput struct {
	Format    string `json:"format"`
	Bytes     int    `json:"bytes"`
	Cached    bool   `json:"cached,omitempty"`
	Document  string `json:"document,omitempty"`
	WrittenTo string `json:"written_to,omitempty"`
}

func handleYAMLToJSON(ctx context.Context, _ *mcp.CallToolRequest, input yamlToJSONInput) (*mcp.CallToolResult, convertOutput, error) {
	// Apply config default when indent is omitted (nil).
	indent := cfg.JSONIndent
	if input.Indent != nil {
		indent = *input.Indent
	}
	if indent < 0 || indent > 8 {
		return errResult(fmt.Errorf("invalid indent %d; must be between 0 and 8", indent)), convertOutput{}, nil
	}

	doc, err := input.Document.load(ctx)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	out, hit, err := cached("yaml_to_json", doc, "indent="+strconv.Itoa(indent), func() (string, error) {
		return convert.YAMLToJSON(doc.Text, convert.WithJSONIndent(strings.Repeat(" ", indent)))
	})
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	return deliver(out, convert.FormatJSON, hit, input.Output, input.Document.File)
}

func handleJSONToYAML(ctx context.Context, _ *mcp.CallToolRequest, input jsonToYAMLInput) (*mcp.CallToolResult, convertOutput, error) {
	style := convert.StyleBlock
	if input.Flow {
		style = convert.StyleFlow
	}
	indent := input.Indent
	if indent == 0 {
		indent = convert.DefaultYAMLIndent
	}

	doc, err := input.Document.load(ctx)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	variant := style.String() + ",indent=" + strconv.Itoa(indent)
	out, hit, err := cached("json_to_yaml", doc, variant, func() (string, error) {
		return convert.JSONToYAML(doc.Text, style, convert.WithYAMLIndent(indent))
	})
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	return deliver(out, convert.FormatYAML, hit, input.Output, input.Document.File)
}

// deliver returns the converted text inline or writes it to path.
// inputFile is the document's source file, which path must not overwrite.
func deliver(text string, format convert.Format, hit bool, path, inputFile string) (*mcp.CallToolResult, convertOutput, error) {
	output := convertOutput{Format: string(format), Bytes: len(text), Cached: hit}
	if path != "" {
		abs, err := cliutil.CheckOutputPath(path, inputFile)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		if err := os.WriteFile(abs, []byte(text), 0o644); err != nil { //nolint:gosec // G306: converted documents are not secrets
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = path
	} else {
		output.Document = text
	}
	return nil, output, nil
}
