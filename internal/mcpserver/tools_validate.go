package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/yamlbridge/convert"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	Document docInput `json:"document"         jsonschema:"The document to check"`
	Format   string   `json:"format,omitempty" jsonschema:"yaml, json or auto (default auto)"`
}

type validateOutput struct {
	Valid  bool   `json:"valid"`
	Format string `json:"format"`
	Error  string `json:"error,omitempty"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	doc, err := input.Document.load(ctx)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	format, err := resolveFormat(input.Format, doc)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output, _, _ := cached("validate", doc, string(format), func() (validateOutput, error) {
		var perr error
		if format == convert.FormatJSON {
			_, perr = convert.ParseJSON(doc.Text)
		} else {
			_, perr = convert.ParseYAML(doc.Text)
		}
		out := validateOutput{Valid: perr == nil, Format: string(format)}
		if perr != nil {
			out.Error = sanitizeError(perr)
		}
		return out, nil
	})
	return nil, output, nil
}

// resolveFormat applies the explicit format, else the extension hint, else
// content sniffing. Blank content sniffs as YAML, where it is a null document.
func resolveFormat(name string, doc *loadedDoc) (convert.Format, error) {
	switch name {
	case "", "auto":
	default:
		f := convert.ParseFormat(name)
		if f == convert.FormatUnknown {
			return f, fmt.Errorf("invalid format %q; valid values: auto, yaml, json", name)
		}
		return f, nil
	}
	if doc.Hint != convert.FormatUnknown {
		return doc.Hint, nil
	}
	if f := convert.DetectFormat([]byte(doc.Text)); f != convert.FormatUnknown {
		return f, nil
	}
	return convert.FormatYAML, nil
}
