// Package yamlbridge converts between YAML and JSON text and exposes the
// conversion through a C-compatible shared library.
//
// The module is organised in two layers:
//
//   - convert: the conversion core. Pure functions over in-memory text that
//     parse YAML or JSON into an ordered structured value and serialize it back
//     out in the other format.
//   - cmd/libyamlbridge: the C ABI. Built with -buildmode=c-shared, it validates
//     raw pointers, decodes input as UTF-8, calls the core, and hands the result
//     back as a caller-owned C string.
//
// Two front ends share the same core: the yamlbridge command (cmd/yamlbridge)
// with yaml2json, json2yaml and validate subcommands, and an MCP server
// started with "yamlbridge mcp" that offers the same operations as tools.
//
// # Installation
//
//	go get github.com/erraggy/yamlbridge
//
// # Quick Start
//
// Convert YAML to compact JSON:
//
//	import "github.com/erraggy/yamlbridge/convert"
//
//	out, err := convert.YAMLToJSON("name: demo\ntags: [a, b]\n")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // {"name":"demo","tags":["a","b"]}
//
// Convert JSON to YAML in block or flow style:
//
//	block, _ := convert.JSONToYAML(`{"a":1,"b":[true,null]}`, convert.StyleBlock)
//	flow, _ := convert.JSONToYAML(`{"a":1,"b":[true,null]}`, convert.StyleFlow)
//
// # Shared Library
//
// Build the C library and header:
//
//	go build -buildmode=c-shared -o libyamlbridge.so ./cmd/libyamlbridge
//
// Every string returned by yaml_parse and yaml_encode is owned by the caller
// and must be released exactly once with free_string. The one exception is
// yaml_bridge_version, which returns a borrowed static string that must never
// be released. See the cmd/libyamlbridge package documentation for the full
// ownership contract.
//
// # Error Handling
//
// Conversion failures are never reported through a separate channel at the C
// boundary: the result is a JSON object of the form {"error":"..."}. Within Go,
// the core returns typed errors from the bridgeerrors package, usable with
// errors.Is and errors.As.
package yamlbridge
