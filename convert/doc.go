// Package convert translates documents between YAML and JSON.
//
// Both directions go through a structured [Value] that keeps mapping keys in
// input order and keeps numbers in their original textual form, so a
// conversion never rounds or clamps a number.
//
// # Quick Start
//
//	out, err := convert.YAMLToJSON("name: test\nvalue: 42\n")
//	// out == `{"name":"test","value":42}`
//
//	out, err = convert.JSONToYAML(`{"a":1,"b":[1,2]}`, convert.StyleFlow)
//	// out == "{a: 1, b: [1, 2]}\n"
//
// # Resource limits
//
// Decoding is bounded by nesting depth ([WithMaxDepth]), YAML alias expansion
// ([WithMaxAliasExpansions]) and optionally input size ([WithMaxInputBytes]).
// Exceeding a limit returns a *bridgeerrors.ResourceLimitError.
//
// # Errors
//
// Malformed input yields a *bridgeerrors.ParseError carrying the line and
// column when the underlying parser reports them. Values that have no
// representation in the target format (a NaN in JSON, for instance) yield a
// *bridgeerrors.SerializationError.
package convert
