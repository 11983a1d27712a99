// Package bridgeerrors provides structured error types for yamlbridge.
//
// Import path: github.com/erraggy/yamlbridge/bridgeerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish input that is not text at all from text that
// does not parse, and from values that cannot be written in the target format.
//
// # Error Types
//
//   - [EncodingError]: input bytes are not valid UTF-8
//   - [ParseError]: the YAML or JSON library rejected the input
//   - [SerializationError]: a parsed value cannot be emitted in the target format
//   - [ResourceLimitError]: input size, nesting depth, or alias expansion limits
//   - [ConfigError]: invalid options or environment configuration
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidEncoding]: Matches any [EncodingError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrSerialization]: Matches any [SerializationError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	out, err := convert.YAMLToJSON(text)
//	if err != nil {
//	    var perr *bridgeerrors.ParseError
//	    if errors.As(err, &perr) && perr.Line > 0 {
//	        fmt.Printf("bad input near line %d\n", perr.Line)
//	    }
//	}
package bridgeerrors
