package bridgeerrors

import (
	"errors"
	"fmt"
)

// InvalidUTF8Message is the fixed message reported for input that is not UTF-8 text.
const InvalidUTF8Message = "Invalid UTF-8 in input"

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidEncoding indicates the input bytes are not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrSerialization indicates a value could not be written in the target format.
	ErrSerialization = errors.New("serialization error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// EncodingError reports input that is not valid UTF-8 text.
type EncodingError struct {
	// Offset is the byte offset of the first invalid sequence (-1 if unknown)
	Offset int
}

// Error returns a human-readable error message.
func (e *EncodingError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at byte %d", InvalidUTF8Message, e.Offset)
	}
	return InvalidUTF8Message
}

// Is reports whether target matches this error type.
func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

// ParseError represents a failure to parse YAML or JSON text.
type ParseError struct {
	// Format is the input format ("YAML" or "JSON")
	Format string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying library error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg = e.Format + " " + msg
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SerializationError represents a value that cannot be emitted in the target format,
// such as a NaN float in JSON or output that cannot be carried by a C string.
type SerializationError struct {
	// Format is the output format ("YAML" or "JSON")
	Format string
	// Path is the JSON Pointer to the offending value (empty for the root)
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SerializationError) Error() string {
	msg := "serialization error"
	if e.Format != "" {
		msg = e.Format + " " + msg
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SerializationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when untrusted input exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "input_size", "nesting_depth", "alias_expansion"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
