package convert

import (
	"strings"

	"github.com/erraggy/yamlbridge/bridgeerrors"
)

// Default resource limits applied to untrusted input.
const (
	// DefaultMaxDepth is the deepest collection nesting accepted by the decoders.
	DefaultMaxDepth = 1000

	// DefaultMaxAliasExpansions is the number of nodes that may be materialised
	// through YAML aliases before decoding is aborted.
	DefaultMaxAliasExpansions = 100_000

	// DefaultYAMLIndent is the block indentation of emitted YAML.
	DefaultYAMLIndent = 2
)

// Option is a function that configures a conversion
type Option func(*config) error

// config holds configuration for a conversion
type config struct {
	// Resource limits (0 means unlimited for maxInputBytes)
	maxDepth           int
	maxAliasExpansions int
	maxInputBytes      int64

	// Output shaping
	jsonIndent string
	yamlIndent int

	logger Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		maxDepth:           DefaultMaxDepth,
		maxAliasExpansions: DefaultMaxAliasExpansions,
		yamlIndent:         DefaultYAMLIndent,
		logger:             NopLogger{},
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WithMaxDepth limits how deeply collections may nest in the input.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) error {
		if depth <= 0 {
			return &bridgeerrors.ConfigError{Option: "max depth", Value: depth, Message: "must be positive"}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithMaxAliasExpansions limits the number of nodes produced by expanding YAML aliases.
func WithMaxAliasExpansions(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return &bridgeerrors.ConfigError{Option: "max alias expansions", Value: n, Message: "must be positive"}
		}
		cfg.maxAliasExpansions = n
		return nil
	}
}

// WithMaxInputBytes rejects input larger than n bytes. Zero disables the check.
func WithMaxInputBytes(n int64) Option {
	return func(cfg *config) error {
		if n < 0 {
			return &bridgeerrors.ConfigError{Option: "max input bytes", Value: n, Message: "must not be negative"}
		}
		cfg.maxInputBytes = n
		return nil
	}
}

// WithJSONIndent pretty-prints JSON output using indent for each level.
// An empty indent keeps the default compact output.
func WithJSONIndent(indent string) Option {
	return func(cfg *config) error {
		if strings.Trim(indent, " \t") != "" {
			return &bridgeerrors.ConfigError{Option: "json indent", Value: indent, Message: "must contain only spaces and tabs"}
		}
		cfg.jsonIndent = indent
		return nil
	}
}

// WithYAMLIndent sets the number of spaces used for block indentation.
func WithYAMLIndent(spaces int) Option {
	return func(cfg *config) error {
		if spaces < 2 || spaces > 9 {
			return &bridgeerrors.ConfigError{Option: "yaml indent", Value: spaces, Message: "must be between 2 and 9"}
		}
		cfg.yamlIndent = spaces
		return nil
	}
}

// WithLogger sets the logger for debug output. Nil restores the no-op logger.
func WithLogger(l Logger) Option {
	return func(cfg *config) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

func (c *config) checkSize(format string, n int) error {
	if c.maxInputBytes > 0 && int64(n) > c.maxInputBytes {
		return &bridgeerrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        c.maxInputBytes,
			Actual:       int64(n),
			Message:      format + " input too large",
		}
	}
	return nil
}

func (c *config) depthError(format string, depth int) error {
	return &bridgeerrors.ResourceLimitError{
		ResourceType: "nesting_depth",
		Limit:        int64(c.maxDepth),
		Actual:       int64(depth),
		Message:      format + " input nests too deeply",
	}
}
