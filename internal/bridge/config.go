package bridge

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/yamlbridge/convert"
)

// DefaultMaxInputBytes bounds the size of a single input string.
const DefaultMaxInputBytes int64 = 64 << 20

// Config holds the shared library settings.
// Loaded once at library load from YAMLBRIDGE_* environment variables.
type Config struct {
	// TrackHandles enables the live-handle table that guards Release.
	TrackHandles bool
	// ErrorScope selects per-thread or process-wide last-error storage.
	ErrorScope ErrorScope
	// MaxInputBytes rejects larger inputs with an error payload. Zero disables the limit.
	MaxInputBytes int64
	// LogLevel is "off", "debug", "info", "warn" or "error".
	LogLevel string
}

// DefaultConfig returns the settings used when no environment variable is set.
func DefaultConfig() Config {
	return Config{
		TrackHandles:  true,
		ErrorScope:    ScopeThread,
		MaxInputBytes: DefaultMaxInputBytes,
		LogLevel:      "off",
	}
}

// LoadConfig reads configuration from YAMLBRIDGE_* environment variables.
// Invalid values log a warning and fall back to the default.
func LoadConfig() Config {
	def := DefaultConfig()
	return Config{
		TrackHandles:  envBool("YAMLBRIDGE_TRACK_HANDLES", def.TrackHandles),
		ErrorScope:    ErrorScope(envEnum("YAMLBRIDGE_ERROR_SCOPE", string(def.ErrorScope), string(ScopeThread), string(ScopeProcess))),
		MaxInputBytes: envInt64("YAMLBRIDGE_MAX_INPUT_BYTES", def.MaxInputBytes),
		LogLevel:      envEnum("YAMLBRIDGE_LOG_LEVEL", def.LogLevel, "off", "debug", "info", "warn", "error"),
	}
}

// NewLogger returns a JSON slog logger writing to w at level, or a no-op
// logger when level is "off" or unknown.
func NewLogger(level string, w io.Writer) convert.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return convert.NopLogger{}
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l})
	return convert.NewSlogAdapter(slog.New(handler)).With("component", "yamlbridge")
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

// envInt64 accepts zero, which disables a limit.
func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envEnum(key, fallback string, allowed ...string) string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	slog.Warn("invalid env var, using default", "key", key, "value", v, "default", fallback, "allowed", allowed) //nolint:gosec // G706: values are structured log fields, not format strings
	return fallback
}
