package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Result cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheTTL           time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize int64
	MaxFetchSize  int64

	// AllowPrivateIPs disables the SSRF guard for url inputs.
	AllowPrivateIPs bool

	// Output defaults.
	JSONIndent int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from YAMLBRIDGE_MCP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("YAMLBRIDGE_MCP_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("YAMLBRIDGE_MCP_CACHE_MAX_SIZE", 32),
		CacheTTL:           envDuration("YAMLBRIDGE_MCP_CACHE_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("YAMLBRIDGE_MCP_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      envInt64("YAMLBRIDGE_MCP_MAX_INLINE_SIZE", 10*1024*1024),
		MaxFetchSize:       envInt64("YAMLBRIDGE_MCP_MAX_FETCH_SIZE", 10*1024*1024),
		AllowPrivateIPs:    envBool("YAMLBRIDGE_MCP_ALLOW_PRIVATE_IPS", false),
		JSONIndent:         envIndent("YAMLBRIDGE_MCP_JSON_INDENT"),
	}
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

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

// envIndent accepts 0 (compact) through 8 spaces.
func envIndent(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 8 {
		slog.Warn("invalid indent env var, using compact output", "key", key, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		return 0
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
