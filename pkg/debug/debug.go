// Package debug provides category-based debug logging for hubbridge.
//
// Two orthogonal controls:
//   - Categories (WHAT to debug): controlled via HUBBRIDGE_DEBUG env or config
//   - Levels (HOW MUCH detail): controlled via HUBBRIDGE_LOG_LEVEL env or config
//
// Usage:
//
//	debug.Log("bridge", "relaying item", "kind", kind, "id", id)
//	if debug.Enabled("bridge") { /* expensive formatting */ }
//
// Categories: client, format, bridge, config, all.
// Levels: ERROR, WARN, INFO, DEBUG, TRACE.
//
// The core API client never logs; these helpers are for the consumer-side
// packages (bridge, config, cmd).
package debug

import (
	"log/slog"
	"os"
	"strings"
)

// LevelTrace is below slog.LevelDebug for maximum verbosity. At TRACE the
// bridge logs full formatted message bodies.
const LevelTrace = slog.LevelDebug - 4

// categories holds the set of enabled debug categories.
// Access is read-only after Init(), so no synchronization needed.
var categories map[string]bool

func init() {
	// Initialize from environment for immediate availability. Re-initialized
	// via Init() once config is loaded.
	categories = parseCategories(os.Getenv("HUBBRIDGE_DEBUG"))
}

// Init configures the debug system from config values. Environment
// variables take precedence over config.
func Init(configCategories string, configLevel string) {
	cats := os.Getenv("HUBBRIDGE_DEBUG")
	if cats == "" {
		cats = configCategories
	}
	categories = parseCategories(cats)

	level := os.Getenv("HUBBRIDGE_LOG_LEVEL")
	if level == "" {
		level = configLevel
	}
	if level == "" {
		level = "INFO"
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})))
}

// Enabled reports whether debug output is active for the given category.
func Enabled(category string) bool {
	return categories["all"] || categories[category]
}

// Log emits a debug message for the given category.
// If the category is not enabled, this is a no-op.
func Log(category string, msg string, args ...any) {
	if !Enabled(category) {
		return
	}
	slog.Debug(msg, append([]any{"debug", category}, args...)...)
}

// Trace emits a trace-level message for the given category.
// Only visible when HUBBRIDGE_LOG_LEVEL=TRACE.
func Trace(category string, msg string, args ...any) {
	if !Enabled(category) {
		return
	}
	slog.Log(nil, LevelTrace, msg, append([]any{"debug", category}, args...)...)
}

// ParseLevel converts a level string to a slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "INFO", "":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Clip returns s truncated to maxLen bytes, with "..." appended if clipped.
// Used to keep logged message bodies readable.
func Clip(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func parseCategories(s string) map[string]bool {
	result := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			result[part] = true
		}
	}
	return result
}
