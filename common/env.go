// Package common holds identifiers shared between the lapwatch command
// layer and its input sources (keyboard and replay scripts).
package common

// Environment variable names for configuration.
const (
	// DebugEnv enables diagnostic logging. "stderr" additionally mirrors
	// the log to standard error.
	DebugEnv = "LAPWATCH_DEBUG"

	// LogFileEnv overrides the diagnostic log path.
	LogFileEnv = "LAPWATCH_LOG_FILE"

	// RefreshEnv overrides the default display refresh interval.
	// Accepts a Go duration ("25ms") or a plain millisecond count.
	RefreshEnv = "LAPWATCH_REFRESH"
)
