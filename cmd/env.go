package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lapwatch/lapwatch/common"
	"github.com/lapwatch/lapwatch/pkg/logger"
)

// parseInterval accepts a Go duration or a bare millisecond count.
func parseInterval(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(s)
}

// refreshFromEnv returns the refresh interval configured through the
// environment, or DEF_REFRESH when unset or invalid.
func refreshFromEnv(l logger.Logger) time.Duration {
	v := os.Getenv(common.RefreshEnv)
	if v == "" {
		return DEF_REFRESH
	}
	d, err := parseInterval(v)
	if err != nil || d <= 0 {
		l.Warning("ignoring %s=%q, using %s", common.RefreshEnv, v, DEF_REFRESH)
		return DEF_REFRESH
	}
	return d
}

func logFilePath() string {
	if p := os.Getenv(common.LogFileEnv); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), "lapwatch.log")
}

// newLogger builds the diagnostic logger. Logging is off unless
// LAPWATCH_DEBUG is set; the terminal belongs to the display, so the log
// goes to a file and only reaches stderr when asked for explicitly.
func newLogger() logger.Logger {
	debug := strings.ToLower(os.Getenv(common.DebugEnv))
	if debug == "" || debug == "0" || debug == "false" {
		return logger.NewNopLogger()
	}
	var backends []logger.Logger
	fl, err := logger.NewFileLogger(logFilePath())
	if err == nil {
		backends = append(backends, fl)
	}
	if debug == "stderr" || err != nil {
		backends = append(backends, logger.NewStandardLogger(log.New(os.Stderr, "lapwatch: ", log.LstdFlags)))
	}
	l := logger.NewMultiLogger(backends...)
	if err != nil {
		l.Warning("file logging disabled: %v", err)
	}
	return l
}
