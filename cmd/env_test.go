package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lapwatch/lapwatch/common"
	"github.com/lapwatch/lapwatch/pkg/logger"
)

func TestParseInterval(t *testing.T) {
	cases := map[string]time.Duration{
		"25":    ms(25),
		" 100 ": ms(100),
		"1.5s":  ms(1500),
		"20ms":  ms(20),
	}
	for in, want := range cases {
		got, err := parseInterval(in)
		if err != nil || got != want {
			t.Errorf("%q: expected %v, got %v (err=%v)", in, want, got, err)
		}
	}
	if _, err := parseInterval("soon"); err == nil {
		t.Error("expected error for invalid interval")
	}
}

func TestRefreshFromEnv(t *testing.T) {
	l := logger.NewMockLogger()

	t.Setenv(common.RefreshEnv, "")
	if got := refreshFromEnv(l); got != DEF_REFRESH {
		t.Errorf("expected default, got %v", got)
	}

	t.Setenv(common.RefreshEnv, "40ms")
	if got := refreshFromEnv(l); got != ms(40) {
		t.Errorf("expected 40ms, got %v", got)
	}

	t.Setenv(common.RefreshEnv, "-5")
	if got := refreshFromEnv(l); got != DEF_REFRESH {
		t.Errorf("expected default for negative value, got %v", got)
	}
	if len(l.WarningCalls) != 1 {
		t.Errorf("expected one warning, got %v", l.WarningCalls)
	}
}

func TestNewLogger_DisabledByDefault(t *testing.T) {
	t.Setenv(common.DebugEnv, "")
	if _, ok := newLogger().(*logger.NopLogger); !ok {
		t.Fatal("expected NopLogger when debug is unset")
	}
	t.Setenv(common.DebugEnv, "false")
	if _, ok := newLogger().(*logger.NopLogger); !ok {
		t.Fatal("expected NopLogger when debug is false")
	}
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(common.DebugEnv, "1")
	t.Setenv(common.LogFileEnv, path)

	l := newLogger()
	l.Info("hello %s", "file")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "[INFO] hello file") {
		t.Fatalf("unexpected log content: %s", data)
	}
}

func TestLogFilePath_Default(t *testing.T) {
	t.Setenv(common.LogFileEnv, "")
	if got := logFilePath(); got != filepath.Join(os.TempDir(), "lapwatch.log") {
		t.Fatalf("unexpected default log path %q", got)
	}
}
