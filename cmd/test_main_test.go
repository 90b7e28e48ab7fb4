package cmd

import (
	"os"
	"testing"

	"github.com/lapwatch/lapwatch/common"
)

func TestMain(m *testing.M) {
	_ = os.Unsetenv(common.DebugEnv)
	_ = os.Unsetenv(common.RefreshEnv)
	_ = os.Unsetenv(common.LogFileEnv)
	os.Exit(m.Run())
}
