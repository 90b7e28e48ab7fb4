package cmd

import (
	"testing"
	"time"

	"github.com/lapwatch/lapwatch/common"
	"github.com/lapwatch/lapwatch/pkg/stopwatch"
)

func TestApplyAction(t *testing.T) {
	clock := stopwatch.NewManualClock(time.Unix(0, 0))
	sw := stopwatch.New(stopwatch.WithClock(clock))

	if applyAction(sw, common.ActionStop) {
		t.Error("stop on a stopped stopwatch should report no change")
	}
	if !applyAction(sw, common.ActionStart) {
		t.Error("start should report a change")
	}
	if applyAction(sw, common.ActionStart) {
		t.Error("second start should report no change")
	}
	clock.Advance(time.Second)
	if !applyAction(sw, common.ActionLap) {
		t.Error("lap while running should report a change")
	}
	if !applyAction(sw, common.ActionToggle) || sw.Running() {
		t.Error("toggle should stop a running stopwatch")
	}
	if applyAction(sw, common.ActionLap) {
		t.Error("lap while stopped should report no change")
	}
	if !applyAction(sw, common.ActionClear) || sw.LapCount() != 0 {
		t.Error("clear should empty the ledger")
	}
	if !applyAction(sw, common.ActionReset) || sw.Elapsed() != 0 {
		t.Error("reset should zero the stopwatch")
	}
	if applyAction(sw, common.ActionQuit) {
		t.Error("quit is not a stopwatch operation")
	}
}
