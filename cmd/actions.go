package cmd

import (
	"github.com/lapwatch/lapwatch/common"
	"github.com/lapwatch/lapwatch/pkg/stopwatch"
)

// applyAction runs a on sw and reports whether it changed anything.
// Quit is not a stopwatch operation and always reports false.
func applyAction(sw *stopwatch.Stopwatch, a common.Action) bool {
	switch a {
	case common.ActionStart:
		return sw.Start()
	case common.ActionStop:
		return sw.Stop()
	case common.ActionToggle:
		sw.Toggle()
		return true
	case common.ActionLap:
		_, ok := sw.RecordLap()
		return ok
	case common.ActionReset:
		sw.Reset()
		return true
	case common.ActionClear:
		sw.ClearLaps()
		return true
	}
	return false
}
