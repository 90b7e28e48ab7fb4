package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/lapwatch/lapwatch/cmd/common"
	"github.com/lapwatch/lapwatch/pkg/stopwatch"
)

const (
	badgeFastest = "Fastest"
	badgeSlowest = "Slowest"
)

// lapBadge marks the extreme laps of a ledger. A single lap is never
// badged, and a lap tied for both extremes is shown as fastest.
func lapBadge(lap stopwatch.Lap, st stopwatch.Stats) string {
	if st.Count < 2 {
		return ""
	}
	switch lap.Split {
	case st.Fastest:
		return badgeFastest
	case st.Slowest:
		return badgeSlowest
	}
	return ""
}

// buttonLabel is the verb the start/stop key performs next.
func buttonLabel(snap stopwatch.Snapshot) string {
	switch {
	case snap.Running:
		return "Pause"
	case snap.Elapsed > 0:
		return "Resume"
	}
	return "Start"
}

// ringPosition maps elapsed time onto the display bar, one sweep per minute.
func ringPosition(d time.Duration) int64 {
	_, _, s, _ := stopwatch.Components(d)
	return s % common.RingSteps
}

func lapLine(lap stopwatch.Lap) string {
	return fmt.Sprintf("Lap %d  %s  (total %s)",
		lap.Index, stopwatch.Format(lap.Split), stopwatch.Format(lap.Cumulative))
}

const (
	colLap   = 5
	colTime  = 14
	colBadge = 9
)

var tableRule = strings.Repeat("-", colLap+2*colTime+colBadge+5)

// renderLaps lays the ledger out as a table, newest lap first.
func renderLaps(laps []stopwatch.Lap, st stopwatch.Stats) string {
	if len(laps) == 0 {
		return "lapwatch: no laps recorded\n"
	}
	txt := tableRule
	txt += "\n|" + common.Beaut("Lap", colLap) +
		"|" + common.Beaut("Split", colTime) +
		"|" + common.Beaut("Cumulative", colTime) +
		"|" + common.Beaut("", colBadge) + "|"
	txt += "\n|" + strings.Repeat("-", colLap) +
		"|" + strings.Repeat("-", colTime) +
		"|" + strings.Repeat("-", colTime) +
		"|" + strings.Repeat("-", colBadge) + "|"
	for i := len(laps) - 1; i >= 0; i-- {
		lap := laps[i]
		txt += "\n|" + common.Beaut(fmt.Sprint(lap.Index), colLap) +
			"|" + common.Beaut(stopwatch.Format(lap.Split), colTime) +
			"|" + common.Beaut(stopwatch.Format(lap.Cumulative), colTime) +
			"|" + common.Beaut(lapBadge(lap, st), colBadge) + "|"
	}
	txt += "\n" + tableRule + "\n"
	return txt
}

// renderStats prints the three split statistics, or placeholders when
// there are no laps.
func renderStats(st stopwatch.Stats, ok bool) string {
	return fmt.Sprintf("Fastest: %s\nSlowest: %s\nAverage: %s\n",
		stopwatch.FormatStat(st.Fastest, ok),
		stopwatch.FormatStat(st.Slowest, ok),
		stopwatch.FormatStat(st.Average, ok),
	)
}

// renderSummary is printed once a session or replay has finished.
func renderSummary(snap stopwatch.Snapshot) string {
	txt := fmt.Sprintf("Elapsed: %s\n\n", stopwatch.Format(snap.Elapsed))
	txt += renderLaps(snap.Laps, snap.Stats)
	txt += "\n" + renderStats(snap.Stats, snap.HasStats)
	return txt
}
