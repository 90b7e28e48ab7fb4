package stopwatch

import (
	"fmt"
	"time"
)

// NoData is shown in place of a statistic when the ledger is empty.
const NoData = "--:--:--"

// Components splits d into hours, minutes, seconds and milliseconds.
// Hours do not wrap. Negative durations are treated as zero.
func Components(d time.Duration) (hours, minutes, seconds, millis int64) {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	hours = ms / 3600000
	minutes = (ms % 3600000) / 60000
	seconds = (ms % 60000) / 1000
	millis = ms % 1000
	return
}

// Format renders d as HH:MM:SS.mmm.
func Format(d time.Duration) string {
	h, m, s, ms := Components(d)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// FormatMillis renders a millisecond count as HH:MM:SS.mmm.
func FormatMillis(ms int64) string {
	return Format(time.Duration(ms) * time.Millisecond)
}

// FormatStat renders a statistic returned alongside an ok flag,
// falling back to NoData.
func FormatStat(d time.Duration, ok bool) string {
	if !ok {
		return NoData
	}
	return Format(d)
}
