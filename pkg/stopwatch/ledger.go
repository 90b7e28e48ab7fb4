package stopwatch

import "time"

// Lap is a single entry of the ledger.
type Lap struct {
	// Index is 1-based and sequential within the current ledger.
	Index int `json:"index"`
	// Split is the time since the previous lap, or since zero for the first lap.
	Split time.Duration `json:"split"`
	// Cumulative is the total elapsed time when the lap was recorded.
	Cumulative time.Duration `json:"cumulative"`
}

// Stats summarises the splits of a ledger.
type Stats struct {
	Count   int           `json:"count"`
	Fastest time.Duration `json:"fastest"`
	Slowest time.Duration `json:"slowest"`
	Average time.Duration `json:"average"`
}

// Ledger is an ordered, append-only list of laps.
// The zero value is an empty ledger ready for use.
type Ledger struct {
	laps []Lap
	last time.Duration
}

// Record appends a lap taken at the given cumulative elapsed time.
func (l *Ledger) Record(cumulative time.Duration) Lap {
	lap := Lap{
		Index:      len(l.laps) + 1,
		Split:      cumulative - l.last,
		Cumulative: cumulative,
	}
	l.laps = append(l.laps, lap)
	l.last = cumulative
	return lap
}

// Clear empties the ledger and rewinds the split base to zero.
func (l *Ledger) Clear() {
	l.laps = nil
	l.last = 0
}

// Len returns the number of recorded laps.
func (l *Ledger) Len() int {
	return len(l.laps)
}

// Laps returns a copy of the recorded laps, oldest first.
func (l *Ledger) Laps() []Lap {
	if len(l.laps) == 0 {
		return nil
	}
	out := make([]Lap, len(l.laps))
	copy(out, l.laps)
	return out
}

// Last returns the most recent lap.
func (l *Ledger) Last() (Lap, bool) {
	if len(l.laps) == 0 {
		return Lap{}, false
	}
	return l.laps[len(l.laps)-1], true
}

// Stats returns split statistics, or false when the ledger is empty.
func (l *Ledger) Stats() (Stats, bool) {
	if len(l.laps) == 0 {
		return Stats{}, false
	}
	s := Stats{
		Count:   len(l.laps),
		Fastest: l.laps[0].Split,
		Slowest: l.laps[0].Split,
	}
	var sum time.Duration
	for _, lap := range l.laps {
		if lap.Split < s.Fastest {
			s.Fastest = lap.Split
		}
		if lap.Split > s.Slowest {
			s.Slowest = lap.Split
		}
		sum += lap.Split
	}
	s.Average = sum / time.Duration(len(l.laps))
	return s, true
}
