package stopwatch

import "time"

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock sets the time source. A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(s *Stopwatch) {
		if c != nil {
			s.clock = c
		}
	}
}

// Stopwatch tracks elapsed time across pause boundaries and records laps.
//
// While stopped, the elapsed time is fully held in accumulated. While
// running it is accumulated plus the time since startEpoch.
//
// Laps can only be recorded while running; RecordLap on a stopped
// stopwatch is a no-op.
type Stopwatch struct {
	clock       Clock
	running     bool
	startEpoch  time.Time
	accumulated time.Duration
	ledger      Ledger
}

// New returns a stopped, zeroed Stopwatch.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{clock: SystemClock}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins counting. It reports false if the stopwatch was
// already running, in which case nothing changes.
func (s *Stopwatch) Start() bool {
	if s.running {
		return false
	}
	s.running = true
	s.startEpoch = s.clock.Now()
	return true
}

// Stop freezes the elapsed time. It reports false if the stopwatch was
// not running.
func (s *Stopwatch) Stop() bool {
	if !s.running {
		return false
	}
	s.accumulated += s.since(s.clock.Now())
	s.running = false
	s.startEpoch = time.Time{}
	return true
}

// Toggle starts a stopped stopwatch or stops a running one and returns
// the new running state.
func (s *Stopwatch) Toggle() bool {
	if s.running {
		s.Stop()
	} else {
		s.Start()
	}
	return s.running
}

// Reset stops the stopwatch, zeroes the elapsed time and clears the
// ledger. It is valid in any state.
func (s *Stopwatch) Reset() {
	s.running = false
	s.startEpoch = time.Time{}
	s.accumulated = 0
	s.ledger.Clear()
}

// Running reports whether the stopwatch is counting.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the total running time since the last reset,
// excluding paused intervals.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.running {
		return s.accumulated
	}
	return s.accumulated + s.since(s.clock.Now())
}

// ElapsedMillis returns Elapsed truncated to whole milliseconds.
func (s *Stopwatch) ElapsedMillis() int64 {
	return s.Elapsed().Milliseconds()
}

// since is clamped at zero so a clock that steps backwards cannot make
// elapsed time decrease.
func (s *Stopwatch) since(now time.Time) time.Duration {
	d := now.Sub(s.startEpoch)
	if d < 0 {
		return 0
	}
	return d
}

// RecordLap appends a lap taken at the current elapsed time. It reports
// false, recording nothing, when the stopwatch is stopped.
func (s *Stopwatch) RecordLap() (Lap, bool) {
	if !s.running {
		return Lap{}, false
	}
	return s.ledger.Record(s.Elapsed()), true
}

// ClearLaps empties the ledger without touching the running state or
// the elapsed time. The next lap's split is measured from zero.
func (s *Stopwatch) ClearLaps() {
	s.ledger.Clear()
}

// Laps returns the recorded laps, oldest first.
func (s *Stopwatch) Laps() []Lap {
	return s.ledger.Laps()
}

// LastLap returns the most recent lap, or false when none is recorded.
func (s *Stopwatch) LastLap() (Lap, bool) {
	return s.ledger.Last()
}

// LapCount returns the number of recorded laps.
func (s *Stopwatch) LapCount() int {
	return s.ledger.Len()
}

// Stats returns split statistics, or false when no laps are recorded.
func (s *Stopwatch) Stats() (Stats, bool) {
	return s.ledger.Stats()
}

// FastestLap returns the shortest split, or false when no laps are recorded.
func (s *Stopwatch) FastestLap() (time.Duration, bool) {
	st, ok := s.ledger.Stats()
	return st.Fastest, ok
}

// SlowestLap returns the longest split, or false when no laps are recorded.
func (s *Stopwatch) SlowestLap() (time.Duration, bool) {
	st, ok := s.ledger.Stats()
	return st.Slowest, ok
}

// AverageLap returns the mean split, or false when no laps are recorded.
func (s *Stopwatch) AverageLap() (time.Duration, bool) {
	st, ok := s.ledger.Stats()
	return st.Average, ok
}

// Snapshot is a point-in-time copy of everything a renderer needs.
type Snapshot struct {
	Running  bool          `json:"running"`
	Elapsed  time.Duration `json:"elapsed"`
	Laps     []Lap         `json:"laps"`
	Stats    Stats         `json:"stats"`
	HasStats bool          `json:"has_stats"`
}

// Snapshot reads the stopwatch state against a single clock reading.
func (s *Stopwatch) Snapshot() Snapshot {
	st, ok := s.ledger.Stats()
	return Snapshot{
		Running:  s.running,
		Elapsed:  s.Elapsed(),
		Laps:     s.ledger.Laps(),
		Stats:    st,
		HasStats: ok,
	}
}
