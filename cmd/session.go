package cmd

import (
	"context"
	"time"

	"github.com/lapwatch/lapwatch/common"
	"github.com/lapwatch/lapwatch/internal/refresh"
	"github.com/lapwatch/lapwatch/pkg/logger"
	"github.com/lapwatch/lapwatch/pkg/stopwatch"
)

// display is whatever draws the session. Render is called after every
// state change and on every live refresh tick.
type display interface {
	Render(snap stopwatch.Snapshot)
	// Println prints a line above the live display.
	Println(line string)
	Close()
}

// session owns a stopwatch for the lifetime of an interactive run. All
// stopwatch access happens on the goroutine running loop, so the
// stopwatch needs no locking.
type session struct {
	sw     *stopwatch.Stopwatch
	ticker *refresh.Refresher
	out    display
	log    logger.Logger

	autoLap  time.Duration
	nextAuto time.Duration
}

func newSession(sw *stopwatch.Stopwatch, ticker *refresh.Refresher, out display, l logger.Logger, autoLap time.Duration) *session {
	s := &session{
		sw:      sw,
		ticker:  ticker,
		out:     out,
		log:     l,
		autoLap: autoLap,
	}
	s.rearmAutoLap()
	return s
}

// loop processes actions and refresh ticks until ctx is done, actions is
// closed, or a quit action arrives.
func (s *session) loop(ctx context.Context, actions <-chan common.Action) {
	defer s.ticker.Stop()
	s.out.Render(s.sw.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return
		case a, ok := <-actions:
			if !ok || s.handle(a) {
				return
			}
		case t := <-s.ticker.Ticks():
			s.tick(t)
		}
	}
}

// handle applies one action and reports whether the session should end.
// Reset is only honoured while stopped, matching the reset key being
// unavailable during a run.
func (s *session) handle(a common.Action) bool {
	if a == common.ActionQuit {
		return true
	}
	if a == common.ActionReset && s.sw.Running() {
		s.log.Info("reset ignored while running")
		return false
	}

	laps := s.sw.LapCount()
	if !applyAction(s.sw, a) {
		s.log.Info("%s ignored", a)
		return false
	}
	s.log.Info("%s at %s", a, stopwatch.Format(s.sw.Elapsed()))

	switch a {
	case common.ActionLap:
		if lap, ok := s.sw.LastLap(); ok && s.sw.LapCount() > laps {
			s.out.Println(lapLine(lap))
		}
	case common.ActionClear:
		s.out.Println("laps cleared")
		s.rearmAutoLap()
	case common.ActionReset:
		s.out.Println("reset")
		s.rearmAutoLap()
	}

	s.syncTicker()
	s.out.Render(s.sw.Snapshot())
	return false
}

// syncTicker keeps the refresher running exactly while the stopwatch is.
// Stopping it discards ticks queued before the stop.
func (s *session) syncTicker() {
	if s.sw.Running() {
		s.ticker.Start()
		return
	}
	s.ticker.Stop()
}

func (s *session) tick(t refresh.Tick) {
	if s.ticker.Stale(t) {
		return
	}
	s.checkAutoLap()
	s.out.Render(s.sw.Snapshot())
}

func (s *session) checkAutoLap() {
	if s.autoLap <= 0 || !s.sw.Running() {
		return
	}
	if s.sw.Elapsed() < s.nextAuto {
		return
	}
	if lap, ok := s.sw.RecordLap(); ok {
		s.log.Info("auto lap %d", lap.Index)
		s.out.Println(lapLine(lap) + " [auto]")
	}
	s.rearmAutoLap()
}

// rearmAutoLap sets the next auto-lap boundary to the first multiple of
// the interval past the current elapsed time.
func (s *session) rearmAutoLap() {
	if s.autoLap <= 0 {
		return
	}
	el := s.sw.Elapsed()
	s.nextAuto = (el/s.autoLap + 1) * s.autoLap
}
