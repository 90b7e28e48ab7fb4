package cmd

import "time"

const DEF_REFRESH = 10 * time.Millisecond

const DESCRIPTION = `
lapwatch is a small terminal stopwatch. It tracks elapsed time
across pauses, records lap splits, and reports the fastest,
slowest and average lap.
`

const (
	RunDescription = `The run command starts an interactive stopwatch in the
terminal. It is also what lapwatch does when no command
is given.

Keys:
        space   start / pause / resume
        l       record a lap (while running)
        r       reset (while stopped)
        c       clear laps
        q       quit

Example:
        lapwatch run --auto-lap 1m

`
	ReplayDescription = `The replay command plays back a script of timed actions
on a simulated clock and prints the resulting laps.

Each line holds an offset from the start of the script and
an action (start, stop, toggle, lap, reset, clear). Offsets
are milliseconds or Go durations. Lines starting with # are
ignored.

Example:
        lapwatch replay laps.txt

`
	FormatDescription = `The format command prints each millisecond count given
as HH:MM:SS.mmm.

Example:
        lapwatch format 3661005

`
)
