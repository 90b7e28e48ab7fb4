// Package stopwatch implements an elapsed-time counter with a lap ledger.
//
// A Stopwatch has two states, stopped (the initial state) and running.
// Elapsed time accumulates only while running and survives stop/start
// cycles until Reset is called. Laps are recorded against the elapsed
// time and carry both the split since the previous lap and the cumulative
// elapsed time at the moment of recording.
//
// The package holds no goroutines and performs no locking. A Stopwatch is
// owned by a single caller; presentation code polls it (see Snapshot) on
// whatever cadence it likes.
package stopwatch
