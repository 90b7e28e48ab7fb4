package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lapwatch/lapwatch/cmd/common"
	"github.com/lapwatch/lapwatch/pkg/stopwatch"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

var (
	replayJSON    bool
	replayVerbose bool

	replayFlags = []cli.Flag{
		cli.BoolFlag{
			Name:        "json, j",
			Usage:       "print the result as JSON (default: false)",
			Destination: &replayJSON,
		},
		cli.BoolFlag{
			Name:        "verbose, V",
			Usage:       "print every action as it is applied (default: false)",
			Destination: &replayVerbose,
		},
	}

	// replayFs is swapped for an in-memory fs in tests.
	replayFs = afero.NewOsFs()
)

var errNoScript = errors.New("no script file given")

// replayEpoch is the simulated wall time of offset zero. Only differences
// are ever reported, so the value itself does not matter.
var replayEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func replay(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	path := ctx.Args().First()
	if path == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoScript)
	}
	sc, err := ParseScript(replayFs, path)
	if err != nil {
		common.PrintRuntimeErr(ctx, "replay", "parse_script", err)
		return nil
	}
	snap := runReplay(os.Stdout, sc, replayVerbose)
	if replayJSON {
		if err := writeReport(os.Stdout, snap); err != nil {
			common.PrintRuntimeErr(ctx, "replay", "encode_json", err)
		}
		return nil
	}
	fmt.Print(renderSummary(snap))
	return nil
}

// runReplay applies every step of sc to a fresh stopwatch on a simulated
// clock and returns the final state. With verbose set, each step is
// echoed to w.
func runReplay(w io.Writer, sc *Script, verbose bool) stopwatch.Snapshot {
	clock := stopwatch.NewManualClock(replayEpoch)
	sw := stopwatch.New(stopwatch.WithClock(clock))

	var at time.Duration
	for _, step := range sc.Steps {
		clock.Advance(step.Offset - at)
		at = step.Offset
		laps := sw.LapCount()
		changed := applyAction(sw, step.Action)
		if !verbose {
			continue
		}
		note := ""
		switch {
		case !changed:
			note = "(ignored)"
		case sw.LapCount() > laps:
			lap, _ := sw.LastLap()
			note = lapLine(lap)
		}
		fmt.Fprintf(w, "%s  %-6s  %s  %s\n",
			stopwatch.Format(step.Offset), step.Action, stopwatch.Format(sw.Elapsed()), note)
	}
	return sw.Snapshot()
}

type lapReport struct {
	Index        int    `json:"index"`
	SplitMs      int64  `json:"split_ms"`
	CumulativeMs int64  `json:"cumulative_ms"`
	Split        string `json:"split"`
	Cumulative   string `json:"cumulative"`
	Badge        string `json:"badge,omitempty"`
}

type statsReport struct {
	Count     int   `json:"count"`
	FastestMs int64 `json:"fastest_ms"`
	SlowestMs int64 `json:"slowest_ms"`
	AverageMs int64 `json:"average_ms"`
}

type replayReport struct {
	Running   bool         `json:"running"`
	ElapsedMs int64        `json:"elapsed_ms"`
	Elapsed   string       `json:"elapsed"`
	Laps      []lapReport  `json:"laps"`
	Stats     *statsReport `json:"stats"`
}

func newReport(snap stopwatch.Snapshot) replayReport {
	r := replayReport{
		Running:   snap.Running,
		ElapsedMs: snap.Elapsed.Milliseconds(),
		Elapsed:   stopwatch.Format(snap.Elapsed),
		Laps:      make([]lapReport, 0, len(snap.Laps)),
	}
	for _, lap := range snap.Laps {
		r.Laps = append(r.Laps, lapReport{
			Index:        lap.Index,
			SplitMs:      lap.Split.Milliseconds(),
			CumulativeMs: lap.Cumulative.Milliseconds(),
			Split:        stopwatch.Format(lap.Split),
			Cumulative:   stopwatch.Format(lap.Cumulative),
			Badge:        lapBadge(lap, snap.Stats),
		})
	}
	if snap.HasStats {
		r.Stats = &statsReport{
			Count:     snap.Stats.Count,
			FastestMs: snap.Stats.Fastest.Milliseconds(),
			SlowestMs: snap.Stats.Slowest.Milliseconds(),
			AverageMs: snap.Stats.Average.Milliseconds(),
		}
	}
	return r
}

func writeReport(w io.Writer, snap stopwatch.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newReport(snap))
}
