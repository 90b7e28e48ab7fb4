package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lapwatch/lapwatch/cmd/common"
	lwcommon "github.com/lapwatch/lapwatch/common"
	"github.com/lapwatch/lapwatch/internal/refresh"
	"github.com/lapwatch/lapwatch/pkg/stopwatch"
	"github.com/urfave/cli"
)

var (
	refreshEvery time.Duration
	autoLapEvery time.Duration
	lineMode     bool

	runFlags = []cli.Flag{
		cli.DurationFlag{
			Name:        "refresh, i",
			Usage:       "display refresh interval (default: 10ms or $" + lwcommon.RefreshEnv + ")",
			Destination: &refreshEvery,
		},
		cli.DurationFlag{
			Name:        "auto-lap, a",
			Usage:       "record a lap whenever elapsed time crosses a multiple of this interval (default: off)",
			Destination: &autoLapEvery,
		},
		cli.BoolFlag{
			Name:        "no-raw",
			Usage:       "read one key per line, each followed by Enter (default: false)",
			Destination: &lineMode,
		},
	}
)

var errNegativeAutoLap = errors.New("auto-lap interval must not be negative")

const (
	rawBanner  = "lapwatch: [space] start/pause  [l] lap  [r] reset  [c] clear laps  [q] quit\n\n"
	lineBanner = "lapwatch: type a key and press Enter ([Enter] alone starts/pauses), or an action name\n\n"
)

func run(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if autoLapEvery < 0 {
		return common.PrintErrWithCmdHelp(ctx, errNegativeAutoLap)
	}
	l := newLogger()
	defer l.Close()

	interval := refreshEvery
	if interval <= 0 {
		interval = refreshFromEnv(l)
	}

	tm, err := openTerminal(os.Stdin, os.Stdout, lineMode)
	if err != nil {
		common.PrintRuntimeErr(ctx, "run", "raw_mode", err)
	}
	defer tm.Restore()

	banner := lineBanner
	if tm.Raw {
		banner = rawBanner
	}
	fmt.Fprint(tm.Out, banner)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()
	runCtx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	sw := stopwatch.New()
	disp := newBarDisplay(tm.Out, interval)
	s := newSession(sw, refresh.New(interval), disp, l, autoLapEvery)
	l.Info("session started: refresh=%s auto-lap=%s raw=%t", interval, autoLapEvery, tm.Raw)

	actions := make(chan lwcommon.Action)
	go readKeys(os.Stdin, tm.Raw, actions, runCtx.Done())
	s.loop(runCtx, actions)
	cancel()

	sw.Stop()
	disp.Close()
	tm.Restore()
	snap := sw.Snapshot()
	l.Info("session ended: elapsed=%s laps=%d", stopwatch.Format(snap.Elapsed), len(snap.Laps))
	fmt.Print("\n" + renderSummary(snap))
	return nil
}
