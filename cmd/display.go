package cmd

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/lapwatch/lapwatch/cmd/common"
	"github.com/lapwatch/lapwatch/pkg/stopwatch"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// barDisplay draws the session as a single mpb bar. The decorators run on
// mpb's own goroutine, so they read a copy of the last rendered snapshot.
type barDisplay struct {
	p   *mpb.Progress
	bar *mpb.Bar

	mu   sync.Mutex
	view stopwatch.Snapshot
}

func newBarDisplay(w io.Writer, refreshRate time.Duration) *barDisplay {
	d := &barDisplay{}
	d.p = mpb.New(
		mpb.WithOutput(w),
		mpb.WithWidth(72),
		mpb.WithRefreshRate(refreshRate),
		mpb.WithAutoRefresh(),
	)
	d.bar = common.InitRing(d.p, d.elapsedText, d.statusText)
	return d
}

func (d *barDisplay) snapshot() stopwatch.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view
}

func (d *barDisplay) elapsedText(decor.Statistics) string {
	return stopwatch.Format(d.snapshot().Elapsed)
}

func (d *barDisplay) statusText(decor.Statistics) string {
	view := d.snapshot()
	return fmt.Sprintf("%-6s laps: %d", buttonLabel(view), len(view.Laps))
}

func (d *barDisplay) Render(snap stopwatch.Snapshot) {
	d.mu.Lock()
	d.view = snap
	d.mu.Unlock()
	d.bar.SetCurrent(ringPosition(snap.Elapsed))
}

func (d *barDisplay) Println(line string) {
	fmt.Fprintln(d.p, line)
}

// Close leaves the final frame on screen and waits for mpb to flush.
func (d *barDisplay) Close() {
	d.bar.Abort(false)
	d.p.Wait()
}

var _ display = (*barDisplay)(nil)
