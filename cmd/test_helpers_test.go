package cmd

import (
	"bytes"
	"flag"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/lapwatch/lapwatch/pkg/stopwatch"
	"github.com/urfave/cli"
)

// captureOutput captures stdout and stderr during function execution.
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	outC := make(chan string)
	errC := make(chan string)
	go func() {
		var b bytes.Buffer
		io.Copy(&b, rOut)
		outC <- b.String()
	}()
	go func() {
		var b bytes.Buffer
		io.Copy(&b, rErr)
		errC <- b.String()
	}()

	f()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	stdout = <-outC
	stderr = <-errC
	rOut.Close()
	rErr.Close()
	return stdout, stderr
}

// assertContains checks if output contains the expected substring.
func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}

// assertNotContains checks if output does NOT contain the specified substring.
func assertNotContains(t *testing.T, output, notExpected string) {
	t.Helper()
	if strings.Contains(output, notExpected) {
		t.Errorf("expected output to NOT contain %q, got:\n%s", notExpected, output)
	}
}

// newContext creates a CLI context for testing commands.
func newContext(app *cli.App, args []string, name string) *cli.Context {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	_ = set.Parse(args)
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cli.Command{Name: name}
	return ctx
}

func newTestApp() *cli.App {
	app := cli.NewApp()
	app.Name = "lapwatch"
	app.HelpName = "lapwatch"
	return app
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// fakeDisplay records everything a session draws.
type fakeDisplay struct {
	renders []stopwatch.Snapshot
	lines   []string
	closed  bool
}

func (f *fakeDisplay) Render(snap stopwatch.Snapshot) { f.renders = append(f.renders, snap) }
func (f *fakeDisplay) Println(line string)            { f.lines = append(f.lines, line) }
func (f *fakeDisplay) Close()                         { f.closed = true }

func (f *fakeDisplay) last() stopwatch.Snapshot {
	if len(f.renders) == 0 {
		return stopwatch.Snapshot{}
	}
	return f.renders[len(f.renders)-1]
}
