package cmd

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/lapwatch/lapwatch/common"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// keyAction maps a single key press to an action.
func keyAction(b byte) (common.Action, bool) {
	switch b {
	case ' ':
		return common.ActionToggle, true
	case 'l', 'L':
		return common.ActionLap, true
	case 'r', 'R':
		return common.ActionReset, true
	case 'c', 'C':
		return common.ActionClear, true
	case 'q', 'Q', 0x03, 0x04: // ctrl-c, ctrl-d
		return common.ActionQuit, true
	}
	return "", false
}

// lineAction maps a line typed in line mode. An empty line toggles, a
// single character is treated as a key, and full action names are
// accepted too.
func lineAction(line string) (common.Action, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return common.ActionToggle, true
	}
	if a, ok := common.ParseAction(line); ok {
		return a, true
	}
	if strings.EqualFold(line, string(common.ActionQuit)) {
		return common.ActionQuit, true
	}
	if len(line) == 1 {
		return keyAction(line[0])
	}
	return "", false
}

// readKeys sends the actions read from r to out until r is exhausted, a
// quit is read, or done is closed. out is closed on return.
func readKeys(r io.Reader, raw bool, out chan<- common.Action, done <-chan struct{}) {
	defer close(out)
	send := func(a common.Action) bool {
		select {
		case out <- a:
			return a != common.ActionQuit
		case <-done:
			return false
		}
	}

	if raw {
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				if a, ok := keyAction(b); ok && !send(a) {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if a, ok := lineAction(sc.Text()); ok && !send(a) {
			return
		}
	}
}

// terminal describes how a run talks to the user's terminal.
type terminal struct {
	// Raw is set when single key presses are delivered without Enter.
	Raw bool
	Out io.Writer

	restore func()
}

// Restore puts the terminal back into the mode it was in before
// openTerminal. Safe to call more than once.
func (t *terminal) Restore() {
	if t.restore != nil {
		t.restore()
		t.restore = nil
	}
}

var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// openTerminal switches stdin into raw mode when it is a terminal and line
// mode was not requested. On failure the returned terminal is usable in
// line mode.
func openTerminal(in, out *os.File, lineMode bool) (*terminal, error) {
	t := &terminal{Out: out}
	if lineMode || !isTerminal(in.Fd()) {
		return t, nil
	}
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return t, err
	}
	t.Raw = true
	t.Out = crlfWriter{w: out}
	t.restore = func() { _ = term.Restore(fd, state) }
	return t, nil
}

// crlfWriter restores the carriage returns raw mode stops the terminal
// from adding.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
