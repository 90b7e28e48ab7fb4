package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lapwatch/lapwatch/common"
	"github.com/spf13/afero"
)

// Sentinel errors for replay script parsing.
var (
	// ErrScriptNotFound is returned when the script file does not exist.
	ErrScriptNotFound = errors.New("script file not found")
	// ErrScriptPermission is returned when the script file cannot be read due to permissions.
	ErrScriptPermission = errors.New("permission denied reading script file")
	// ErrScriptEmpty is returned when the script holds no actions.
	ErrScriptEmpty = errors.New("script file contains no actions")
	// ErrScriptSyntax is returned for a line that is not "<offset> <action>".
	ErrScriptSyntax = errors.New("invalid script line")
	// ErrScriptOrder is returned when an offset is earlier than the one before it.
	ErrScriptOrder = errors.New("script offsets must not decrease")
)

// ScriptError wraps a script error with its location.
type ScriptError struct {
	Path string
	// Line is 1-based; zero when the error concerns the whole file.
	Line int
	// Text is the offending line, if any.
	Text string
	Err  error
}

func (e *ScriptError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Text != "" {
		return fmt.Sprintf("%s %q: %s", e.Err.Error(), e.Text, loc)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), loc)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// ScriptStep is one timed action.
type ScriptStep struct {
	// Offset is measured from the start of the script.
	Offset time.Duration
	Action common.Action
	Line   int
}

// Script is a parsed replay script.
type Script struct {
	Steps []ScriptStep
	// SkippedLines counts comment lines.
	SkippedLines int
	TotalLines   int
}

// Duration is the offset of the last step.
func (s *Script) Duration() time.Duration {
	if len(s.Steps) == 0 {
		return 0
	}
	return s.Steps[len(s.Steps)-1].Offset
}

// ParseScript reads and parses the script at path from fs.
//
// Errors returned:
//   - ErrScriptNotFound: file does not exist
//   - ErrScriptPermission: cannot read file due to permissions
//   - ErrScriptEmpty: only comments and blank lines
//   - ErrScriptSyntax: malformed line, unknown action or bad offset
//   - ErrScriptOrder: an offset goes backwards
func ParseScript(fs afero.Fs, path string) (*Script, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, wrapScriptError(path, err)
	}
	return parseScript(path, string(data))
}

func parseScript(path, content string) (*Script, error) {
	lines := strings.Split(content, "\n")
	sc := &Script{TotalLines: len(lines)}

	var last time.Duration
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			sc.SkippedLines++
			continue
		}
		step, err := parseStep(trimmed)
		if err != nil {
			return nil, &ScriptError{Path: path, Line: i + 1, Text: trimmed, Err: err}
		}
		if step.Offset < last {
			return nil, &ScriptError{Path: path, Line: i + 1, Text: trimmed, Err: ErrScriptOrder}
		}
		last = step.Offset
		step.Line = i + 1
		sc.Steps = append(sc.Steps, step)
	}

	if len(sc.Steps) == 0 {
		return sc, &ScriptError{Path: path, Err: ErrScriptEmpty}
	}
	return sc, nil
}

func parseStep(line string) (ScriptStep, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return ScriptStep{}, ErrScriptSyntax
	}
	offset, err := parseInterval(fields[0])
	if err != nil || offset < 0 {
		return ScriptStep{}, ErrScriptSyntax
	}
	action, ok := common.ParseAction(fields[1])
	if !ok {
		return ScriptStep{}, ErrScriptSyntax
	}
	return ScriptStep{Offset: offset, Action: action}, nil
}

// wrapScriptError converts OS-level errors to script errors.
func wrapScriptError(path string, err error) error {
	if os.IsNotExist(err) {
		return &ScriptError{Path: path, Err: ErrScriptNotFound}
	}
	if os.IsPermission(err) {
		return &ScriptError{Path: path, Err: ErrScriptPermission}
	}
	return &ScriptError{Path: path, Err: err}
}
