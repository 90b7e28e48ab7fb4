package common

import "strings"

// Action is a single stopwatch command, whether typed on the keyboard or
// read from a replay script.
type Action string

const (
	ActionStart  Action = "start"
	ActionStop   Action = "stop"
	ActionToggle Action = "toggle"
	ActionLap    Action = "lap"
	ActionReset  Action = "reset"
	ActionClear  Action = "clear"
	ActionQuit   Action = "quit"
)

// ParseAction maps a case-insensitive name to an Action. Quit is not
// accepted since it has no meaning outside an interactive session.
func ParseAction(s string) (Action, bool) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionStart, ActionStop, ActionToggle, ActionLap, ActionReset, ActionClear:
		return a, true
	}
	return "", false
}
