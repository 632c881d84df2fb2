// Package session provides the OS-backed terminators invoked when the
// countdown fires.
package session

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/offclock/offclock/internal/log"
)

// Action selects what happens when the timer fires.
type Action string

const (
	ActionLogout Action = "logout"
	ActionSleep  Action = "sleep"
)

// ParseAction validates a user-supplied action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(s)); a {
	case ActionLogout, ActionSleep:
		return a, nil
	}
	return "", fmt.Errorf("unknown action %q (want logout or sleep)", s)
}

// Terminator performs a session action by running OS commands. Platforms may
// define several candidate commands per action; they are tried in order and
// the first success wins, matching how a forced logout degrades from the
// polite mechanism to the blunt one.
type Terminator struct {
	action   Action
	commands [][]string
	run      func(argv []string) error
}

// New returns a terminator for action, or an error when the action is not
// supported on this platform.
func New(action Action) (*Terminator, error) {
	commands, err := commandsFor(action)
	if err != nil {
		return nil, err
	}
	return &Terminator{action: action, commands: commands, run: runCommand}, nil
}

// Action reports which session action this terminator performs.
func (t *Terminator) Action() Action { return t.action }

// TerminateSession tries each candidate command in order, returning nil on
// the first success and the last failure if none succeed.
func (t *Terminator) TerminateSession() error {
	var lastErr error
	for _, argv := range t.commands {
		if err := t.run(argv); err != nil {
			log.Debug("session command failed", "cmd", argv[0], "error", err)
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

func runCommand(argv []string) error {
	out, err := exec.Command(argv[0], argv[1:]...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", argv[0], err, msg)
		}
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}
