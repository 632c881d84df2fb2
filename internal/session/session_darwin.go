//go:build darwin

package session

import (
	"fmt"
	"os"
)

func commandsFor(action Action) ([][]string, error) {
	switch action {
	case ActionLogout:
		// The loginwindow event skips the confirmation dialog; booting
		// out the GUI session is the fallback when AppleScript is
		// unavailable.
		return [][]string{
			{"osascript", "-e", `tell app "loginwindow" to «event aevtrlgo»`},
			{"launchctl", "bootout", fmt.Sprintf("gui/%d", os.Getuid())},
		}, nil
	case ActionSleep:
		return [][]string{{"pmset", "sleepnow"}}, nil
	}
	return nil, fmt.Errorf("unknown action %q", action)
}
