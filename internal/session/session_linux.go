//go:build linux

package session

import (
	"fmt"
	"os"
)

func commandsFor(action Action) ([][]string, error) {
	switch action {
	case ActionLogout:
		return [][]string{
			{"loginctl", "terminate-user", fmt.Sprintf("%d", os.Getuid())},
		}, nil
	case ActionSleep:
		return [][]string{{"systemctl", "suspend"}}, nil
	}
	return nil, fmt.Errorf("unknown action %q", action)
}
