//go:build !darwin && !linux

package session

import "fmt"

func commandsFor(action Action) ([][]string, error) {
	return nil, fmt.Errorf("action %q is not supported on this platform", action)
}
