//go:build windows

package background

import "errors"

// Spawn is not supported on Windows.
func Spawn(exe string, args []string, logPath string) (int, error) {
	return 0, errors.New("background mode is not supported on Windows")
}
