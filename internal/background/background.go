// Package background re-launches the timer as a detached process so the
// countdown survives the terminal that started it.
package background

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Executable resolves the binary to respawn. OFFCLOCK_EXECUTABLE overrides
// os.Executable for tests and wrappers. Test binaries are refused: they
// cannot parse the timer's arguments and would hang around as stuck
// processes.
func Executable() (string, error) {
	if exe := os.Getenv("OFFCLOCK_EXECUTABLE"); exe != "" {
		return exe, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("finding executable: %w", err)
	}
	if strings.HasSuffix(filepath.Base(exe), ".test") {
		return "", fmt.Errorf("refusing to detach from test binary %q; set OFFCLOCK_EXECUTABLE", exe)
	}
	return exe, nil
}
