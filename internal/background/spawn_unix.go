//go:build unix

package background

import (
	"fmt"
	"os"
	"syscall"
)

// Spawn starts exe with args in its own session, detached from the
// controlling terminal. Stdin comes from /dev/null; stdout and stderr are
// appended to logPath so a failed fire can still be diagnosed. Returns the
// child PID.
func Spawn(exe string, args []string, logPath string) (int, error) {
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", os.DevNull, err)
	}
	defer devNull.Close()

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logFile = devNull // non-fatal; discard output rather than passing nil fds
	}

	attr := &os.ProcAttr{
		Dir: "/",
		Env: os.Environ(),
		Files: []*os.File{
			devNull,
			logFile, // stdout
			logFile, // stderr
		},
		Sys: &syscall.SysProcAttr{
			Setsid: true,
		},
	}

	proc, err := os.StartProcess(exe, append([]string{exe}, args...), attr)
	if logFile != devNull {
		logFile.Close() // child inherited the fd; parent can close its copy
	}
	if err != nil {
		return 0, fmt.Errorf("starting background timer: %w", err)
	}
	pid := proc.Pid
	_ = proc.Release()
	return pid, nil
}
