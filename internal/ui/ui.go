// Package ui formats user-facing terminal output, with ANSI color gated on
// TTY detection and NO_COLOR.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var writer io.Writer = os.Stderr

// SetWriter overrides the stderr output writer (for testing).
func SetWriter(w io.Writer) {
	writer = w
}

var stdoutTTY = isTerminal(os.Stdout)
var colorEnabled = detectColor()

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return stdoutTTY
}

// IsTerminal reports whether stdout is a terminal. Used to decide whether a
// live countdown line should be drawn.
func IsTerminal() bool { return stdoutTTY }

// SetColorEnabled overrides color detection (for testing).
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func ansi(code, s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// Bold returns s wrapped in bold ANSI codes.
func Bold(s string) string { return ansi("1", s) }

// Dim returns s wrapped in dim ANSI codes.
func Dim(s string) string { return ansi("2", s) }

// Yellow returns s wrapped in yellow ANSI codes.
func Yellow(s string) string { return ansi("33", s) }

// Red returns s wrapped in red ANSI codes.
func Red(s string) string { return ansi("31", s) }

// Warnf prints a formatted user-facing warning to stderr.
func Warnf(format string, args ...any) {
	fmt.Fprintf(writer, "%s %s\n", ansi("33", "Warning:"), fmt.Sprintf(format, args...))
}

// Errorf prints a formatted user-facing error to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(writer, "%s %s\n", ansi("31", "Error:"), fmt.Sprintf(format, args...))
}

// Infof prints a formatted user-facing message to stderr with no prefix.
func Infof(format string, args ...any) {
	fmt.Fprintf(writer, format+"\n", args...)
}
