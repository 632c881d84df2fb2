package main

import (
	"errors"
	"os"

	"github.com/offclock/offclock/cmd/offclock/cli"
	"github.com/offclock/offclock/internal/config"
	"github.com/offclock/offclock/internal/countdown"
	"github.com/offclock/offclock/internal/durationspec"
)

// Exit codes are distinct per failure class so scripts can tell a typo from
// a logout that could not be carried out.
const (
	exitOK          = 0
	exitFailure     = 1
	exitMalformed   = 2
	exitConfig      = 3
	exitTermination = 4
)

func main() {
	os.Exit(exitCode(cli.Execute()))
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var termErr *countdown.TerminationError
	switch {
	case errors.Is(err, durationspec.ErrMalformed):
		return exitMalformed
	case errors.Is(err, config.ErrNotFound),
		errors.Is(err, config.ErrRead),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, config.ErrWrite):
		return exitConfig
	case errors.As(err, &termErr):
		return exitTermination
	}
	return exitFailure
}
