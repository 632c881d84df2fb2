// Package cli implements the offclock command-line interface using Cobra.
// The root command is the timer itself; subcommands cover run history and
// version information.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/offclock/offclock/internal/background"
	"github.com/offclock/offclock/internal/config"
	"github.com/offclock/offclock/internal/countdown"
	"github.com/offclock/offclock/internal/durationspec"
	"github.com/offclock/offclock/internal/history"
	"github.com/offclock/offclock/internal/log"
	"github.com/offclock/offclock/internal/session"
	"github.com/offclock/offclock/internal/ui"
)

const debugRetentionDays = 7

var (
	verbose    bool
	jsonOut    bool
	configPath string
	loadConfig bool
	actionName string
	detach     bool
)

var rootCmd = &cobra.Command{
	Use:   "offclock [duration]",
	Short: "Log out or sleep the machine after a countdown",
	Long: `offclock parses a duration like "30s", "5m", "1h30m", or a bare number
of seconds, counts down, and then ends the current session.

The countdown can be aborted with Ctrl+C at any point before it fires.
Once it fires, the action is carried out exactly once and never rolled back.`,
	Example: `  offclock 30s              # log out in 30 seconds
  offclock 1h30m            # log out in 90 minutes
  offclock 3600             # bare numbers are seconds
  offclock -a sleep 5m      # sleep instead of logging out
  offclock -c cfg.yaml 5m   # save the duration, then count down
  offclock -l -c cfg.yaml   # reuse the saved duration`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debugDir := filepath.Join(config.Dir(), "debug")
		if err := log.Init(log.Options{
			Verbose:       verbose,
			JSONFormat:    jsonOut,
			DebugDir:      debugDir,
			RetentionDays: debugRetentionDays,
		}); err != nil {
			cmd.PrintErrf("Warning: failed to initialize debug logging: %v\n", err)
		}
		return nil
	},
	RunE: runTimer,
}

// Execute runs the root command.
func Execute() error {
	defer log.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "log in JSON format")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file to save to, or load from with --load")
	rootCmd.Flags().BoolVarP(&loadConfig, "load", "l", false, "load the duration from the config file")
	rootCmd.Flags().StringVarP(&actionName, "action", "a", "logout", "action when the timer fires (logout or sleep)")
	rootCmd.Flags().BoolVarP(&detach, "detach", "d", false, "run the countdown in a detached background process")
}

func runTimer(cmd *cobra.Command, args []string) error {
	action, err := session.ParseAction(actionName)
	if err != nil {
		return err
	}

	var duration time.Duration
	switch {
	case loadConfig:
		if configPath == "" {
			return fmt.Errorf("--config is required with --load")
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		duration = cfg.Duration
		// A saved action applies unless overridden on the command line.
		if cfg.Action != "" && !cmd.Flags().Changed("action") {
			action, err = session.ParseAction(cfg.Action)
			if err != nil {
				return fmt.Errorf("%w: %v", config.ErrInvalid, err)
			}
		}
		log.Debug("loaded config", "path", configPath, "duration", duration, "action", action)
	case len(args) == 1:
		duration, err = durationspec.Parse(args[0])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("a duration argument is required unless --load is given")
	}

	if configPath != "" && !loadConfig {
		cfg := config.File{Duration: duration, Action: string(action), CreatedAt: time.Now()}
		if err := config.Save(configPath, cfg); err != nil {
			return err
		}
		ui.Infof("Saved config to %s", configPath)
	}

	if detach {
		return spawnDetached(duration, action)
	}

	terminator, err := session.New(action)
	if err != nil {
		return err
	}
	return runCountdown(cmd.Context(), duration, terminator)
}

func runCountdown(parent context.Context, duration time.Duration, terminator *session.Terminator) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// SIGINT/SIGTERM is the last-chance abort before the irreversible
	// action; it feeds the controller as an explicit cancellation.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			log.Debug("interrupt received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	action := terminator.Action()
	ui.Infof("Auto-%s timer started: %s", action, durationspec.String(duration))
	ui.Warnf("once the timer fires, the %s is carried out immediately (Ctrl+C to abort before then)", action)

	var onTick func(time.Duration)
	if ui.IsTerminal() {
		onTick = func(remaining time.Duration) {
			fmt.Printf("\r\033[K%s in %s ", action, durationspec.String(remaining.Round(time.Second)))
		}
	}

	started := time.Now()
	controller := countdown.New(terminator, countdown.Options{OnTick: onTick})
	outcome, err := controller.Run(ctx, duration)
	if ui.IsTerminal() {
		fmt.Print("\r\033[K")
	}

	recordRun(started, duration, string(action), outcome, err)

	if err != nil {
		return err
	}
	if outcome == countdown.OutcomeCancelled {
		ui.Infof("Countdown cancelled, no %s", action)
		return nil
	}
	log.Info("timer fired", "action", action, "after", duration)
	return nil
}

// recordRun appends the finished countdown to the history store. Best
// effort: history must never change the outcome of a run.
func recordRun(started time.Time, duration time.Duration, action string, outcome countdown.Outcome, runErr error) {
	store, err := history.Open(historyPath())
	if err != nil {
		log.Warn("history unavailable", "error", err)
		return
	}
	defer store.Close()

	entry := history.Entry{
		StartedAt:  started,
		Duration:   duration,
		Action:     action,
		Outcome:    outcome.String(),
		FinishedAt: time.Now(),
	}
	if runErr != nil {
		entry.Detail = runErr.Error()
	}
	if _, err := store.Append(entry); err != nil {
		log.Warn("recording run failed", "error", err)
	}
}

func historyPath() string {
	return filepath.Join(config.Dir(), "history.db")
}

func spawnDetached(duration time.Duration, action session.Action) error {
	exe, err := background.Executable()
	if err != nil {
		return err
	}
	logPath := filepath.Join(config.Dir(), "offclock.log")
	if err := os.MkdirAll(config.Dir(), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", config.Dir(), err)
	}

	pid, err := background.Spawn(exe, detachedArgs(duration, action), logPath)
	if err != nil {
		return err
	}
	ui.Infof("Timer started in background (PID %d)", pid)
	log.Debug("spawned background timer", "pid", pid, "log", logPath)
	return nil
}

// detachedArgs rebuilds the child's command line from the resolved duration
// and action instead of filtering os.Args. Filtering cannot catch every
// spelling pflag accepts for the detach flag (grouped shorthands like -ld,
// --detach=true), and a surviving one would make the child respawn itself
// forever. The parent has already handled --config/--load, so neither is
// passed on.
func detachedArgs(duration time.Duration, action session.Action) []string {
	args := []string{
		strconv.FormatInt(int64(duration/time.Second), 10),
		"--action", string(action),
	}
	if verbose {
		args = append(args, "--verbose")
	}
	if jsonOut {
		args = append(args, "--json")
	}
	return args
}
