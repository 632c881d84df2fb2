package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/offclock/offclock/internal/durationspec"
	"github.com/offclock/offclock/internal/history"
	"github.com/offclock/offclock/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent timer runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.Open(historyPath())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ui.Infof("No timer runs recorded yet")
		return nil
	}

	fmt.Printf("%-20s  %-8s  %-7s  %s\n", "STARTED", "TIMER", "ACTION", "OUTCOME")
	for _, e := range entries {
		outcome := e.Outcome
		if e.Detail != "" {
			outcome = ui.Red(outcome + " (" + e.Detail + ")")
		}
		fmt.Printf("%-20s  %-8s  %-7s  %s\n",
			e.StartedAt.Local().Format(time.DateTime),
			durationspec.String(e.Duration),
			e.Action,
			outcome)
	}
	return nil
}
