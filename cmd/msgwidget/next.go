package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/msgwidget/internal/config"
	"github.com/jmylchreest/msgwidget/internal/store"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show when the widget is next due to refresh",
	Long: `Show the refresh time recorded by the last widget render and whether it
has passed.

Examples:
  # Re-render only when due
  msgwidget next | grep -q due && msgwidget render --family small`,
	RunE: runNext,
}

func init() {
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	state, err := store.NewStateFile(config.RefreshStatePath()).Load()
	if err != nil {
		return fmt.Errorf("failed to load refresh state: %w", err)
	}

	out := cmd.OutOrStdout()
	if state == nil {
		_, err := fmt.Fprintln(out, "no refresh scheduled")
		return err
	}

	now := time.Now()
	when := humanize.RelTime(state.RefreshAfter, now, "ago", "from now")
	status := "pending"
	if state.Due(now) {
		status = "due"
	}

	_, err = fmt.Fprintf(out, "%s\t%s (%s)\t%s\n",
		state.RefreshAfter.Local().Format(time.RFC3339), when, state.Family, status)
	return err
}
