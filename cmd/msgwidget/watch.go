package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/msgwidget/internal/model"
	"github.com/jmylchreest/msgwidget/internal/tui"
)

var watchOpts struct {
	family string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live widget preview",
	Long: `Launch an interactive preview that re-fetches the latest message on the
refresh interval.

The config file is watched; edits take effect immediately.

Key bindings:
  r           Refresh now
  s, tab      Cycle size family
  c           Copy message to clipboard
  ?           Show help
  q           Quit`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchOpts.family, "family", "medium",
		"Initial size family (small, medium, large, none)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	family, err := model.ParseFamily(watchOpts.family)
	if err != nil {
		return err
	}

	c := getConfig()
	// The terminal owns stdin while the preview runs
	if strings.EqualFold(c.Backend.Source, "stdin") {
		return fmt.Errorf("watch requires the rest source")
	}

	return tui.Run(tui.RunOptions{
		Config:     c,
		SourceName: "rest",
		Family:     family,
		ConfigPath: configPath(),
		Logger:     logger,
	})
}
