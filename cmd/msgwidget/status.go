package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/msgwidget/internal/adapter/output"
)

var statusOpts struct {
	family string
	source string
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Output Waybar-compatible JSON status",
	Long: `Output the latest message in Waybar's custom module JSON format.

This is designed to be used with Waybar's custom module:

  "custom/message": {
    "exec": "msgwidget status",
    "interval": 60,
    "return-type": "json",
    "on-click": "msgwidget watch"
  }

The output includes:
  - text: The message, on one line and truncated
  - alt: message or empty
  - tooltip: The full message and the next refresh time
  - class: dark or light, following the time of day`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusOpts.family, "family", "small",
		"Widget size family used for layout")
	statusCmd.Flags().StringVar(&statusOpts.source, "source", "",
		"Message source (rest, stdin; default from config)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	return render(cmd.Context(), cmd.OutOrStdout(), renderRequest{
		config: getConfig(),
		family: statusOpts.family,
		format: string(output.FormatStatus),
		source: statusOpts.source,
	})
}
