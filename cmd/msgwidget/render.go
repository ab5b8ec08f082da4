package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/msgwidget/internal/adapter/input"
	"github.com/jmylchreest/msgwidget/internal/adapter/output"
	"github.com/jmylchreest/msgwidget/internal/config"
	"github.com/jmylchreest/msgwidget/internal/host"
	"github.com/jmylchreest/msgwidget/internal/layout"
	"github.com/jmylchreest/msgwidget/internal/model"
	"github.com/jmylchreest/msgwidget/internal/store"
	"github.com/jmylchreest/msgwidget/internal/theme"
	"github.com/jmylchreest/msgwidget/internal/widget"
)

var renderOpts struct {
	family string
	format string
	source string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Fetch the latest message and render the widget once",
	Long: `Fetch the latest message and render the widget once.

With --family small, medium, or large msgwidget runs as a widget: the view
is registered and the next refresh is scheduled (default 60s) in the
refresh state file. Without a family the view is presented immediately at
the medium frame.

A failed or empty fetch is never an error; the placeholder is shown.

Examples:
  # Preview in the terminal
  msgwidget render

  # Run as a small widget and emit JSON for a host process
  msgwidget render --family small --format json

  # Render a canned response
  echo '[{"text":"Hallo"}]' | msgwidget render --source stdin`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addRenderFlags(renderCmd)
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&renderOpts.family, "family", "",
		"Widget size family (small, medium, large; empty = not a widget)")
	cmd.Flags().StringVarP(&renderOpts.format, "format", "f", "",
		"Output format (terminal, json, yaml, plain, status)")
	cmd.Flags().StringVar(&renderOpts.source, "source", "",
		"Message source (rest, stdin; default from config)")
}

func runRender(cmd *cobra.Command, args []string) error {
	c := getConfig()

	familyName := renderOpts.family
	if familyName == "" {
		familyName = c.Widget.Family
	}
	formatName := renderOpts.format
	if formatName == "" {
		formatName = c.Output.Format
	}

	return render(cmd.Context(), cmd.OutOrStdout(), renderRequest{
		config: c,
		family: familyName,
		format: formatName,
		source: renderOpts.source,
	})
}

type renderRequest struct {
	config *config.Config
	family string
	format string
	source string
}

// render runs one fetch, build, and hand-off cycle.
func render(ctx context.Context, out io.Writer, req renderRequest) error {
	family, err := model.ParseFamily(req.family)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(req.format)
	if err != nil {
		return err
	}
	scheme, err := theme.ParseScheme(req.config.Theme.ColorScheme)
	if err != nil {
		return err
	}

	src, err := input.NewSource(req.source, req.config)
	if err != nil {
		return fmt.Errorf("failed to create source: %w", err)
	}

	opts := output.DefaultFormatterOptions()
	if !family.IsWidget() {
		opts.Frame = layout.PresentFamily
	}

	h := host.New(host.Options{
		Out:       out,
		Formatter: output.NewFormatter(format, opts),
		State:     store.NewStateFile(config.RefreshStatePath()),
		Refresh:   req.config.Widget.Refresh.Duration(),
		Logger:    logger,
	})

	p := &host.Pipeline{
		Source:  src,
		Builder: widget.NewBuilder(scheme, req.config.Widget.Placeholder),
		Host:    h,
		Logger:  logger,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	timeout := req.config.Backend.Timeout.Duration()
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err = p.Run(ctx, family)
	return err
}
