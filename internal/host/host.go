// Package host hands a built view to its rendering context: registered as a
// widget with a scheduled refresh, or presented immediately as a preview.
package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmylchreest/msgwidget/internal/adapter/input"
	"github.com/jmylchreest/msgwidget/internal/adapter/output"
	"github.com/jmylchreest/msgwidget/internal/layout"
	"github.com/jmylchreest/msgwidget/internal/model"
	"github.com/jmylchreest/msgwidget/internal/store"
	"github.com/jmylchreest/msgwidget/internal/widget"
)

// DefaultRefresh is the delay before the host re-runs a widget.
const DefaultRefresh = 60 * time.Second

// Context describes where the view will be shown.
type Context struct {
	InWidget bool
	Family   model.Family
}

// DetectContext derives the rendering context from the reported family.
// Only the widget families run in widget context.
func DetectContext(family model.Family) Context {
	if family.IsWidget() {
		return Context{InWidget: true, Family: family}
	}
	return Context{InWidget: false, Family: model.FamilyNone}
}

// Host receives finished views.
type Host struct {
	out       io.Writer
	formatter output.Formatter
	state     *store.StateFile
	refresh   time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// Options configures a Host.
type Options struct {
	Out       io.Writer
	Formatter output.Formatter
	State     *store.StateFile // nil disables schedule persistence
	Refresh   time.Duration    // 0 means DefaultRefresh
	Now       func() time.Time
	Logger    *slog.Logger
}

// New creates a Host.
func New(opts Options) *Host {
	h := &Host{
		out:       opts.Out,
		formatter: opts.Formatter,
		state:     opts.State,
		refresh:   opts.Refresh,
		now:       opts.Now,
		logger:    opts.Logger,
	}
	if h.out == nil {
		h.out = io.Discard
	}
	if h.formatter == nil {
		h.formatter = output.NewTerminalFormatter(output.DefaultFormatterOptions())
	}
	if h.refresh <= 0 {
		h.refresh = DefaultRefresh
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	return h
}

// Handoff delivers v according to hc and returns the view as delivered.
func (h *Host) Handoff(hc Context, v model.View) (model.View, error) {
	if hc.InWidget {
		return h.SetWidget(v)
	}
	return v, h.Present(v)
}

// SetWidget registers v as the widget and schedules the next refresh.
func (h *Host) SetWidget(v model.View) (model.View, error) {
	now := h.now()
	v.RefreshAfter = now.Add(h.refresh)

	if err := h.formatter.Format(h.out, v); err != nil {
		return v, fmt.Errorf("failed to render widget: %w", err)
	}

	if h.state != nil {
		state := store.RefreshState{
			RenderID:     v.ID,
			Family:       v.Family,
			RenderedAt:   now,
			RefreshAfter: v.RefreshAfter,
		}
		if err := h.state.Save(state); err != nil {
			return v, fmt.Errorf("failed to save refresh schedule: %w", err)
		}
	}

	h.logger.Debug("widget set", "id", v.ID, "family", v.Family, "refresh_after", v.RefreshAfter)
	return v, nil
}

// Present shows v immediately at the preview frame.
func (h *Host) Present(v model.View) error {
	if err := h.formatter.Format(h.out, v); err != nil {
		return fmt.Errorf("failed to present view: %w", err)
	}
	h.logger.Debug("view presented", "id", v.ID, "frame", layout.PresentFamily)
	return nil
}

// Pipeline runs one fetch, build, and hand-off cycle.
type Pipeline struct {
	Source  input.Source
	Builder *widget.Builder
	Host    *Host
	Logger  *slog.Logger
}

// Run fetches the latest message, builds the view for family, and hands it
// off. Fetch failures render the placeholder; only rendering or schedule
// persistence can fail.
func (p *Pipeline) Run(ctx context.Context, family model.Family) (model.View, error) {
	hc := DetectContext(family)

	message := input.FetchLatestMessage(ctx, p.Source, p.Logger)

	v, err := p.Builder.Build(message, hc.Family)
	if err != nil {
		return v, fmt.Errorf("failed to build view: %w", err)
	}

	return p.Host.Handoff(hc, v)
}
