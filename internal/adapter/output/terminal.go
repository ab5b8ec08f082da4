package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/msgwidget/internal/layout"
	"github.com/jmylchreest/msgwidget/internal/model"
)

// Points per terminal cell, used to scale padding.
const (
	pointsPerColumn = 4
	pointsPerRow    = 8
	boldFontSize    = 20
)

// TerminalFormatter draws the view as a colored box with lipgloss.
type TerminalFormatter struct {
	opts FormatterOptions
}

// NewTerminalFormatter creates a new terminal formatter.
func NewTerminalFormatter(opts FormatterOptions) *TerminalFormatter {
	return &TerminalFormatter{opts: opts}
}

// Format renders the view using the color profile of w.
func (f *TerminalFormatter) Format(w io.Writer, v model.View) error {
	r := lipgloss.NewRenderer(w)
	_, err := fmt.Fprintln(w, Render(r, v, f.frame(v)))
	return err
}

func (f *TerminalFormatter) frame(v model.View) layout.Frame {
	if f.opts.Frame != "" {
		return layout.FrameFor(f.opts.Frame)
	}
	return layout.FrameFor(v.Family)
}

// Render draws v inside frame using renderer r.
func Render(r *lipgloss.Renderer, v model.View, frame layout.Frame) string {
	style := r.NewStyle().
		Background(lipgloss.Color(string(v.Background))).
		Width(frame.Width).
		Height(frame.Height).
		Padding(
			v.Padding.Top/pointsPerRow,
			v.Padding.Trailing/pointsPerColumn,
			v.Padding.Bottom/pointsPerRow,
			v.Padding.Leading/pointsPerColumn,
		)

	text := v.Primary()
	if text == nil {
		return style.Render("")
	}

	style = style.Foreground(lipgloss.Color(string(text.Color))).
		Bold(text.FontSize >= boldFontSize)
	if text.Centered {
		style = style.Align(lipgloss.Center)
	} else {
		style = style.Align(lipgloss.Left)
	}

	return style.Render(text.Content)
}
