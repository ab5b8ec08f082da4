package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/msgwidget/internal/model"
	"github.com/jmylchreest/msgwidget/internal/theme"
)

// WaybarStatus represents the Waybar custom module JSON format.
type WaybarStatus struct {
	Text    string `json:"text"`
	Alt     string `json:"alt,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
	Class   string `json:"class,omitempty"`
}

// StatusFormatter writes a Waybar custom module status line.
type StatusFormatter struct {
	opts FormatterOptions
}

// NewStatusFormatter creates a new status formatter.
func NewStatusFormatter(opts FormatterOptions) *StatusFormatter {
	return &StatusFormatter{opts: opts}
}

// Format writes the status as a single JSON line.
func (f *StatusFormatter) Format(w io.Writer, v model.View) error {
	return json.NewEncoder(w).Encode(f.Status(v))
}

// Status builds the Waybar status for v.
func (f *StatusFormatter) Status(v model.View) WaybarStatus {
	class := theme.Light.Name
	if v.Background == theme.Dark.Background {
		class = theme.Dark.Name
	}

	alt := "message"
	if !v.HasMessage() {
		alt = "empty"
	}

	var content string
	if text := v.Primary(); text != nil {
		content = text.Content
	}

	tooltip := []string{content}
	if !v.RefreshAfter.IsZero() {
		tooltip = append(tooltip, "Next refresh "+
			humanize.RelTime(v.RefreshAfter, f.opts.now(), "ago", "from now"))
	}

	return WaybarStatus{
		Text:    truncate(singleLine(content), f.opts.StatusMaxLen),
		Alt:     alt,
		Tooltip: strings.Join(tooltip, "\n"),
		Class:   class,
	}
}
