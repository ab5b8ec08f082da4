package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/msgwidget/internal/model"
)

// PlainFormatter writes the text followed by the layout decisions.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// Format writes the view as plain text.
func (f *PlainFormatter) Format(w io.Writer, v model.View) error {
	var sb strings.Builder

	text := v.Primary()
	if text != nil {
		sb.WriteString(text.Content + "\n")
	}
	sb.WriteString("---\n")
	sb.WriteString(fmt.Sprintf("family:     %s\n", v.Family))
	if text != nil {
		align := "leading"
		if text.Centered {
			align = "center"
		}
		sb.WriteString(fmt.Sprintf("font:       %dpt %s\n", text.FontSize, align))
		sb.WriteString(fmt.Sprintf("text:       %s\n", text.Color))
	}
	sb.WriteString(fmt.Sprintf("background: %s\n", v.Background))
	sb.WriteString(fmt.Sprintf("padding:    %d %d %d %d\n",
		v.Padding.Top, v.Padding.Leading, v.Padding.Bottom, v.Padding.Trailing))
	if !v.RefreshAfter.IsZero() {
		sb.WriteString(fmt.Sprintf("refresh:    %s\n",
			humanize.RelTime(v.RefreshAfter, f.opts.now(), "ago", "from now")))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
