// Package output provides renderers for widget views.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jmylchreest/msgwidget/internal/model"
)

// Formatter renders a view.
type Formatter interface {
	// Format writes the rendered view to the writer.
	Format(w io.Writer, v model.View) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatTerminal FormatType = "terminal"
	FormatJSON     FormatType = "json"
	FormatYAML     FormatType = "yaml"
	FormatPlain    FormatType = "plain"
	FormatStatus   FormatType = "status"
)

// ParseFormat parses a format name. An empty string means FormatTerminal.
func ParseFormat(s string) (FormatType, error) {
	switch f := FormatType(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTerminal, nil
	case FormatTerminal, FormatJSON, FormatYAML, FormatPlain, FormatStatus:
		return f, nil
	default:
		return FormatTerminal, fmt.Errorf("unknown output format %q", s)
	}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatPlain:
		return NewPlainFormatter(opts)
	case FormatStatus:
		return NewStatusFormatter(opts)
	case FormatTerminal:
		fallthrough
	default:
		return NewTerminalFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Now          func() time.Time // Clock for relative times (default time.Now)
	Frame        model.Family     // Presentation size override for terminal output
	StatusMaxLen int              // Maximum status text length (0 = unlimited)
	Indent       int              // JSON/YAML indent width (0 = compact JSON, YAML default)
}

// DefaultFormatterOptions returns sensible defaults.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		Now:          time.Now,
		StatusMaxLen: 40,
		Indent:       2,
	}
}

func (o FormatterOptions) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// truncate shortens s to maxLen runes, appending "..." when cut.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 || len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// singleLine collapses whitespace and newlines to single spaces.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
