package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/jmylchreest/msgwidget/internal/model"
)

// JSONFormatter formats views as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes the view as a JSON object, one line unless an indent is set.
func (f *JSONFormatter) Format(w io.Writer, v model.View) error {
	encoder := json.NewEncoder(w)
	if f.opts.Indent > 0 {
		encoder.SetIndent("", strings.Repeat(" ", f.opts.Indent))
	}
	return encoder.Encode(v)
}
