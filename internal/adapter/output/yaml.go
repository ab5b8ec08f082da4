package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/msgwidget/internal/model"
)

// YAMLFormatter formats views as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Format writes the view as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, v model.View) error {
	encoder := yaml.NewEncoder(w)
	if f.opts.Indent > 0 {
		encoder.SetIndent(f.opts.Indent)
	}
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
