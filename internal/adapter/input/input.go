// Package input provides message sources for the widget.
package input

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/jmylchreest/msgwidget/internal/config"
	"github.com/jmylchreest/msgwidget/internal/model"
)

// Source fetches the latest message.
type Source interface {
	// Name returns the source identifier (e.g., "rest", "stdin").
	Name() string

	// Latest fetches the newest message body.
	Latest(ctx context.Context) (string, error)
}

// NewSource creates a Source by name. An empty name uses the configured
// source, falling back to "rest".
func NewSource(name string, cfg *config.Config) (Source, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if name == "" {
		name = cfg.Backend.Source
	}

	switch strings.ToLower(name) {
	case "", "rest":
		return NewRESTSource(cfg.Backend.URL, cfg.Backend.APIKey, cfg.Backend.Timeout.Duration()), nil
	case "stdin":
		return NewStdinSource(), nil
	default:
		return nil, &AdapterError{
			Source:  name,
			Message: "unknown source",
		}
	}
}

// FetchLatestMessage returns the newest message from src, or nil when none
// could be obtained. It never fails: every error is logged at debug level
// and mapped to nil.
func FetchLatestMessage(ctx context.Context, src Source, logger *slog.Logger) *string {
	if logger == nil {
		logger = slog.Default()
	}
	if src == nil {
		logger.Debug("no message source configured")
		return nil
	}

	text, err := src.Latest(ctx)
	if err != nil {
		logger.Debug("failed to fetch latest message", "source", src.Name(), "error", err)
		return nil
	}

	if text == "" {
		logger.Debug("latest message is empty", "source", src.Name())
		return nil
	}

	logger.Debug("fetched latest message", "source", src.Name(), "length", len(text))
	return &text
}

// decodeLatest decodes a JSON array of message rows and returns the text of
// the first row. The body must hold exactly one JSON value.
func decodeLatest(source string, r io.Reader) (string, error) {
	dec := json.NewDecoder(r)

	var rows []model.Message
	if err := dec.Decode(&rows); err != nil {
		return "", &AdapterError{
			Source:  source,
			Message: "failed to parse response",
			Err:     err,
		}
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON array")
		}
		return "", &AdapterError{
			Source:  source,
			Message: "failed to parse response",
			Err:     err,
		}
	}

	if len(rows) == 0 {
		return "", &AdapterError{
			Source:  source,
			Message: "empty response",
			Err:     model.ErrNoMessage,
		}
	}

	text, err := rows[0].Body()
	if err != nil {
		return "", &AdapterError{
			Source:  source,
			Message: "first row has no text",
			Err:     err,
		}
	}
	return text, nil
}

// AdapterError represents a source-related error.
type AdapterError struct {
	Source  string
	Message string
	Err     error
}

func (e *AdapterError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}
