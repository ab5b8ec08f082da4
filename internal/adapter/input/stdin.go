package input

import (
	"context"
	"io"
	"os"
)

// StdinSource reads a messages response body from standard input.
// It accepts the same JSON array the REST endpoint returns.
type StdinSource struct {
	reader io.Reader
}

// NewStdinSource creates a new StdinSource reading from os.Stdin.
func NewStdinSource() *StdinSource {
	return &StdinSource{reader: os.Stdin}
}

// NewStdinSourceWithReader creates a new StdinSource with a custom reader.
func NewStdinSourceWithReader(r io.Reader) *StdinSource {
	return &StdinSource{reader: r}
}

// Name returns the source identifier.
func (s *StdinSource) Name() string {
	return "stdin"
}

// Latest decodes the first message row from the reader.
func (s *StdinSource) Latest(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	const maxSize = 10 * 1024 * 1024 // 10MB max
	return decodeLatest("stdin", io.LimitReader(s.reader, maxSize))
}
