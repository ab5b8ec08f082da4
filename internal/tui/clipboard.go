package tui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrNoClipboard is returned when no clipboard tool can be found.
var ErrNoClipboard = errors.New("no clipboard command available")

const clipboardTimeout = 5 * time.Second

// clipboardTools are tried in order when no command is configured:
// Wayland first, then the X11 tools.
var clipboardTools = [][]string{
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
}

// clipboardArgs resolves the copy command line. A configured command wins;
// otherwise the first installed tool is used. Returns nil when none exists.
func clipboardArgs(configured string, lookPath func(string) (string, error)) []string {
	if fields := strings.Fields(configured); len(fields) > 0 {
		return fields
	}
	for _, argv := range clipboardTools {
		if _, err := lookPath(argv[0]); err == nil {
			return argv
		}
	}
	return nil
}

// writeClipboard pipes message into the clipboard command argv.
func writeClipboard(ctx context.Context, argv []string, message string) error {
	if len(argv) == 0 {
		return ErrNoClipboard
	}

	ctx, cancel := context.WithTimeout(ctx, clipboardTimeout)
	defer cancel()

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Stdin = strings.NewReader(message)
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}
