package tui

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookPathFor(installed ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, i := range installed {
			if i == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestClipboardArgs(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		installed  []string
		want       []string
	}{
		{
			name:       "configured command wins",
			configured: "my-copy --primary",
			installed:  []string{"wl-copy"},
			want:       []string{"my-copy", "--primary"},
		},
		{
			name:      "wayland preferred",
			installed: []string{"xclip", "wl-copy"},
			want:      []string{"wl-copy"},
		},
		{
			name:      "xclip",
			installed: []string{"xclip", "xsel"},
			want:      []string{"xclip", "-selection", "clipboard"},
		},
		{
			name:      "xsel",
			installed: []string{"xsel"},
			want:      []string{"xsel", "--clipboard", "--input"},
		},
		{
			name:       "blank configured falls back",
			configured: "   ",
			installed:  []string{"xsel"},
			want:       []string{"xsel", "--clipboard", "--input"},
		},
		{
			name: "nothing installed",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clipboardArgs(tt.configured, lookPathFor(tt.installed...)))
		})
	}
}

func TestWriteClipboard(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out := filepath.Join(t.TempDir(), "clip")
	argv := []string{"sh", "-c", `cat > "$0"`, out}

	require.NoError(t, writeClipboard(context.Background(), argv, "Guten Morgen"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Guten Morgen", string(data))
}

func TestWriteClipboard_Errors(t *testing.T) {
	err := writeClipboard(context.Background(), nil, "x")
	assert.True(t, errors.Is(err, ErrNoClipboard))

	if _, lookErr := exec.LookPath("false"); lookErr == nil {
		err = writeClipboard(context.Background(), []string{"false"}, "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "false")
	}
}
