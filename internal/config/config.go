// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultTimeout     = 10 * time.Second
	DefaultRefresh     = 60 * time.Second
	DefaultPlaceholder = "Keine Nachrichten"
	DefaultScheme      = "system"
	DefaultFormat      = "terminal"
	DefaultSource      = "rest"
)

// Environment variables that override the backend credentials.
const (
	EnvURL    = "MSGWIDGET_URL"
	EnvAPIKey = "MSGWIDGET_API_KEY"
)

// Config represents the msgwidget configuration.
type Config struct {
	Backend   BackendConfig   `toml:"backend"`
	Widget    WidgetConfig    `toml:"widget"`
	Theme     ThemeConfig     `toml:"theme"`
	Output    OutputConfig    `toml:"output"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// BackendConfig describes the REST backend holding messages.
type BackendConfig struct {
	URL     string   `toml:"url"`     // Project base URL, e.g. https://xyz.supabase.co
	APIKey  string   `toml:"api_key"` // Anon key sent as apikey and bearer token
	Timeout Duration `toml:"timeout"` // Per-request timeout
	Source  string   `toml:"source"`  // rest, stdin
}

// WidgetConfig holds widget presentation settings.
type WidgetConfig struct {
	Placeholder string   `toml:"placeholder"` // Shown when no message is available
	Refresh     Duration `toml:"refresh"`     // Delay until the next forced refresh
	Family      string   `toml:"family"`      // Default family (empty = not a widget)
}

// ThemeConfig contains theme settings.
type ThemeConfig struct {
	ColorScheme string `toml:"color_scheme"` // "system", "light", or "dark"
}

// OutputConfig holds output defaults.
type OutputConfig struct {
	Format string `toml:"format"` // terminal, json, yaml, plain
}

// ClipboardConfig holds clipboard settings (watch mode only).
type ClipboardConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:     "",
			APIKey:  "",
			Timeout: Duration(DefaultTimeout),
			Source:  DefaultSource,
		},
		Widget: WidgetConfig{
			Placeholder: DefaultPlaceholder,
			Refresh:     Duration(DefaultRefresh),
			Family:      "",
		},
		Theme: ThemeConfig{
			ColorScheme: DefaultScheme,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		Clipboard: ClipboardConfig{
			Command: "", // Auto-detect
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "msgwidget", "config.toml")
}

// StatePath returns the path to the state directory.
// Uses XDG_STATE_HOME if set, otherwise ~/.local/state.
func StatePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "msgwidget")
}

// RefreshStatePath returns the path to the refresh schedule file.
func RefreshStatePath() string {
	return filepath.Join(StatePath(), "refresh.json")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
// Environment overrides are applied last.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides backend credentials from the environment.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvURL)); v != "" {
		c.Backend.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		c.Backend.APIKey = v
	}
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. An empty path means ".env" in the working directory; a
// missing default file is not an error.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	// The file may hold an API key
	return os.WriteFile(path, data, 0600)
}

// Endpoint returns the full messages URL for the configured backend.
func (c *Config) Endpoint() string {
	return strings.TrimRight(c.Backend.URL, "/") + MessagesPath
}

// MessagesPath is the REST query selecting the newest message text.
const MessagesPath = "/rest/v1/messages?select=text&order=updated_at.desc&limit=1"
