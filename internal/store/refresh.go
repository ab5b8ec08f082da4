// Package store persists the widget refresh schedule between invocations.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/jmylchreest/msgwidget/internal/model"
)

// RefreshState is the schedule recorded when a widget is handed off.
type RefreshState struct {
	RenderID     string       `json:"render_id"`
	Family       model.Family `json:"family"`
	RenderedAt   time.Time    `json:"rendered_at"`
	RefreshAfter time.Time    `json:"refresh_after"`
}

// Due reports whether the next refresh time has been reached.
func (s *RefreshState) Due(now time.Time) bool {
	return s == nil || !now.Before(s.RefreshAfter)
}

// Remaining returns the time left until the next refresh, never negative.
func (s *RefreshState) Remaining(now time.Time) time.Duration {
	if s.Due(now) {
		return 0
	}
	return s.RefreshAfter.Sub(now)
}

// ErrInvalidState is returned when a state has no refresh time.
var ErrInvalidState = errors.New("refresh state has no refresh time")

// StateFile manages persistence of the refresh state.
type StateFile struct {
	path string
}

// NewStateFile creates a new StateFile.
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path}
}

// Path returns the file location.
func (f *StateFile) Path() string {
	return f.path
}

// Load reads the refresh state. Returns nil, nil when no state exists yet.
func (f *StateFile) Load() (*RefreshState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No file yet
		}
		return nil, err
	}

	var state RefreshState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Save writes the refresh state, replacing any previous one.
func (f *StateFile) Save(state RefreshState) error {
	if state.RefreshAfter.IsZero() {
		return ErrInvalidState
	}

	// Ensure parent directory exists
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	// Write via rename so readers never see a partial file
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Clear removes the refresh state.
func (f *StateFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
