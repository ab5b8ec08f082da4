// Package model defines the core data structures for msgwidget.
package model

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Family is the widget size category reported by the host.
type Family string

const (
	FamilySmall  Family = "small"
	FamilyMedium Family = "medium"
	FamilyLarge  Family = "large"
	// FamilyNone means the view is not being rendered as a widget.
	FamilyNone Family = "none"
)

// Families lists all size categories, widget families first.
var Families = []Family{FamilySmall, FamilyMedium, FamilyLarge, FamilyNone}

// ErrUnknownFamily is returned by ParseFamily for unrecognised names.
var ErrUnknownFamily = errors.New("unknown widget family")

// ParseFamily parses a family name. An empty string means FamilyNone.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return FamilySmall, nil
	case "medium":
		return FamilyMedium, nil
	case "large":
		return FamilyLarge, nil
	case "", "none":
		return FamilyNone, nil
	default:
		return FamilyNone, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
	}
}

// IsWidget reports whether f is one of the widget families.
func (f Family) IsWidget() bool {
	return f == FamilySmall || f == FamilyMedium || f == FamilyLarge
}

// Color is a hex color code such as "#1A1A1A".
type Color string

// Padding holds edge insets in points.
type Padding struct {
	Top      int `json:"top" yaml:"top"`
	Leading  int `json:"leading" yaml:"leading"`
	Bottom   int `json:"bottom" yaml:"bottom"`
	Trailing int `json:"trailing" yaml:"trailing"`
}

// Uniform returns a Padding with n on every edge.
func Uniform(n int) Padding {
	return Padding{Top: n, Leading: n, Bottom: n, Trailing: n}
}

// Text is a single text element of a view.
type Text struct {
	Content  string `json:"content" yaml:"content"`
	FontSize int    `json:"font_size" yaml:"font_size"`
	Color    Color  `json:"color" yaml:"color"`
	Centered bool   `json:"centered" yaml:"centered"`

	// LineLimit of 0 means unlimited wrapping.
	LineLimit int `json:"line_limit" yaml:"line_limit"`
	// MinimumScaleFactor of 0 means the text never shrinks.
	MinimumScaleFactor float64 `json:"minimum_scale_factor,omitempty" yaml:"minimum_scale_factor,omitempty"`

	Placeholder bool `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// View is the constructed widget handed to a rendering host.
type View struct {
	ID           string    `json:"id,omitempty" yaml:"id,omitempty"`
	Family       Family    `json:"family" yaml:"family"`
	Background   Color     `json:"background" yaml:"background"`
	Padding      Padding   `json:"padding" yaml:"padding"`
	Texts        []Text    `json:"texts" yaml:"texts"`
	RefreshAfter time.Time `json:"refresh_after,omitzero" yaml:"refresh_after,omitempty"`
}

// Primary returns the first text element, or nil for an empty view.
func (v *View) Primary() *Text {
	if len(v.Texts) == 0 {
		return nil
	}
	return &v.Texts[0]
}

// HasMessage reports whether the view shows a message rather than the placeholder.
func (v *View) HasMessage() bool {
	t := v.Primary()
	return t != nil && !t.Placeholder
}

// NewID generates a ULID for a view or render.
func NewID(now time.Time) (string, error) {
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to generate ULID: %w", err)
	}
	return id.String(), nil
}

// Message is a row returned by the messages endpoint.
type Message struct {
	Text *string `json:"text"`
}

// ErrNoMessage is returned when a response holds no usable message.
var ErrNoMessage = errors.New("no message in response")

// Body returns the message text, or ErrNoMessage when it is missing or empty.
func (m Message) Body() (string, error) {
	if m.Text == nil || *m.Text == "" {
		return "", ErrNoMessage
	}
	return *m.Text, nil
}
