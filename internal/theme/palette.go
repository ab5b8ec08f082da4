package theme

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmylchreest/msgwidget/internal/model"
)

// Palette is the three-color set used by a view.
type Palette struct {
	Name        string
	Background  model.Color
	Text        model.Color
	Placeholder model.Color
}

// Built-in palettes.
var (
	Dark = Palette{
		Name:        "dark",
		Background:  "#1A1A1A",
		Text:        "#F0F0F0",
		Placeholder: "#999999",
	}
	Light = Palette{
		Name:        "light",
		Background:  "#FFFFFF",
		Text:        "#000000",
		Placeholder: "#888888",
	}
)

// Hours bounding the dark palette: [DarkFrom, 24) and [0, DarkUntil).
const (
	DarkFrom  = 21
	DarkUntil = 6
)

// IsDark reports whether hour falls in the dark range.
func IsDark(hour int) bool {
	hour = ((hour % 24) + 24) % 24
	return hour >= DarkFrom || hour < DarkUntil
}

// ForHour returns the palette for an hour of day (0-23).
func ForHour(hour int) Palette {
	if IsDark(hour) {
		return Dark
	}
	return Light
}

// ForTime returns the palette for the hour of t in t's location.
func ForTime(t time.Time) Palette {
	return ForHour(t.Hour())
}

// Scheme overrides time-based palette selection.
type Scheme string

const (
	SchemeSystem Scheme = "system"
	SchemeLight  Scheme = "light"
	SchemeDark   Scheme = "dark"
)

// ValidSchemes returns all valid scheme values.
func ValidSchemes() []Scheme {
	return []Scheme{SchemeSystem, SchemeLight, SchemeDark}
}

// ParseScheme parses a scheme name. An empty string means SchemeSystem.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case "", SchemeSystem:
		return SchemeSystem, nil
	case SchemeLight:
		return SchemeLight, nil
	case SchemeDark:
		return SchemeDark, nil
	default:
		return SchemeSystem, fmt.Errorf("invalid color scheme %q: must be one of system, light, dark", s)
	}
}

// Select returns the palette for scheme at time t.
func Select(scheme Scheme, t time.Time) Palette {
	switch scheme {
	case SchemeLight:
		return Light
	case SchemeDark:
		return Dark
	default:
		return ForTime(t)
	}
}
