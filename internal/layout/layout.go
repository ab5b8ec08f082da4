// Package layout holds the fixed font, padding, and alignment tables for each
// widget family.
package layout

import (
	"github.com/jmylchreest/msgwidget/internal/model"
)

// Message text settings shared by every family.
const (
	MessageLineLimit          = 0 // unlimited wrapping
	MessageMinimumScaleFactor = 0.8
)

// Metrics are the presentation constants for one text element.
type Metrics struct {
	FontSize int
	Padding  model.Padding
	Centered bool
}

// entry is one row of the lookup table.
type entry struct {
	messageFont       int
	placeholderFont   int
	padding           int
	messageCenter     bool
	placeholderCenter bool
}

var table = map[model.Family]entry{
	model.FamilyLarge: {
		messageFont:       32,
		placeholderFont:   17,
		padding:           24,
		messageCenter:     true,
		placeholderCenter: true,
	},
	model.FamilyMedium: {
		messageFont:       28,
		placeholderFont:   15,
		padding:           20,
		messageCenter:     true,
		placeholderCenter: true,
	},
	model.FamilySmall: {
		messageFont:       20,
		placeholderFont:   14,
		padding:           16,
		messageCenter:     true,
		placeholderCenter: false,
	},
	model.FamilyNone: {
		messageFont:     16,
		placeholderFont: 14,
		padding:         14,
	},
}

// Lookup returns the metrics for family. Unknown families use the
// FamilyNone row.
func Lookup(family model.Family, hasMessage bool) Metrics {
	e, ok := table[family]
	if !ok {
		e = table[model.FamilyNone]
	}

	if hasMessage {
		return Metrics{
			FontSize: e.messageFont,
			Padding:  model.Uniform(e.padding),
			Centered: e.messageCenter,
		}
	}
	return Metrics{
		FontSize: e.placeholderFont,
		Padding:  model.Uniform(e.padding),
		Centered: e.placeholderCenter,
	}
}

// Frame is the on-screen size used to present a view, in terminal cells.
type Frame struct {
	Width  int
	Height int
}

// PresentFamily is the family a non-widget view is presented at.
const PresentFamily = model.FamilyMedium

var frames = map[model.Family]Frame{
	model.FamilySmall:  {Width: 22, Height: 10},
	model.FamilyMedium: {Width: 46, Height: 10},
	model.FamilyLarge:  {Width: 46, Height: 22},
}

// FrameFor returns the presentation frame for family. FamilyNone is
// presented at the medium frame.
func FrameFor(family model.Family) Frame {
	if f, ok := frames[family]; ok {
		return f
	}
	return frames[PresentFamily]
}
