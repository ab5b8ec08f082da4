// Package widget builds the widget view from a message, a palette, and a
// size family.
package widget

import (
	"time"

	"github.com/jmylchreest/msgwidget/internal/layout"
	"github.com/jmylchreest/msgwidget/internal/model"
	"github.com/jmylchreest/msgwidget/internal/theme"
)

// DefaultPlaceholder is shown when no message is available.
const DefaultPlaceholder = "Keine Nachrichten"

// Build constructs a view. A nil or empty message renders placeholder in the
// palette's placeholder color; an empty placeholder means DefaultPlaceholder.
// Build is pure: identical inputs give structurally identical views.
func Build(message *string, palette theme.Palette, family model.Family, placeholder string) model.View {
	// Unknown families render as FamilyNone.
	family, _ = model.ParseFamily(string(family))
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	hasMessage := message != nil && *message != ""
	metrics := layout.Lookup(family, hasMessage)

	var text model.Text
	if hasMessage {
		text = model.Text{
			Content:            *message,
			FontSize:           metrics.FontSize,
			Color:              palette.Text,
			Centered:           metrics.Centered,
			LineLimit:          layout.MessageLineLimit,
			MinimumScaleFactor: layout.MessageMinimumScaleFactor,
		}
	} else {
		text = model.Text{
			Content:     placeholder,
			FontSize:    metrics.FontSize,
			Color:       palette.Placeholder,
			Centered:    metrics.Centered,
			Placeholder: true,
		}
	}

	return model.View{
		Family:     family,
		Background: palette.Background,
		Padding:    metrics.Padding,
		Texts:      []model.Text{text},
	}
}

// Builder builds views against a clock and a color scheme.
type Builder struct {
	Now         func() time.Time
	Scheme      theme.Scheme
	Placeholder string
}

// NewBuilder creates a Builder using the wall clock.
func NewBuilder(scheme theme.Scheme, placeholder string) *Builder {
	return &Builder{
		Now:         time.Now,
		Scheme:      scheme,
		Placeholder: placeholder,
	}
}

// Build selects the palette for the current time and builds a view with a
// fresh ID.
func (b *Builder) Build(message *string, family model.Family) (model.View, error) {
	now := b.now()
	v := Build(message, theme.Select(b.Scheme, now), family, b.Placeholder)

	id, err := model.NewID(now)
	if err != nil {
		return v, err
	}
	v.ID = id
	return v, nil
}

func (b *Builder) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}
