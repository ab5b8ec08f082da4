package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/msgwidget/internal/model"
	"github.com/jmylchreest/msgwidget/internal/theme"
)

func ptr(s string) *string { return &s }

func TestBuild_LargeMessage(t *testing.T) {
	v := Build(ptr("hello"), theme.Light, model.FamilyLarge, "")

	require.Len(t, v.Texts, 1)
	text := v.Texts[0]
	assert.Equal(t, "hello", text.Content)
	assert.Equal(t, 32, text.FontSize)
	assert.True(t, text.Centered)
	assert.Equal(t, theme.Light.Text, text.Color)
	assert.Equal(t, 0, text.LineLimit)
	assert.InDelta(t, 0.8, text.MinimumScaleFactor, 1e-9)
	assert.False(t, text.Placeholder)
	assert.Equal(t, model.Padding{Top: 24, Leading: 24, Bottom: 24, Trailing: 24}, v.Padding)
	assert.Equal(t, theme.Light.Background, v.Background)
	assert.Equal(t, model.FamilyLarge, v.Family)
}

func TestBuild_SmallPlaceholder(t *testing.T) {
	v := Build(nil, theme.Dark, model.FamilySmall, "")

	require.Len(t, v.Texts, 1)
	text := v.Texts[0]
	assert.Equal(t, DefaultPlaceholder, text.Content)
	assert.Equal(t, "Keine Nachrichten", text.Content)
	assert.Equal(t, 14, text.FontSize)
	assert.False(t, text.Centered)
	assert.True(t, text.Placeholder)
	assert.Equal(t, theme.Dark.Placeholder, text.Color)
	assert.Zero(t, text.MinimumScaleFactor)
	assert.Equal(t, model.Uniform(16), v.Padding)
	assert.Equal(t, theme.Dark.Background, v.Background)
}

func TestBuild_EmptyMessageIsPlaceholder(t *testing.T) {
	v := Build(ptr(""), theme.Light, model.FamilyMedium, "")
	assert.True(t, v.Texts[0].Placeholder)
	assert.Equal(t, 15, v.Texts[0].FontSize)
	assert.True(t, v.Texts[0].Centered)
}

func TestBuild_CustomPlaceholder(t *testing.T) {
	v := Build(nil, theme.Light, model.FamilyNone, "no messages")
	assert.Equal(t, "no messages", v.Texts[0].Content)
}

func TestBuild_NoneFamily(t *testing.T) {
	tests := []struct {
		name     string
		message  *string
		wantFont int
	}{
		{"message", ptr("hello"), 16},
		{"placeholder", nil, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Build(tt.message, theme.Light, model.FamilyNone, "")
			assert.Equal(t, tt.wantFont, v.Texts[0].FontSize)
			assert.Equal(t, model.Uniform(14), v.Padding)
			assert.False(t, v.Texts[0].Centered)
		})
	}
}

func TestBuild_UnknownFamilyFallsBackToNone(t *testing.T) {
	v := Build(ptr("hello"), theme.Light, model.Family("tv"), "")
	assert.Equal(t, model.FamilyNone, v.Family)
	assert.Equal(t, 16, v.Texts[0].FontSize)
}

func TestBuild_Idempotent(t *testing.T) {
	for _, family := range model.Families {
		for _, msg := range []*string{nil, ptr("hello")} {
			a := Build(msg, theme.ForHour(22), family, "")
			b := Build(msg, theme.ForHour(22), family, "")
			assert.Equal(t, a, b)
		}
	}
}

func TestBuilder_Build(t *testing.T) {
	night := time.Date(2026, 3, 1, 23, 15, 0, 0, time.Local)
	b := NewBuilder(theme.SchemeSystem, "")
	b.Now = func() time.Time { return night }

	v, err := b.Build(ptr("hello"), model.FamilyMedium)
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, theme.Dark.Background, v.Background)
	assert.Equal(t, 28, v.Texts[0].FontSize)

	w, err := b.Build(ptr("hello"), model.FamilyMedium)
	require.NoError(t, err)
	assert.NotEqual(t, v.ID, w.ID)

	v.ID, w.ID = "", ""
	assert.Equal(t, v, w)
}

func TestBuilder_SchemeOverride(t *testing.T) {
	night := time.Date(2026, 3, 1, 2, 0, 0, 0, time.Local)
	b := NewBuilder(theme.SchemeLight, "")
	b.Now = func() time.Time { return night }

	v, err := b.Build(nil, model.FamilySmall)
	require.NoError(t, err)
	assert.Equal(t, theme.Light.Background, v.Background)
	assert.Equal(t, theme.Light.Placeholder, v.Texts[0].Color)
}
