package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFamily(t *testing.T) {
	tests := []struct {
		input    string
		expected Family
		wantErr  bool
	}{
		{"small", FamilySmall, false},
		{"Medium", FamilyMedium, false},
		{" LARGE ", FamilyLarge, false},
		{"none", FamilyNone, false},
		{"", FamilyNone, false},
		{"extraLarge", FamilyNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFamily(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFamily)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestFamily_IsWidget(t *testing.T) {
	assert.True(t, FamilySmall.IsWidget())
	assert.True(t, FamilyMedium.IsWidget())
	assert.True(t, FamilyLarge.IsWidget())
	assert.False(t, FamilyNone.IsWidget())
	assert.False(t, Family("").IsWidget())
}

func TestUniform(t *testing.T) {
	assert.Equal(t, Padding{Top: 14, Leading: 14, Bottom: 14, Trailing: 14}, Uniform(14))
}

func TestView_Primary(t *testing.T) {
	var empty View
	assert.Nil(t, empty.Primary())
	assert.False(t, empty.HasMessage())

	v := View{Texts: []Text{{Content: "hello"}}}
	require.NotNil(t, v.Primary())
	assert.Equal(t, "hello", v.Primary().Content)
	assert.True(t, v.HasMessage())

	v.Texts[0].Placeholder = true
	assert.False(t, v.HasMessage())
}

func TestNewID(t *testing.T) {
	a, err := NewID(time.Now())
	require.NoError(t, err)
	b, err := NewID(time.Now())
	require.NoError(t, err)

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

func TestMessage_Body(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"text present", `{"text":"hello"}`, "hello", false},
		{"empty text", `{"text":""}`, "", true},
		{"null text", `{"text":null}`, "", true},
		{"missing text", `{"other":"x"}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Message
			require.NoError(t, json.Unmarshal([]byte(tt.input), &m))

			got, err := m.Body()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
