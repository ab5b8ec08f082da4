package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/msgwidget/internal/model"
)

func TestStateFile_LoadMissing(t *testing.T) {
	f := NewStateFile(filepath.Join(t.TempDir(), "refresh.json"))

	state, err := f.Load()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestStateFile_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "refresh.json")
	f := NewStateFile(path)
	assert.Equal(t, path, f.Path())

	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	want := RefreshState{
		RenderID:     "01HZY3J6Q8Z9Y7X6W5V4T3S2R1",
		Family:       model.FamilySmall,
		RenderedAt:   now,
		RefreshAfter: now.Add(time.Minute),
	}
	require.NoError(t, f.Save(want))

	got, err := f.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.RenderID, got.RenderID)
	assert.Equal(t, want.Family, got.Family)
	assert.True(t, want.RefreshAfter.Equal(got.RefreshAfter))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStateFile_SaveRejectsZeroRefresh(t *testing.T) {
	f := NewStateFile(filepath.Join(t.TempDir(), "refresh.json"))
	assert.ErrorIs(t, f.Save(RefreshState{RenderID: "x"}), ErrInvalidState)
}

func TestStateFile_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refresh.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewStateFile(path).Load()
	assert.Error(t, err)
}

func TestStateFile_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refresh.json")
	f := NewStateFile(path)

	// Clearing a missing file is fine
	require.NoError(t, f.Clear())

	require.NoError(t, f.Save(RefreshState{RefreshAfter: time.Now()}))
	require.NoError(t, f.Clear())

	state, err := f.Load()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestRefreshState_Due(t *testing.T) {
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	state := &RefreshState{RefreshAfter: now.Add(time.Minute)}

	assert.False(t, state.Due(now))
	assert.Equal(t, time.Minute, state.Remaining(now))

	assert.True(t, state.Due(now.Add(time.Minute)))
	assert.Equal(t, time.Duration(0), state.Remaining(now.Add(2*time.Minute)))

	var missing *RefreshState
	assert.True(t, missing.Due(now))
}
