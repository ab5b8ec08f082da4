package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/msgwidget/internal/config"
	"github.com/jmylchreest/msgwidget/internal/model"
	"github.com/jmylchreest/msgwidget/internal/store"
)

func newTestConfig(t *testing.T, body string, status int) *config.Config {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c := config.DefaultConfig()
	c.Backend.URL = srv.URL
	c.Backend.APIKey = "anon"
	c.Theme.ColorScheme = "dark"
	return c
}

func TestRender_WidgetSchedulesRefresh(t *testing.T) {
	c := newTestConfig(t, `[{"text":"Hallo"}]`, http.StatusOK)

	var out bytes.Buffer
	err := render(context.Background(), &out, renderRequest{
		config: c,
		family: "small",
		format: "json",
	})
	require.NoError(t, err)

	var v model.View
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, model.FamilySmall, v.Family)
	assert.Equal(t, "Hallo", v.Primary().Content)
	assert.Equal(t, 20, v.Primary().FontSize)
	assert.False(t, v.RefreshAfter.IsZero())

	state, err := store.NewStateFile(config.RefreshStatePath()).Load()
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, v.ID, state.RenderID)
	assert.Equal(t, model.FamilySmall, state.Family)
}

func TestRender_PreviewShowsPlaceholderOnFailure(t *testing.T) {
	c := newTestConfig(t, `oops`, http.StatusInternalServerError)

	var out bytes.Buffer
	err := render(context.Background(), &out, renderRequest{
		config: c,
		format: "json",
	})
	require.NoError(t, err)

	var v model.View
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, model.FamilyNone, v.Family)
	assert.Equal(t, config.DefaultPlaceholder, v.Primary().Content)
	assert.True(t, v.RefreshAfter.IsZero())

	_, err = os.Stat(config.RefreshStatePath())
	assert.True(t, os.IsNotExist(err), "preview must not schedule a refresh")
}

func TestRender_InvalidArguments(t *testing.T) {
	c := config.DefaultConfig()

	tests := []struct {
		name string
		req  renderRequest
	}{
		{"family", renderRequest{config: c, family: "huge"}},
		{"format", renderRequest{config: c, format: "pdf"}},
		{"source", renderRequest{config: c, source: "carrier-pigeon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := render(context.Background(), &bytes.Buffer{}, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msgwidget", "config.toml")
	globalOpts.configPath = path
	t.Cleanup(func() {
		globalOpts.configPath = ""
		configInitOpts.force = false
	})

	var out bytes.Buffer
	configInitCmd.SetOut(&out)
	require.NoError(t, runConfigInit(configInitCmd, nil))
	assert.Contains(t, out.String(), path)

	loaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPlaceholder, loaded.Widget.Placeholder)

	// A second init refuses to overwrite.
	assert.Error(t, runConfigInit(configInitCmd, nil))

	configInitOpts.force = true
	assert.NoError(t, runConfigInit(configInitCmd, nil))
}
