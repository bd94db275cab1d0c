package main

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := LoadConfig(configFS)
	require.NoError(t, err)

	assert.Equal(t, "gg demo", cfg.Title)
	assert.Equal(t, 320, cfg.ScreenWidth)
	assert.Equal(t, 240, cfg.ScreenHeight)
	assert.Equal(t, 60, cfg.Framerate)
}

func TestLoadConfig_DefaultsFramerate(t *testing.T) {
	fsys := fstest.MapFS{
		"configs/demo.json": &fstest.MapFile{
			Data: []byte(`{"title": "t", "screen_width": 100, "screen_height": 100}`),
		},
	}

	cfg, err := LoadConfig(fsys)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Framerate)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{
			name: "missing file",
			fsys: fstest.MapFS{},
		},
		{
			name: "invalid json",
			fsys: fstest.MapFS{
				"configs/demo.json": &fstest.MapFile{Data: []byte("{")},
			},
		},
		{
			name: "invalid screen size",
			fsys: fstest.MapFS{
				"configs/demo.json": &fstest.MapFile{Data: []byte(`{"screen_width": 0, "screen_height": 240}`)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.fsys)
			assert.Error(t, err)
		})
	}
}
