package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadDisplay(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadDisplay()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.ScreenWidth)
	assert.Equal(t, 240, cfg.ScreenHeight)
	assert.Equal(t, 3, cfg.Scale)
	assert.Equal(t, 60, cfg.Framerate)
}

func TestLoader_LoadWorld(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadWorld()
	require.NoError(t, err)

	assert.Equal(t, -1200.0, cfg.Camera.Range)
	assert.Equal(t, 0.1, cfg.Camera.Ease)
	assert.Equal(t, 0.0625, cfg.Transition.Step)
	assert.Greater(t, cfg.Transition.Commit, MaxVisibleAlpha)
	assert.Equal(t, 96.0, cfg.NPC.MinX)
	assert.Equal(t, 224.0, cfg.NPC.MaxX)
	assert.Equal(t, 70.0, cfg.Landmark.ScrollGate)
	assert.NotEmpty(t, cfg.Lore.Lines)
}

func TestLoader_MatchesDefault(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Display, cfg.Display)
	assert.Equal(t, def.World, cfg.World)
}

func TestLoader_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"display.json": {Data: []byte(`{"screenWidth": 160, "screenHeight": 120, "scale": 2}`)},
		"world.json":   {Data: []byte(`{"camera": {"ease": 0.5}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 160, cfg.Display.ScreenWidth)
	assert.Equal(t, 0.5, cfg.World.Camera.Ease)
	// Unset keys keep their defaults
	assert.Equal(t, -1200.0, cfg.World.Camera.Range)
	assert.Equal(t, 1.25, cfg.World.Transition.Commit)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing display", fstest.MapFS{}},
		{"malformed display", fstest.MapFS{
			"display.json": {Data: []byte(`{`)},
		}},
		{"missing world", fstest.MapFS{
			"display.json": {Data: []byte(`{}`)},
		}},
		{"invalid world", fstest.MapFS{
			"display.json": {Data: []byte(`{}`)},
			"world.json":   {Data: []byte(`{"transition": {"commit": 1.0}}`)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, ".").LoadAll()
			assert.Error(t, err)
		})
	}
}

func TestWorldConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(w *WorldConfig)
		valid  bool
	}{
		{"default", func(w *WorldConfig) {}, true},
		{"ease zero", func(w *WorldConfig) { w.Camera.Ease = 0 }, false},
		{"ease above one", func(w *WorldConfig) { w.Camera.Ease = 1.5 }, false},
		{"ease exactly one", func(w *WorldConfig) { w.Camera.Ease = 1 }, true},
		{"negative step", func(w *WorldConfig) { w.Transition.Step = -0.1 }, false},
		{"commit at visible max", func(w *WorldConfig) { w.Transition.Commit = 1.0 }, false},
		{"npc bounds swapped", func(w *WorldConfig) { w.NPC.MinX, w.NPC.MaxX = 200, 100 }, false},
		{"zero boat cycle", func(w *WorldConfig) { w.Boat.Cycle = 0 }, false},
		{"zero decrement", func(w *WorldConfig) { w.Particles.Decrement = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := DefaultWorld()
			tt.mutate(w)
			err := w.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
