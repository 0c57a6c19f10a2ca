package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	World   *WorldConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.readJSON("display.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWorld loads world.json on top of the defaults and validates it
func (l *Loader) LoadWorld() (*WorldConfig, error) {
	cfg := DefaultWorld()
	if err := l.readJSON("world.json", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world.json: %w", err)
	}
	return cfg, nil
}

// LoadAll loads all base configurations (display, world)
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	world, err := l.LoadWorld()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		World:   world,
	}, nil
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// MaxVisibleAlpha is the highest overlay opacity a fade can show
const MaxVisibleAlpha = 1.0

// Validate checks the invariants the simulation relies on
func (w *WorldConfig) Validate() error {
	if w.Camera.Ease <= 0 || w.Camera.Ease > 1 {
		return fmt.Errorf("%w: camera.ease %v outside (0,1]", ErrInvalid, w.Camera.Ease)
	}
	if w.Transition.Step <= 0 {
		return fmt.Errorf("%w: transition.step must be positive", ErrInvalid)
	}
	if w.Transition.Commit <= MaxVisibleAlpha {
		return fmt.Errorf("%w: transition.commit %v must exceed %v", ErrInvalid, w.Transition.Commit, MaxVisibleAlpha)
	}
	if w.NPC.MinX >= w.NPC.MaxX {
		return fmt.Errorf("%w: npc.minX must be below npc.maxX", ErrInvalid)
	}
	if w.Boat.Cycle <= 0 {
		return fmt.Errorf("%w: boat.cycle must be positive", ErrInvalid)
	}
	if w.Particles.Decrement <= 0 {
		return fmt.Errorf("%w: particles.decrement must be positive", ErrInvalid)
	}
	return nil
}
