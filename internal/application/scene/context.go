package scene

import (
	"math"
	"math/rand"

	"github.com/tanema/gween/ease"
	"github.com/younwookim/ziggurat/internal/application/system"
	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/infrastructure/config"
)

// Context is the scene-local mutable state shared by generators, simulation,
// renderers and the hit-tester. The state machine owns exactly one and passes
// it by reference; it is never global.
type Context struct {
	Config *config.WorldConfig
	Width  float64
	Height float64

	Store     *entity.Store
	Particles *entity.Particles
	Camera    *system.Camera
	Motion    *system.MotionSystem
	Sparks    *system.ParticleSystem
	Rand      *rand.Rand

	// Hovered is the entity under the pointer, set by the hit-tester
	Hovered entity.ID

	// Time is elapsed animation time in seconds; Frame counts ticks
	Time  float64
	Frame int
}

// NewContext creates a context for a width×height logical canvas.
func NewContext(cfg *config.WorldConfig, width, height int, rng *rand.Rand) *Context {
	return &Context{
		Config:    cfg,
		Width:     float64(width),
		Height:    float64(height),
		Store:     entity.NewStore(),
		Particles: entity.NewParticles(cfg.Particles.Capacity),
		Camera:    system.NewCamera(cfg.Camera),
		Motion:    system.NewMotionSystem(cfg),
		Sparks:    system.NewParticleSystem(cfg.Particles, rng),
		Rand:      rng,
	}
}

// HoveredEntity returns the hovered entity if it is still in the population.
func (c *Context) HoveredEntity() *entity.Entity {
	if c.Hovered == entity.None {
		return nil
	}
	return c.Store.Get(c.Hovered)
}

// Pulse returns a 0..1 glow intensity that rises and falls once per period
// seconds, eased in and out at both ends.
func (c *Context) Pulse(period float64) float64 {
	if period <= 0 {
		return 0
	}
	phase := math.Mod(c.Time/period, 1)
	tri := phase * 2
	if phase >= 0.5 {
		tri = 2 - phase*2
	}
	return float64(ease.InOutSine(float32(tri), 0, 1, 1))
}
