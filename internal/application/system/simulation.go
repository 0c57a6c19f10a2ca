package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/infrastructure/assets"
	"github.com/younwookim/ziggurat/internal/infrastructure/config"
)

// MotionSystem advances walking figures, drifting boats and the explorer
type MotionSystem struct {
	npc  config.NPCConfig
	boat config.BoatConfig
}

// NewMotionSystem creates a motion system
func NewMotionSystem(cfg *config.WorldConfig) *MotionSystem {
	return &MotionSystem{npc: cfg.NPC, boat: cfg.Boat}
}

// Update runs one simulation tick over the population
func (s *MotionSystem) Update(store *entity.Store, cam *Camera) {
	store.Each(func(e *entity.Entity) {
		e.Frame++
		switch b := e.Body.(type) {
		case *entity.NPC:
			s.walk(e, b)
		case *entity.Boat:
			s.drift(e, b, cam)
		case *entity.Player:
			e.Y = cam.Offset() + ExplorerLead
		case *entity.Building, *entity.Decor, *entity.Ziggurat, *entity.Statue, *entity.Banner, nil:
		}
	})
}

// walk moves an NPC and bounces it off the configured x-bounds. The sign only
// flips while moving outward, so a figure past a bound walks back instead of
// jittering.
func (s *MotionSystem) walk(e *entity.Entity, npc *entity.NPC) {
	if npc.Speed == 0 {
		return
	}
	e.X += npc.Speed
	if (e.X < s.npc.MinX && npc.Speed < 0) || (e.X > s.npc.MaxX && npc.Speed > 0) {
		npc.Speed = -npc.Speed
	}
}

func (s *MotionSystem) drift(e *entity.Entity, boat *entity.Boat, cam *Camera) {
	speed := boat.Speed
	if speed == 0 {
		speed = s.boat.DefaultSpeed
	}
	e.Y += speed
	if e.Y > cam.Offset()+s.boat.WrapDistance {
		e.Y -= s.boat.Cycle
	}
}

// Pose derives the vertical bob and facing of a walking figure from elapsed
// time alone. Standing figures neither bob nor flip.
func Pose(cfg config.NPCConfig, t, speed float64) (bob float64, flip bool) {
	if speed == 0 {
		return 0, false
	}
	return -math.Abs(math.Sin(t*cfg.BobRate)) * cfg.BobHeight, speed < 0
}

// ParticleSystem spawns and ages the landmark's ambient sparks
type ParticleSystem struct {
	cfg config.ParticleConfig
	rng *rand.Rand
}

// NewParticleSystem creates a particle system drawing from rng
func NewParticleSystem(cfg config.ParticleConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{cfg: cfg, rng: rng}
}

// Update ages existing particles, then, once the viewer is near the
// landmark, may spawn one new particle.
func (s *ParticleSystem) Update(ps *entity.Particles, cam *Camera) {
	ps.Age(s.cfg.Decrement)

	if !cam.NearLandmark() || s.rng.Float64() >= s.cfg.SpawnChance {
		return
	}
	if s.cfg.Capacity > 0 && ps.Len() >= s.cfg.Capacity {
		return
	}
	r := s.cfg.Region
	ps.Add(entity.Particle{
		X:     r.X + s.rng.Float64()*r.W,
		Y:     r.Y + s.rng.Float64()*r.H,
		VX:    between(s.rng, s.cfg.SpeedX),
		VY:    between(s.rng, s.cfg.SpeedY),
		Life:  1,
		Color: assets.Accents[s.rng.Intn(len(assets.Accents))],
	})
}

func between(rng *rand.Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
