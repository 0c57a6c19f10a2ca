// Package scene defines the Scene interface for the top-level game modes.
//
// Each populated mode (overview map, city exploration, temple interior)
// implements Scene to generate its population, advance its simulation, draw
// itself and resolve pointer input. Transitions between scenes are owned by
// the state machine in package game; a scene only requests them.
package scene

import (
	"github.com/younwookim/ziggurat/internal/application/state"
	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/render"
)

// Scene represents one top-level mode.
//
// The machine calls OnEnter once per entry, Update once per tick, and Draw
// once per frame. HitTest and Click run on the same thread between ticks.
type Scene interface {
	// ID returns the scene identifier.
	ID() state.SceneID

	// OnEnter replaces the population and sets up the camera.
	OnEnter(ctx *Context)

	// OnExit is called when leaving this scene.
	OnExit(ctx *Context)

	// Update advances the scene's simulation by one tick.
	Update(ctx *Context)

	// Draw renders the scene. It must not create entities.
	Draw(dst render.Surface, ctx *Context)

	// HitTest returns the interactive entity under the logical point (x, y),
	// or entity.None.
	HitTest(ctx *Context, x, y float64) entity.ID

	// Click resolves a click on a hit entity.
	Click(ctx *Context, id entity.ID) Request
}

// Action is what a click asks the machine to do
type Action int

const (
	ActionNone Action = iota
	ActionTransition
	ActionLore
)

// Request is a scene's answer to a click
type Request struct {
	Action Action
	Target state.SceneID
}

// None is the empty request
var None = Request{}

// TransitionTo requests a fade into target
func TransitionTo(target state.SceneID) Request {
	return Request{Action: ActionTransition, Target: target}
}

// ShowLore requests the lore display without a scene change
func ShowLore() Request {
	return Request{Action: ActionLore}
}
