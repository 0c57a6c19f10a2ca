// Package signal carries fire-and-forget notifications from the scene core to
// its collaborators (audio, lore display, host chrome) over a donburi world.
//
// Publishing only queues an event. Subscribers run when the host calls Flush,
// once per frame, so nothing a collaborator does can re-enter the core mid-tick.
package signal

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/younwookim/ziggurat/internal/application/state"
)

// SelectionCue asks for the selection sound after a successful hit
type SelectionCue struct{}

// AmbientStart asks for the ambient loop once exploration has begun
type AmbientStart struct{}

// LoreRequested asks the host to show the statue lore
type LoreRequested struct{}

// SceneChanged reports the scene the core is now in
type SceneChanged struct {
	Scene state.SceneID
}

// CursorChanged reports a change of pointer affordance
type CursorChanged struct {
	Pointer bool
}

// Event types, shared by every bus
var (
	SelectionCueType  = events.NewEventType[SelectionCue]()
	AmbientStartType  = events.NewEventType[AmbientStart]()
	LoreRequestedType = events.NewEventType[LoreRequested]()
	SceneChangedType  = events.NewEventType[SceneChanged]()
	CursorChangedType = events.NewEventType[CursorChanged]()
)

// Bus queues core notifications until Flush
type Bus struct {
	world donburi.World
}

// NewBus creates a bus on its own donburi world
func NewBus() *Bus {
	return &Bus{world: donburi.NewWorld()}
}

// World exposes the underlying world for direct events.Subscribe use
func (b *Bus) World() donburi.World {
	return b.world
}

func (b *Bus) PlaySelection() {
	SelectionCueType.Publish(b.world, SelectionCue{})
}

func (b *Bus) StartAmbient() {
	AmbientStartType.Publish(b.world, AmbientStart{})
}

func (b *Bus) ShowLore() {
	LoreRequestedType.Publish(b.world, LoreRequested{})
}

func (b *Bus) SceneChanged(id state.SceneID) {
	SceneChangedType.Publish(b.world, SceneChanged{Scene: id})
}

func (b *Bus) CursorChanged(pointer bool) {
	CursorChangedType.Publish(b.world, CursorChanged{Pointer: pointer})
}

// OnSelection subscribes fn to selection cues
func (b *Bus) OnSelection(fn func()) {
	SelectionCueType.Subscribe(b.world, func(donburi.World, SelectionCue) { fn() })
}

// OnAmbient subscribes fn to ambient starts
func (b *Bus) OnAmbient(fn func()) {
	AmbientStartType.Subscribe(b.world, func(donburi.World, AmbientStart) { fn() })
}

// OnLore subscribes fn to lore requests
func (b *Bus) OnLore(fn func()) {
	LoreRequestedType.Subscribe(b.world, func(donburi.World, LoreRequested) { fn() })
}

// OnSceneChanged subscribes fn to scene changes
func (b *Bus) OnSceneChanged(fn func(state.SceneID)) {
	SceneChangedType.Subscribe(b.world, func(_ donburi.World, e SceneChanged) { fn(e.Scene) })
}

// OnCursor subscribes fn to pointer affordance changes
func (b *Bus) OnCursor(fn func(pointer bool)) {
	CursorChangedType.Subscribe(b.world, func(_ donburi.World, e CursorChanged) { fn(e.Pointer) })
}

// Flush delivers every queued event to its subscribers in publish order per type
func (b *Bus) Flush() {
	events.ProcessAllEvents(b.world)
}
