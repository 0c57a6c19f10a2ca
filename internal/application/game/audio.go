package game

import (
	"github.com/younwookim/ziggurat/internal/application/signal"
	"github.com/younwookim/ziggurat/internal/application/state"
)

// Sound is the audio collaborator driven by machine notifications
type Sound interface {
	PlaySelect()
	StartAmbient()
	StopAmbient()
}

// AttachSound subscribes s to the bus. The ambient loop starts when
// exploration begins and stops once the overview is back.
func AttachSound(bus *signal.Bus, s Sound) {
	bus.OnSelection(s.PlaySelect)
	bus.OnAmbient(s.StartAmbient)
	bus.OnSceneChanged(func(id state.SceneID) {
		if id == state.SceneOverview {
			s.StopAmbient()
		}
	})
}
