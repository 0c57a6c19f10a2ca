package state

// SceneID identifies the active top-level scene
type SceneID int

const (
	SceneOverview SceneID = iota
	SceneTransitioning
	SceneExploration
	SceneInterior
)

// String returns the string representation of the scene
func (s SceneID) String() string {
	switch s {
	case SceneOverview:
		return "Overview"
	case SceneTransitioning:
		return "Transitioning"
	case SceneExploration:
		return "Exploration"
	case SceneInterior:
		return "Interior"
	default:
		return "Unknown"
	}
}

// Populated reports whether entering the scene generates an entity population
func (s SceneID) Populated() bool {
	return s == SceneExploration || s == SceneInterior
}

// Source returns the scene drawn beneath the fade while transitioning to s.
// Fading into the interior shows the city; fading into the city shows the map.
func (s SceneID) Source() SceneID {
	switch s {
	case SceneInterior:
		return SceneExploration
	default:
		return SceneOverview
	}
}
