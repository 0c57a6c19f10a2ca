package config

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
}

// WorldConfig is the root config for world.json
type WorldConfig struct {
	Camera     CameraConfig     `json:"camera"`
	Transition TransitionConfig `json:"transition"`
	NPC        NPCConfig        `json:"npc"`
	Boat       BoatConfig       `json:"boat"`
	Particles  ParticleConfig   `json:"particles"`
	Overview   OverviewConfig   `json:"overview"`
	Landmark   LandmarkConfig   `json:"landmark"`
	Lore       LoreConfig       `json:"lore"`
}

// CameraConfig configures the vertical scroll camera
type CameraConfig struct {
	Range float64 `json:"range"` // Offset magnitude at 100% scroll (world units)
	Ease  float64 `json:"ease"`  // Fraction of the remaining gap closed per tick
	// NearLandmark is the offset below which the viewer counts as near the landmark
	NearLandmark float64 `json:"nearLandmark"`
}

// TransitionConfig configures the scene fade
type TransitionConfig struct {
	Step   float64 `json:"step"`   // Alpha added per frame
	Commit float64 `json:"commit"` // Alpha that must be exceeded to commit
	FadeIn float64 `json:"fadeIn"` // Post-commit fade-in duration (seconds)
}

type NPCConfig struct {
	MinX      float64 `json:"minX"`
	MaxX      float64 `json:"maxX"`
	BobHeight float64 `json:"bobHeight"`
	BobRate   float64 `json:"bobRate"` // radians per second
}

type BoatConfig struct {
	DefaultSpeed float64 `json:"defaultSpeed"`
	WrapDistance float64 `json:"wrapDistance"` // Distance past the camera before wrapping
	Cycle        float64 `json:"cycle"`        // Distance a boat is moved back on wrap
}

type ParticleConfig struct {
	SpawnChance float64    `json:"spawnChance"` // Probability per frame
	Decrement   float64    `json:"decrement"`   // Life lost per frame
	Region      RectConfig `json:"region"`
	SpeedX      Range      `json:"speedX"`
	SpeedY      Range      `json:"speedY"`
	Capacity    int        `json:"capacity"`
}

type OverviewConfig struct {
	Hotspot RectConfig `json:"hotspot"`
}

// LandmarkConfig shapes the landmark's clickable region around its projected base
type LandmarkConfig struct {
	ScrollGate float64 `json:"scrollGate"` // Scroll percentage that must be exceeded
	PadX       float64 `json:"padX"`
	Rise       float64 `json:"rise"`
}

type LoreConfig struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
