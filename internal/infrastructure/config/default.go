package config

// Default returns the built-in configuration, identical to the embedded JSON files.
func Default() *GameConfig {
	return &GameConfig{
		Display: DefaultDisplay(),
		World:   DefaultWorld(),
	}
}

// DefaultDisplay returns the built-in display configuration
func DefaultDisplay() *DisplayConfig {
	return &DisplayConfig{
		Title:        "Ziggurat",
		ScreenWidth:  320,
		ScreenHeight: 240,
		Scale:        3,
		Framerate:    60,
	}
}

// DefaultWorld returns the built-in world tuning
func DefaultWorld() *WorldConfig {
	return &WorldConfig{
		Camera: CameraConfig{
			Range:        -1200,
			Ease:         0.1,
			NearLandmark: -900,
		},
		Transition: TransitionConfig{
			// Powers of two keep the alpha sum exact
			Step:   0.0625,
			Commit: 1.25,
			FadeIn: 0.4,
		},
		NPC: NPCConfig{
			MinX:      96,
			MaxX:      224,
			BobHeight: 1.5,
			BobRate:   10,
		},
		Boat: BoatConfig{
			DefaultSpeed: 0.3,
			WrapDistance: 200,
			Cycle:        640,
		},
		Particles: ParticleConfig{
			SpawnChance: 0.3,
			Decrement:   0.02,
			Region:      RectConfig{X: 124, Y: -1266, W: 72, H: 16},
			SpeedX:      Range{Min: -0.3, Max: 0.3},
			SpeedY:      Range{Min: -0.8, Max: -0.3},
			Capacity:    64,
		},
		Overview: OverviewConfig{
			Hotspot: RectConfig{X: 140, Y: 92, W: 40, H: 40},
		},
		Landmark: LandmarkConfig{
			ScrollGate: 70,
			PadX:       12,
			Rise:       24,
		},
		Lore: LoreConfig{
			Title: "The Patron of the River City",
			Lines: []string{
				"Carved before the walls were raised,",
				"the patron watched the river bring",
				"reed boats, grain and scribes to the gate.",
				"Priests still keep the lamps lit at its feet.",
			},
		},
	}
}
