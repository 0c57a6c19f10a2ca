package main

import (
	"flag"
	"fmt"
	"io/fs"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/ziggurat/internal/application/game"
	"github.com/younwookim/ziggurat/internal/application/replay"
	"github.com/younwookim/ziggurat/internal/application/signal"
	"github.com/younwookim/ziggurat/internal/application/system"
	"github.com/younwookim/ziggurat/internal/infrastructure/audio"
	"github.com/younwookim/ziggurat/internal/infrastructure/config"
	"github.com/younwookim/ziggurat/internal/infrastructure/logger"
	"github.com/younwookim/ziggurat/internal/render/ebitenrender"
)

const fontSize = 8

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	seedFlag := flag.Int64("seed", 0, "Random seed; 0 picks one from the clock")
	muteFlag := flag.Bool("mute", false, "Disable audio")
	flag.Parse()

	logger.Init()
	log := logger.Log

	cfg, err := loadConfig(configFS)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var input game.InputSource = system.NewInputSystem()
	seed := *seedFlag
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		seed = data.Seed
		input = replay.NewReplayer(*data)
		log.WithFields(logrus.Fields{"file": *replayFlag, "frames": len(data.Frames)}).Info("replaying input")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bus := signal.NewBus()
	sound := audio.NewSoundManager()
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		}
	}
	defer sound.Cleanup()
	game.AttachSound(bus, sound)
	bus.OnCursor(func(pointer bool) {
		shape := ebiten.CursorShapeDefault
		if pointer {
			shape = ebiten.CursorShapePointer
		}
		ebiten.SetCursorShape(shape)
	})

	display := cfg.Display
	machine := game.NewMachine(cfg, rand.New(rand.NewSource(seed)), bus)
	g := game.New(machine, bus, input, display.ScreenWidth, display.ScreenHeight)

	face, err := ebitenrender.LoadFace(fontSize)
	if err != nil {
		log.WithError(err).Warn("captions disabled")
	} else {
		g.SetFace(face)
	}

	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder(seed)
		g.SetRecorder(recorder.RecordFrame)
		log.WithFields(logrus.Fields{"file": *recordFlag, "seed": seed}).Info("recording enabled")
	}

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	runErr := ebiten.RunGame(g)

	if recorder != nil {
		if err := recorder.Save(*recordFlag); err != nil {
			log.WithError(err).Error("failed to save recording")
		} else {
			log.WithField("frames", recorder.FrameCount()).Info("recording saved")
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// loadConfig reads display.json and world.json from the embedded configs
func loadConfig(fsys fs.FS) (*config.GameConfig, error) {
	sub, err := fs.Sub(fsys, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(sub, "configs").LoadAll()
}
