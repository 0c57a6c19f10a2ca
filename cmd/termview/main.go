// Command termview plays the game in a terminal using half-block pixels.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/ziggurat/internal/application/game"
	"github.com/younwookim/ziggurat/internal/application/signal"
	"github.com/younwookim/ziggurat/internal/infrastructure/audio"
	"github.com/younwookim/ziggurat/internal/infrastructure/config"
	"github.com/younwookim/ziggurat/internal/infrastructure/logger"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "Random seed; 0 picks one from the clock")
	configFlag := flag.String("config", "", "Directory holding display.json and world.json (defaults built in)")
	logFlag := flag.String("log", "", "Write logs to this file instead of discarding them")
	muteFlag := flag.Bool("mute", false, "Disable audio")
	flag.Parse()

	// the screen owns stdout, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.Init()
			logger.Log.Fatalf("Failed to open log file: %v", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	logger.InitWithOutput(out)
	log := logger.Log

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	bus := signal.NewBus()
	sound := audio.NewSoundManager()
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		}
	}
	defer sound.Cleanup()
	game.AttachSound(bus, sound)

	display := cfg.Display
	h := newHost(screen, display.ScreenWidth, display.ScreenHeight)
	machine := game.NewMachine(cfg, rand.New(rand.NewSource(seed)), bus)
	h.game = game.New(machine, bus, h, display.ScreenWidth, display.ScreenHeight)

	if err := run(context.Background(), screen, h, display.Framerate); err != nil {
		screen.Fini()
		log.Fatalf("termview: %v", err)
	}
}

// run pumps terminal events into the host and ticks until quit.
func run(ctx context.Context, screen tcell.Screen, h *host, framerate int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	interval := time.Second / time.Duration(max(framerate, 1))
	err := game.Drive(ctx, interval, func() error {
		for drained := false; !drained; {
			select {
			case ev := <-events:
				h.handle(ev)
			default:
				drained = true
			}
		}
		if h.quit {
			cancel()
			return nil
		}
		return h.frame()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadConfig reads the JSON configs from dir, or returns the built-in
// defaults when dir is empty.
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir == "" {
		return config.Default(), nil
	}
	return config.NewLoader(dir).LoadAll()
}
