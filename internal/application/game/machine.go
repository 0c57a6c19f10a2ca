package game

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/ziggurat/internal/application/scene"
	"github.com/younwookim/ziggurat/internal/application/scene/city"
	"github.com/younwookim/ziggurat/internal/application/scene/interior"
	"github.com/younwookim/ziggurat/internal/application/scene/overview"
	"github.com/younwookim/ziggurat/internal/application/signal"
	"github.com/younwookim/ziggurat/internal/application/state"
	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/infrastructure/assets"
	"github.com/younwookim/ziggurat/internal/infrastructure/config"
	"github.com/younwookim/ziggurat/internal/infrastructure/logger"
	"github.com/younwookim/ziggurat/internal/render"
)

// Machine is the scene state machine. It owns the scene context, the tick
// loop and the transition fade, and reports to collaborators over the bus.
//
// All methods must be called from the host's single update thread.
type Machine struct {
	ctx    *scene.Context
	bus    *signal.Bus
	loop   *Loop
	scenes map[state.SceneID]scene.Scene
	dt     float64

	current state.SceneID
	target  state.SceneID
	alpha   float64
	// active is the last entered populated or overview scene
	active scene.Scene

	fade      *gween.Tween
	fadeAlpha float64
	pointer   bool
}

// NewMachine creates the machine with the overview, city and interior scenes
// and enters the overview.
func NewMachine(cfg *config.GameConfig, rng *rand.Rand, bus *signal.Bus) *Machine {
	ctx := scene.NewContext(cfg.World, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, rng)
	dt := 1.0 / 60.0
	if cfg.Display.Framerate > 0 {
		dt = 1.0 / float64(cfg.Display.Framerate)
	}
	return NewMachineWithScenes(ctx, bus, dt, overview.New(), city.New(), interior.New())
}

// NewMachineWithScenes creates a machine over the given scenes and enters
// the overview. dt is the animation time added per tick.
func NewMachineWithScenes(ctx *scene.Context, bus *signal.Bus, dt float64, scenes ...scene.Scene) *Machine {
	m := &Machine{
		ctx:    ctx,
		bus:    bus,
		loop:   NewLoop(),
		scenes: make(map[state.SceneID]scene.Scene, len(scenes)),
		dt:     dt,
	}
	for _, s := range scenes {
		m.scenes[s.ID()] = s
	}
	m.enter(state.SceneOverview)
	return m
}

// Scene returns the current scene
func (m *Machine) Scene() state.SceneID {
	return m.current
}

// Target returns the scene being faded into; meaningful while transitioning
func (m *Machine) Target() state.SceneID {
	return m.target
}

// Alpha returns the transition fade progress, which may exceed 1
func (m *Machine) Alpha() float64 {
	return m.alpha
}

// FadeIn returns the opacity of the post-commit fade-in overlay
func (m *Machine) FadeIn() float64 {
	return m.fadeAlpha
}

// Hovered returns the entity under the pointer
func (m *Machine) Hovered() entity.ID {
	return m.ctx.Hovered
}

// Context exposes the scene context
func (m *Machine) Context() *scene.Context {
	return m.ctx
}

// Loop exposes the tick loop
func (m *Machine) Loop() *Loop {
	return m.loop
}

// Scroll returns the clamped scroll percentage
func (m *Machine) Scroll() float64 {
	return m.ctx.Camera.Scroll()
}

// SetScroll updates the scroll percentage. Out-of-range values are clamped.
func (m *Machine) SetScroll(pct float64) {
	m.ctx.Camera.SetScroll(pct)
}

// SetScene assigns a scene directly, without a fade. Entering a populated
// scene regenerates it. Transitioning cannot be assigned.
func (m *Machine) SetScene(id state.SceneID) {
	if _, ok := m.scenes[id]; !ok {
		logger.Log.WithField("scene", id).Warn("ignoring assignment to unknown scene")
		return
	}
	m.alpha = 0
	m.stopFade()
	m.enter(id)
}

// Exit steps back one level: interior to city, city to overview.
// It returns false when there is nowhere to go.
func (m *Machine) Exit() bool {
	switch m.current {
	case state.SceneInterior:
		m.SetScene(state.SceneExploration)
	case state.SceneExploration:
		m.SetScene(state.SceneOverview)
	default:
		return false
	}
	return true
}

// Tick advances one frame. It is a no-op while the loop is stopped.
func (m *Machine) Tick() {
	m.loop.Step()
}

// Draw renders the current frame. A nil surface skips the frame.
func (m *Machine) Draw(dst render.Surface) {
	if dst == nil {
		return
	}
	switch m.current {
	case state.SceneTransitioning:
		if src, ok := m.scenes[m.target.Source()]; ok {
			src.Draw(dst, m.ctx)
		}
		overlay(dst, m.ctx, math.Min(m.alpha, config.MaxVisibleAlpha))
	default:
		if s, ok := m.scenes[m.current]; ok {
			s.Draw(dst, m.ctx)
		}
		if m.fadeAlpha > 0 {
			overlay(dst, m.ctx, m.fadeAlpha)
		}
	}
}

// PointerMove updates the hovered entity from a logical pointer position.
func (m *Machine) PointerMove(x, y float64) {
	id := entity.None
	if s := m.interactive(); s != nil {
		id = s.HitTest(m.ctx, x, y)
	}
	m.setHover(id)
}

// Click resolves a click at a logical position.
func (m *Machine) Click(x, y float64) {
	s := m.interactive()
	if s == nil {
		return
	}
	id := s.HitTest(m.ctx, x, y)
	if id == entity.None {
		return
	}

	req := s.Click(m.ctx, id)
	switch req.Action {
	case scene.ActionTransition:
		m.bus.PlaySelection()
		m.begin(req.Target)
	case scene.ActionLore:
		m.bus.ShowLore()
	case scene.ActionNone:
	}
}

// interactive returns the scene that accepts pointer input, or nil mid-fade
func (m *Machine) interactive() scene.Scene {
	if m.current == state.SceneTransitioning {
		return nil
	}
	return m.scenes[m.current]
}

func (m *Machine) setHover(id entity.ID) {
	m.ctx.Hovered = id
	pointer := id != entity.None
	if pointer != m.pointer {
		m.pointer = pointer
		m.bus.CursorChanged(pointer)
	}
}

// enter makes id the current scene and restarts the loop bound to it.
func (m *Machine) enter(id state.SceneID) {
	s := m.scenes[id]
	from := m.current

	if m.active != nil {
		m.active.OnExit(m.ctx)
	}
	m.current = id
	m.setHover(entity.None)
	s.OnEnter(m.ctx)
	m.active = s

	m.bus.SceneChanged(id)
	m.loop.Restart(m.sceneStep(s))

	logger.Log.WithFields(logrus.Fields{
		"from":     from,
		"scene":    id,
		"entities": m.ctx.Store.Len(),
	}).Info("scene entered")
}

// begin starts fading into target.
func (m *Machine) begin(target state.SceneID) {
	if _, ok := m.scenes[target]; !ok {
		logger.Log.WithField("target", target).Warn("ignoring transition to unknown scene")
		return
	}
	source := m.scenes[target.Source()]

	m.current = state.SceneTransitioning
	m.target = target
	m.alpha = 0
	m.stopFade()
	m.setHover(entity.None)

	m.bus.SceneChanged(state.SceneTransitioning)
	m.loop.Restart(m.transitionStep(source))

	logger.Log.WithField("target", target).Info("transition started")
}

// commit lands the transition on its target.
func (m *Machine) commit() {
	target := m.target
	m.alpha = 0
	m.enter(target)
	if target == state.SceneExploration {
		m.bus.StartAmbient()
	}
	if d := m.ctx.Config.Transition.FadeIn; d > 0 {
		m.fade = gween.New(1, 0, float32(d), ease.OutQuad)
		m.fadeAlpha = 1
	}
}

func (m *Machine) sceneStep(s scene.Scene) func() {
	return func() {
		m.advanceClock()
		s.Update(m.ctx)
		m.stepFade()
	}
}

// transitionStep keeps the source scene alive beneath the fade and commits
// once alpha exceeds the threshold.
func (m *Machine) transitionStep(source scene.Scene) func() {
	return func() {
		m.advanceClock()
		if source != nil {
			source.Update(m.ctx)
		}
		m.alpha += m.ctx.Config.Transition.Step
		if m.alpha > m.ctx.Config.Transition.Commit {
			m.commit()
		}
	}
}

func (m *Machine) advanceClock() {
	m.ctx.Frame++
	m.ctx.Time += m.dt
}

func (m *Machine) stepFade() {
	if m.fade == nil {
		return
	}
	v, done := m.fade.Update(float32(m.dt))
	m.fadeAlpha = float64(v)
	if done {
		m.stopFade()
	}
}

func (m *Machine) stopFade() {
	m.fade = nil
	m.fadeAlpha = 0
}

func overlay(dst render.Surface, ctx *scene.Context, alpha float64) {
	if alpha <= 0 {
		return
	}
	dst.FillRect(0, 0, ctx.Width, ctx.Height, render.Fade(assets.Palette.Black, alpha))
}
