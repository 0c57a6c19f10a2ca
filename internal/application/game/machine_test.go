package game

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/ziggurat/internal/application/scene"
	"github.com/younwookim/ziggurat/internal/application/scene/overview"
	"github.com/younwookim/ziggurat/internal/application/signal"
	"github.com/younwookim/ziggurat/internal/application/state"
	"github.com/younwookim/ziggurat/internal/application/system"
	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/infrastructure/config"
	"github.com/younwookim/ziggurat/internal/render"
)

// mockScene is a test double for the Scene interface
type mockScene struct {
	id      state.SceneID
	hit     entity.ID
	request scene.Request

	enterCalled  int
	exitCalled   int
	updateCalled int
	drawCalled   int
	clickCalled  int
}

func (m *mockScene) ID() state.SceneID                    { return m.id }
func (m *mockScene) OnEnter(*scene.Context)               { m.enterCalled++ }
func (m *mockScene) OnExit(*scene.Context)                { m.exitCalled++ }
func (m *mockScene) Update(*scene.Context)                { m.updateCalled++ }
func (m *mockScene) Draw(render.Surface, *scene.Context)  { m.drawCalled++ }
func (m *mockScene) HitTest(*scene.Context, float64, float64) entity.ID {
	return m.hit
}

func (m *mockScene) Click(*scene.Context, entity.ID) scene.Request {
	m.clickCalled++
	return m.request
}

type mockScenes struct {
	overview, city, interior *mockScene
}

func newMockMachine(t *testing.T) (*Machine, *signal.Bus, mockScenes) {
	t.Helper()
	ms := mockScenes{
		overview: &mockScene{id: state.SceneOverview, hit: "marker", request: scene.TransitionTo(state.SceneExploration)},
		city:     &mockScene{id: state.SceneExploration, hit: "temple", request: scene.TransitionTo(state.SceneInterior)},
		interior: &mockScene{id: state.SceneInterior, hit: "statue", request: scene.ShowLore()},
	}
	ctx := scene.NewContext(config.DefaultWorld(), 320, 240, rand.New(rand.NewSource(1)))
	bus := signal.NewBus()
	m := NewMachineWithScenes(ctx, bus, 1.0/60.0, ms.overview, ms.city, ms.interior)
	return m, bus, ms
}

func TestMachine_StartsInOverview(t *testing.T) {
	m, _, ms := newMockMachine(t)

	assert.Equal(t, state.SceneOverview, m.Scene())
	assert.Equal(t, 1, ms.overview.enterCalled)
	assert.True(t, m.Loop().Running())

	m.Tick()
	assert.Equal(t, 1, ms.overview.updateCalled)
	assert.Equal(t, 1, m.Context().Frame)
}

func TestMachine_TransitionCommitsAfterThreshold(t *testing.T) {
	m, _, ms := newMockMachine(t)

	m.Click(10, 10)
	require.Equal(t, state.SceneTransitioning, m.Scene())
	assert.Equal(t, state.SceneExploration, m.Target())
	assert.Zero(t, m.Alpha())

	// 20 steps of 1/16 land exactly on 1.25, which does not exceed it
	prev := m.Alpha()
	for i := 0; i < 20; i++ {
		m.Tick()
		assert.Greater(t, m.Alpha(), prev, "alpha rises every tick")
		prev = m.Alpha()
	}
	assert.Equal(t, state.SceneTransitioning, m.Scene())
	assert.Equal(t, 1.25, m.Alpha())
	assert.Zero(t, ms.city.enterCalled)

	m.Tick()
	assert.Equal(t, state.SceneExploration, m.Scene())
	assert.Zero(t, m.Alpha())
	assert.Equal(t, 1, ms.city.enterCalled)
	assert.Equal(t, 1, ms.overview.exitCalled)
}

func TestMachine_SourceSceneUpdatesDuringTransition(t *testing.T) {
	m, _, ms := newMockMachine(t)

	m.Click(10, 10)
	m.Tick()
	m.Tick()
	assert.Equal(t, 2, ms.overview.updateCalled)
	assert.Zero(t, ms.city.updateCalled)
}

func TestMachine_IgnoresInputWhileTransitioning(t *testing.T) {
	m, _, ms := newMockMachine(t)

	m.Click(10, 10)
	require.Equal(t, 1, ms.overview.clickCalled)

	m.Click(10, 10)
	m.PointerMove(10, 10)
	assert.Equal(t, 1, ms.overview.clickCalled)
	assert.Equal(t, entity.None, m.Hovered())
}

func TestMachine_DrawDuringTransition(t *testing.T) {
	t.Run("overview is the source for exploration", func(t *testing.T) {
		m, _, ms := newMockMachine(t)
		m.Click(10, 10)
		m.Tick()

		rec := render.NewRecorder(320, 240)
		m.Draw(rec)
		assert.Equal(t, 1, ms.overview.drawCalled)
		assert.Zero(t, ms.city.drawCalled)

		op, ok := rec.Last()
		require.True(t, ok)
		assert.Equal(t, render.OpFill, op.Kind)
		assert.Equal(t, 320.0, op.W)
		_, _, _, a := op.Color.RGBA()
		assert.Positive(t, a)
	})

	t.Run("exploration is the source for interior", func(t *testing.T) {
		m, _, ms := newMockMachine(t)
		m.SetScene(state.SceneExploration)
		m.Click(10, 10)
		require.Equal(t, state.SceneInterior, m.Target())

		m.Draw(render.NewRecorder(320, 240))
		assert.Equal(t, 1, ms.city.drawCalled)
		assert.Zero(t, ms.interior.drawCalled)
	})

	t.Run("overlay is opaque past full alpha", func(t *testing.T) {
		m, _, _ := newMockMachine(t)
		m.Click(10, 10)
		for i := 0; i < 18; i++ {
			m.Tick()
		}
		require.Greater(t, m.Alpha(), 1.0)

		rec := render.NewRecorder(320, 240)
		m.Draw(rec)
		op, _ := rec.Last()
		assert.Equal(t, uint8(255), op.Color.(color.NRGBA).A)
	})
}

func TestMachine_DrawNilSurface(t *testing.T) {
	m, _, ms := newMockMachine(t)
	assert.NotPanics(t, func() { m.Draw(nil) })
	assert.Zero(t, ms.overview.drawCalled)
}

func TestMachine_FadeInAfterCommit(t *testing.T) {
	m, _, _ := newMockMachine(t)
	m.Click(10, 10)
	for i := 0; i < 21; i++ {
		m.Tick()
	}
	require.Equal(t, state.SceneExploration, m.Scene())
	assert.Equal(t, 1.0, m.FadeIn())

	m.Tick()
	first := m.FadeIn()
	assert.Less(t, first, 1.0)

	// 0.4s at 60 ticks per second
	for i := 0; i < 30; i++ {
		m.Tick()
	}
	assert.Zero(t, m.FadeIn())
}

func TestMachine_AmbientOnlyForExploration(t *testing.T) {
	m, bus, _ := newMockMachine(t)
	ambient, cues := 0, 0
	bus.OnAmbient(func() { ambient++ })
	bus.OnSelection(func() { cues++ })

	m.Click(10, 10)
	for i := 0; i < 21; i++ {
		m.Tick()
	}
	bus.Flush()
	assert.Equal(t, 1, ambient)
	assert.Equal(t, 1, cues)

	m.Click(10, 10)
	for i := 0; i < 21; i++ {
		m.Tick()
	}
	bus.Flush()
	require.Equal(t, state.SceneInterior, m.Scene())
	assert.Equal(t, 1, ambient, "interior does not start ambient")
	assert.Equal(t, 2, cues)
}

func TestMachine_SceneChangedEvents(t *testing.T) {
	m, bus, _ := newMockMachine(t)
	var seen []state.SceneID
	bus.OnSceneChanged(func(id state.SceneID) { seen = append(seen, id) })

	m.Click(10, 10)
	for i := 0; i < 21; i++ {
		m.Tick()
	}
	bus.Flush()
	// the initial entry is still queued from construction
	assert.Equal(t, []state.SceneID{state.SceneOverview, state.SceneTransitioning, state.SceneExploration}, seen)
}

func TestMachine_CursorEventsOnChange(t *testing.T) {
	m, bus, ms := newMockMachine(t)
	var cursor []bool
	bus.OnCursor(func(p bool) { cursor = append(cursor, p) })

	m.PointerMove(10, 10)
	m.PointerMove(11, 10)
	assert.Equal(t, entity.ID("marker"), m.Hovered())

	ms.overview.hit = entity.None
	m.PointerMove(200, 200)
	m.PointerMove(201, 200)
	bus.Flush()

	assert.Equal(t, []bool{true, false}, cursor)
}

func TestMachine_ClickMiss(t *testing.T) {
	m, bus, ms := newMockMachine(t)
	cues := 0
	bus.OnSelection(func() { cues++ })
	ms.overview.hit = entity.None

	m.Click(300, 200)
	bus.Flush()
	assert.Equal(t, state.SceneOverview, m.Scene())
	assert.Zero(t, ms.overview.clickCalled)
	assert.Zero(t, cues)
}

func TestMachine_LoreRequest(t *testing.T) {
	m, bus, _ := newMockMachine(t)
	lore := 0
	bus.OnLore(func() { lore++ })

	m.SetScene(state.SceneInterior)
	m.Click(160, 100)
	bus.Flush()

	assert.Equal(t, 1, lore)
	assert.Equal(t, state.SceneInterior, m.Scene())
}

func TestMachine_SetScene(t *testing.T) {
	m, _, ms := newMockMachine(t)

	m.SetScene(state.SceneTransitioning)
	assert.Equal(t, state.SceneOverview, m.Scene(), "transitioning cannot be assigned")

	gen := m.Loop().Generation()
	m.SetScene(state.SceneInterior)
	assert.Equal(t, state.SceneInterior, m.Scene())
	assert.Equal(t, 1, ms.interior.enterCalled)
	assert.Equal(t, 1, ms.overview.exitCalled)
	assert.Greater(t, m.Loop().Generation(), gen)

	m.Tick()
	assert.Equal(t, 1, ms.interior.updateCalled)
	assert.Zero(t, ms.overview.updateCalled)
}

func TestMachine_SetSceneCancelsTransition(t *testing.T) {
	m, _, _ := newMockMachine(t)
	m.Click(10, 10)
	m.Tick()

	m.SetScene(state.SceneOverview)
	assert.Equal(t, state.SceneOverview, m.Scene())
	assert.Zero(t, m.Alpha())
}

func TestMachine_Exit(t *testing.T) {
	m, _, _ := newMockMachine(t)

	assert.False(t, m.Exit())
	m.SetScene(state.SceneInterior)
	assert.True(t, m.Exit())
	assert.Equal(t, state.SceneExploration, m.Scene())
	assert.True(t, m.Exit())
	assert.Equal(t, state.SceneOverview, m.Scene())
}

func TestMachine_SetScrollClamps(t *testing.T) {
	m, _, _ := newMockMachine(t)
	m.SetScroll(250)
	assert.Equal(t, 100.0, m.Scroll())
	m.SetScroll(-3)
	assert.Zero(t, m.Scroll())
}

func commitTransition(t *testing.T, m *Machine) {
	t.Helper()
	require.Equal(t, state.SceneTransitioning, m.Scene())
	for i := 0; i < 21; i++ {
		m.Tick()
	}
	require.NotEqual(t, state.SceneTransitioning, m.Scene())
}

func TestMachine_FullJourney(t *testing.T) {
	bus := signal.NewBus()
	lore := 0
	bus.OnLore(func() { lore++ })
	m := NewMachine(config.Default(), rand.New(rand.NewSource(7)), bus)
	ctx := m.Context()

	// Overview: the hotspot leads into the city
	hs := ctx.Config.Overview.Hotspot
	m.PointerMove(hs.X+hs.W/2, hs.Y+hs.H/2)
	assert.Equal(t, overview.MarkerID, m.Hovered())
	m.Click(hs.X+hs.W/2, hs.Y+hs.H/2)
	m.SetScroll(100)
	commitTransition(t, m)
	assert.Equal(t, state.SceneExploration, m.Scene())

	zig := ctx.Store.Get(system.LandmarkID)
	require.NotNil(t, zig)
	assert.Equal(t, ctx.Camera.Target(), ctx.Camera.Offset(), "camera seeded on entry")

	// The landmark is clickable once scrolled in
	sy := ctx.Camera.ProjectY(zig.Y, ctx.Height)
	m.Click(zig.X+zig.W/2, sy+zig.H/2)
	commitTransition(t, m)
	assert.Equal(t, state.SceneInterior, m.Scene())
	assert.Zero(t, ctx.Camera.Offset())

	statue := ctx.Store.Get(system.StatueID)
	require.NotNil(t, statue)
	assert.Nil(t, ctx.Store.Get(system.LandmarkID), "city population replaced")

	m.Click(statue.X+statue.W/2, statue.Y+statue.H/2)
	bus.Flush()
	assert.Equal(t, 1, lore)
}

func TestMachine_LandmarkGate(t *testing.T) {
	m := NewMachine(config.Default(), rand.New(rand.NewSource(7)), signal.NewBus())
	m.SetScroll(60)
	m.SetScene(state.SceneExploration)
	ctx := m.Context()

	zig := ctx.Store.Get(system.LandmarkID)
	require.NotNil(t, zig)
	sy := ctx.Camera.ProjectY(zig.Y, ctx.Height)
	m.Click(zig.X+zig.W/2, sy+zig.H/2)
	assert.Equal(t, state.SceneExploration, m.Scene(), "landmark locked at 60%")
}

func TestMachine_SetSceneRegenerates(t *testing.T) {
	m := NewMachine(config.Default(), rand.New(rand.NewSource(3)), signal.NewBus())
	ctx := m.Context()

	m.SetScene(state.SceneExploration)
	first := ctx.Store.Get(system.ExplorerID)
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		m.Tick()
	}

	m.SetScene(state.SceneExploration)
	second := ctx.Store.Get(system.ExplorerID)
	require.NotNil(t, second)
	assert.Zero(t, second.Frame, "fresh population")
}
