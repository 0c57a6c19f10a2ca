// Package city implements the scrolling exploration of the walled river city.
package city

import (
	"github.com/sirupsen/logrus"
	"github.com/younwookim/ziggurat/internal/application/scene"
	"github.com/younwookim/ziggurat/internal/application/state"
	"github.com/younwookim/ziggurat/internal/application/system"
	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/infrastructure/assets"
	"github.com/younwookim/ziggurat/internal/infrastructure/logger"
	"github.com/younwookim/ziggurat/internal/render"
)

// cullMargin keeps tall sprites that start above the viewport
const cullMargin = 48.0

var pal = assets.Palette

// Scene is the city exploration
type Scene struct{}

// New creates the city scene
func New() *Scene {
	return &Scene{}
}

func (s *Scene) ID() state.SceneID { return state.SceneExploration }

// OnEnter generates a fresh city and seeds the camera from the current
// scroll so the view does not jump.
func (s *Scene) OnEnter(ctx *scene.Context) {
	ctx.Store.Replace(system.GenerateCity(ctx.Config, ctx.Rand))
	ctx.Particles.Clear()
	ctx.Camera.Seed()

	logger.Log.WithFields(logrus.Fields{
		"scene":    s.ID(),
		"entities": ctx.Store.Len(),
		"offset":   ctx.Camera.Offset(),
	}).Debug("city generated")
}

func (s *Scene) OnExit(ctx *scene.Context) {
	ctx.Particles.Clear()
}

func (s *Scene) Update(ctx *scene.Context) {
	ctx.Camera.Step()
	ctx.Motion.Update(ctx.Store, ctx.Camera)
	ctx.Sparks.Update(ctx.Particles, ctx.Camera)
}

func (s *Scene) HitTest(ctx *scene.Context, x, y float64) entity.ID {
	if !system.LandmarkUnlocked(ctx.Camera, ctx.Config.Landmark) {
		return entity.None
	}
	zig := ctx.Store.Get(system.LandmarkID)
	if zig == nil {
		return entity.None
	}
	if system.LandmarkRegion(zig, ctx.Camera, ctx.Height, ctx.Config.Landmark).Contains(x, y) {
		return system.LandmarkID
	}
	return entity.None
}

func (s *Scene) Click(ctx *scene.Context, id entity.ID) scene.Request {
	if id != system.LandmarkID || !system.LandmarkUnlocked(ctx.Camera, ctx.Config.Landmark) {
		return scene.None
	}
	return scene.TransitionTo(state.SceneInterior)
}

func (s *Scene) Draw(dst render.Surface, ctx *scene.Context) {
	cam := ctx.Camera

	s.drawGround(dst, ctx)
	s.drawRiver(dst, ctx)
	s.drawAvenue(dst, ctx)

	ctx.Store.SortByDepth()
	ctx.Store.Each(func(e *entity.Entity) {
		sy := cam.ProjectY(e.Y, ctx.Height)
		if !system.Visible(sy, e.H, ctx.Height, cullMargin) {
			return
		}
		scene.DrawEntity(dst, ctx, e, e.X, sy)
	})

	ctx.Particles.Each(func(p *entity.Particle) {
		dst.FillRect(p.X, cam.ProjectY(p.Y, ctx.Height), 2, 2, render.Fade(p.Color, p.Life))
	})

	s.drawSignage(dst, ctx)
	s.drawLandmarkCue(dst, ctx)
}

// drawGround fills the sand and scatters specks keyed to world cells so the
// texture scrolls with the camera.
func (s *Scene) drawGround(dst render.Surface, ctx *scene.Context) {
	const cell = 16.0
	dst.FillRect(0, 0, ctx.Width, ctx.Height, pal.Sand)

	top := ctx.Camera.Offset() - ctx.Height/2
	first := float64(int(top/cell)-1) * cell
	for wy := first; wy < top+ctx.Height+cell; wy += cell {
		sy := ctx.Camera.ProjectY(wy, ctx.Height)
		for wx := 0.0; wx < ctx.Width; wx += cell {
			h := hash(int(wx/cell), int(wy/cell))
			if h%3 != 0 {
				continue
			}
			dst.FillRect(wx+float64(h%11), sy+float64(h%7), 2, 1, pal.SandDark)
		}
	}
}

func (s *Scene) drawRiver(dst render.Surface, ctx *scene.Context) {
	dst.FillRect(system.RiverX, 0, system.RiverW, ctx.Height, pal.Water)
	// Ripples drift downstream with time and stay fixed to the world
	for i := 0; i < 12; i++ {
		wy := ctx.Camera.Offset() - ctx.Height/2 + float64(i*20) + float64(int(ctx.Time*12)%20)
		dst.FillRect(system.RiverX+4+float64(i%3)*6, ctx.Camera.ProjectY(wy, ctx.Height), 5, 1, pal.WaterHi)
	}
}

func (s *Scene) drawAvenue(dst render.Surface, ctx *scene.Context) {
	north := ctx.Camera.ProjectY(system.LandmarkY+system.LandmarkH, ctx.Height)
	south := ctx.Camera.ProjectY(system.CitySouth+system.WallThick, ctx.Height)
	top := max(0, north)
	bottom := min(ctx.Height, south)
	if bottom <= top {
		return
	}
	dst.FillRect(system.AvenueWest, top, system.AvenueEast-system.AvenueWest, bottom-top, pal.SandDark)
}

// drawSignage labels the gates when they are on screen.
func (s *Scene) drawSignage(dst render.Surface, ctx *scene.Context) {
	gate := ctx.Camera.ProjectY(system.CitySouth, ctx.Height)
	if system.Visible(gate, 10, ctx.Height, 0) {
		scene.DrawCaption(dst, "MAIN GATE", 160, gate-14, pal.Robe)
	}
	river := ctx.Camera.ProjectY(-328, ctx.Height)
	if system.Visible(river, 10, ctx.Height, 0) {
		dst.Text("RIVER GATE", system.CityWest+10, river, pal.Robe)
	}
}

// drawLandmarkCue highlights the temple when hovered, and pulses on its own
// once the viewer is near it.
func (s *Scene) drawLandmarkCue(dst render.Surface, ctx *scene.Context) {
	zig := ctx.Store.Get(system.LandmarkID)
	if zig == nil {
		return
	}
	hovered := ctx.Hovered == system.LandmarkID
	periodic := ctx.Camera.NearLandmark() && ctx.Pulse(2) > 0.5
	if !hovered && !periodic {
		return
	}

	sy := ctx.Camera.ProjectY(zig.Y, ctx.Height)
	scene.DrawHighlight(dst, entity.Rect{X: zig.X, Y: sy, W: zig.W, H: zig.H}, ctx.Pulse(1))

	msg := "Scroll closer to the temple"
	if system.LandmarkUnlocked(ctx.Camera, ctx.Config.Landmark) {
		msg = "Click to enter the temple"
	}
	scene.DrawCaption(dst, msg, zig.X+zig.W/2, sy+zig.H+6, pal.Gold)
}

func hash(x, y int) int {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return int((h ^ (h >> 16)) & 0x7fffffff)
}
