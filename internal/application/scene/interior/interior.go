// Package interior implements the temple interior with the patron statue.
package interior

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/ziggurat/internal/application/scene"
	"github.com/younwookim/ziggurat/internal/application/state"
	"github.com/younwookim/ziggurat/internal/application/system"
	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/infrastructure/assets"
	"github.com/younwookim/ziggurat/internal/infrastructure/logger"
	"github.com/younwookim/ziggurat/internal/render"
)

const (
	wallH     = 44.0
	tile      = 16.0
	lightCell = 8.0
	// maxDark is the overlay opacity at the farthest corner
	maxDark = 0.85
)

var pal = assets.Palette

// Scene is the temple interior. Interior coordinates are screen coordinates;
// the camera is held at zero.
type Scene struct{}

// New creates the interior scene
func New() *Scene {
	return &Scene{}
}

func (s *Scene) ID() state.SceneID { return state.SceneInterior }

func (s *Scene) OnEnter(ctx *scene.Context) {
	ctx.Store.Replace(system.GenerateInterior())
	ctx.Particles.Clear()
	ctx.Camera.Reset()

	logger.Log.WithFields(logrus.Fields{
		"scene":    s.ID(),
		"entities": ctx.Store.Len(),
	}).Debug("interior generated")
}

func (s *Scene) OnExit(ctx *scene.Context) {}

func (s *Scene) Update(ctx *scene.Context) {
	ctx.Motion.Update(ctx.Store, ctx.Camera)
}

func (s *Scene) HitTest(ctx *scene.Context, x, y float64) entity.ID {
	statue := ctx.Store.Get(system.StatueID)
	if statue != nil && statue.Bounds().Contains(x, y) {
		return system.StatueID
	}
	return entity.None
}

func (s *Scene) Click(ctx *scene.Context, id entity.ID) scene.Request {
	if id != system.StatueID {
		return scene.None
	}
	return scene.ShowLore()
}

func (s *Scene) Draw(dst render.Surface, ctx *scene.Context) {
	s.drawRoom(dst, ctx)

	ctx.Store.SortByDepth()
	ctx.Store.Each(func(e *entity.Entity) {
		scene.DrawEntity(dst, ctx, e, e.X, e.Y)
	})

	statue := ctx.Store.Get(system.StatueID)
	if statue != nil && ctx.Hovered == system.StatueID {
		scene.DrawHighlight(dst, statue.Bounds(), ctx.Pulse(1))
	}

	s.drawLighting(dst, ctx, statue)

	// Captions sit above the darkness so they stay legible
	if statue != nil && ctx.Hovered == system.StatueID {
		scene.DrawCaption(dst, "Read the inscription", statue.X+statue.W/2, statue.Y+statue.H+6, pal.Gold)
	}
}

// drawRoom paints the back wall, pillars, tiled floor, carpet and braziers.
func (s *Scene) drawRoom(dst render.Surface, ctx *scene.Context) {
	w, h := ctx.Width, ctx.Height

	dst.FillRect(0, 0, w, wallH, pal.Stone)
	for x := 0.0; x < w; x += 24 {
		dst.FillRect(x, wallH-4, 20, 1, pal.StoneHi)
	}

	for y := wallH; y < h; y += tile {
		for x := 0.0; x < w; x += tile {
			c := pal.Floor
			if int(x/tile+y/tile)%2 == 0 {
				c = pal.FloorAlt
			}
			dst.FillRect(x, y, tile, tile, c)
		}
	}

	for _, x := range []float64{40, 264} {
		dst.FillRect(x, 0, 16, h, pal.Stone)
		dst.FillRect(x, 0, 3, h, pal.StoneHi)
	}

	dst.FillRect(w/2-18, 124, 36, h-124, pal.Red)
	dst.FillRect(w/2-16, 124, 2, h-124, pal.Gold)
	dst.FillRect(w/2+14, 124, 2, h-124, pal.Gold)

	for _, x := range []float64{128, 186} {
		flicker := 0.5 + 0.5*math.Sin(ctx.Time*9+x)
		dst.FillRect(x, 116, 6, 8, pal.Stone)
		dst.FillRect(x+1, 112-flicker*2, 4, 4+flicker*2, pal.Gold)
	}
}

// drawLighting darkens the frame in blocks, bright near the statue and
// darkest at the corners.
func (s *Scene) drawLighting(dst render.Surface, ctx *scene.Context, statue *entity.Entity) {
	cx, cy := ctx.Width/2, ctx.Height/2
	if statue != nil {
		cx, cy = statue.X+statue.W/2, statue.Y+statue.H/2
	}
	far := math.Max(
		math.Hypot(cx, cy),
		math.Max(math.Hypot(ctx.Width-cx, cy), math.Max(math.Hypot(cx, ctx.Height-cy), math.Hypot(ctx.Width-cx, ctx.Height-cy))),
	)

	for y := 0.0; y < ctx.Height; y += lightCell {
		for x := 0.0; x < ctx.Width; x += lightCell {
			d := math.Hypot(x+lightCell/2-cx, y+lightCell/2-cy) / far
			a := Darkness(d)
			if a <= 0 {
				continue
			}
			dst.FillRect(x, y, lightCell, lightCell, render.Fade(pal.Black, a))
		}
	}
}

// Darkness maps a normalized distance from the light to overlay opacity.
func Darkness(d float64) float64 {
	d = math.Max(0, math.Min(1, d))
	return maxDark * math.Pow(d, 1.5)
}
