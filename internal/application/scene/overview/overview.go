// Package overview implements the regional map scene with the city marker.
package overview

import (
	"math"

	"github.com/younwookim/ziggurat/internal/application/scene"
	"github.com/younwookim/ziggurat/internal/application/state"
	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/infrastructure/assets"
	"github.com/younwookim/ziggurat/internal/infrastructure/logger"
	"github.com/younwookim/ziggurat/internal/render"
)

// MarkerID is the pseudo-entity reported while the city marker is hovered.
// The overview has no population; the marker is a fixed hotspot.
const MarkerID entity.ID = "city-marker"

var pal = assets.Palette

// Scene is the overview map
type Scene struct{}

// New creates the overview scene
func New() *Scene {
	return &Scene{}
}

func (s *Scene) ID() state.SceneID { return state.SceneOverview }

func (s *Scene) OnEnter(ctx *scene.Context) {
	logger.Log.WithField("scene", s.ID()).Debug("overview ready")
}

func (s *Scene) OnExit(ctx *scene.Context) {}

// Update has nothing to simulate; the map animates from elapsed time alone.
func (s *Scene) Update(ctx *scene.Context) {}

func (s *Scene) hotspot(ctx *scene.Context) entity.Rect {
	h := ctx.Config.Overview.Hotspot
	return entity.Rect{X: h.X, Y: h.Y, W: h.W, H: h.H}
}

func (s *Scene) HitTest(ctx *scene.Context, x, y float64) entity.ID {
	if s.hotspot(ctx).Contains(x, y) {
		return MarkerID
	}
	return entity.None
}

func (s *Scene) Click(ctx *scene.Context, id entity.ID) scene.Request {
	if id != MarkerID {
		return scene.None
	}
	return scene.TransitionTo(state.SceneExploration)
}

func (s *Scene) Draw(dst render.Surface, ctx *scene.Context) {
	w, h := ctx.Width, ctx.Height

	// Desert with irrigated strips
	dst.FillRect(0, 0, w, h, pal.Sand)
	for y := 8.0; y < h; y += 24 {
		for x := 0.0; x < w; x += 16 {
			if int(x/16+y/24)%3 == 0 {
				dst.FillRect(x+3, y, 6, 1, pal.SandDark)
			}
		}
	}

	// Mountains along the northern edge
	for i, x := 0, 4.0; x < w; i, x = i+1, x+26 {
		render.DrawBitmap(dst, assets.Peak, x, 6+float64(i%2)*6, 3, assets.Keys, false)
	}

	s.drawRiver(dst, ctx)

	// Fields flanking the river near the city
	dst.FillRect(92, 80, 36, 60, pal.Field)
	dst.FillRect(188, 96, 40, 52, pal.Field)

	s.drawCity(dst, ctx)

	dst.Text("THE LAND BETWEEN THE RIVERS", 8, h-16, pal.Robe)
}

// drawRiver draws a meandering band running north to south through the map.
func (s *Scene) drawRiver(dst render.Surface, ctx *scene.Context) {
	for y := 0.0; y < ctx.Height; y += 4 {
		cx := 124 + math.Sin(y/30)*18
		dst.FillRect(cx-8, y, 16, 4, pal.Water)
		shimmer := math.Sin(ctx.Time*2 + y/9)
		if shimmer > 0.7 {
			dst.FillRect(cx-3+shimmer*4, y+1, 4, 1, pal.WaterHi)
		}
	}
}

func (s *Scene) drawCity(dst render.Surface, ctx *scene.Context) {
	r := s.hotspot(ctx)
	hovered := ctx.Hovered == MarkerID

	if hovered {
		scene.DrawHighlight(dst, r, ctx.Pulse(1))
	}

	// Walled square with the temple as a stepped mound
	dst.FillRect(r.X+6, r.Y+10, r.W-12, r.H-14, pal.Mud)
	dst.StrokeRect(r.X+6, r.Y+10, r.W-12, r.H-14, 2, pal.Brick)
	dst.FillRect(r.X+r.W/2-6, r.Y+14, 12, 6, pal.Brick)
	dst.FillRect(r.X+r.W/2-3, r.Y+11, 6, 3, pal.BrickHi)

	bob := -math.Abs(math.Sin(ctx.Time*3)) * 2
	cols, _ := assets.Marker.Size()
	render.DrawBitmap(dst, assets.Marker, r.X+r.W/2-float64(cols), r.Y-4+bob, scene.Pixel, assets.Keys, false)

	if hovered {
		scene.DrawCaption(dst, "Enter the city", r.X+r.W/2, r.Y+r.H+4, pal.Gold)
	}
}
