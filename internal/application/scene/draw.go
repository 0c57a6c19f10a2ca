package scene

import (
	"image/color"
	"maps"
	"math"

	"github.com/younwookim/ziggurat/internal/application/system"
	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/infrastructure/assets"
	"github.com/younwookim/ziggurat/internal/render"
)

// Pixel is the size of one bitmap cell in logical units
const Pixel = 2.0

// glyphW approximates the advance of one caption character
const glyphW = 4.5

var pal = assets.Palette

// DrawEntity paints e with its top-left corner at screen position (sx, sy).
func DrawEntity(dst render.Surface, ctx *Context, e *entity.Entity, sx, sy float64) {
	switch b := e.Body.(type) {
	case *entity.NPC:
		drawNPC(dst, ctx, b, sx, sy)
	case *entity.Player:
		bob, _ := system.Pose(ctx.Config.NPC, ctx.Time, 1)
		render.DrawBitmap(dst, assets.Explorer, sx, sy+bob, Pixel, assets.Keys, false)
	case *entity.Building:
		drawBuilding(dst, ctx, e, b, sx, sy)
	case *entity.Decor:
		drawDecor(dst, e, b, sx, sy)
	case *entity.Boat:
		keys := assets.Keys
		if b.Color != (color.RGBA{}) {
			keys = recolor(keys, 'w', b.Color)
		}
		rock := math.Sin(ctx.Time*3+e.Y) * 0.5
		render.DrawBitmap(dst, assets.Boat, sx+rock, sy, Pixel, keys, false)
	case *entity.Ziggurat:
		drawZiggurat(dst, e, sx, sy)
	case *entity.Statue:
		drawStatue(dst, e, b, sx, sy)
	case *entity.Banner:
		drawBanner(dst, ctx, e, b, sx, sy)
	case nil:
		dst.FillRect(sx, sy, e.W, e.H, pal.MudDark)
	}
}

func drawNPC(dst render.Surface, ctx *Context, npc *entity.NPC, sx, sy float64) {
	bob, flip := system.Pose(ctx.Config.NPC, ctx.Time, npc.Speed)
	sprite, key := assets.Villager, 't'
	if npc.Role == entity.RolePriest {
		sprite, key = assets.Priest, 'r'
	}
	keys := assets.Keys
	if npc.Color != (color.RGBA{}) {
		keys = recolor(keys, key, npc.Color)
	}
	render.DrawBitmap(dst, sprite, sx, sy+bob, Pixel, keys, flip)
}

func drawBuilding(dst render.Surface, ctx *Context, e *entity.Entity, b *entity.Building, sx, sy float64) {
	switch b.Style {
	case entity.StyleHouse, entity.StyleLeader:
		roof := pal.Roof
		if b.Style == entity.StyleLeader {
			roof = pal.Brick
		}
		dst.FillRect(sx, sy, e.W, e.H, pal.Mud)
		dst.FillRect(sx, sy, e.W, 6, roof)
		dst.FillRect(sx, sy+e.H-2, e.W, 2, pal.MudDark)
		dst.FillRect(sx+e.W/2-3, sy+e.H-10, 6, 10, pal.Door)
		if b.Style == entity.StyleLeader {
			dst.FillRect(sx, sy+6, e.W, 1, pal.Gold)
			dst.FillRect(sx+4, sy+10, 4, 4, pal.Door)
			dst.FillRect(sx+e.W-8, sy+10, 4, 4, pal.Door)
		}
	case entity.StyleStall:
		dst.FillRect(sx+2, sy+6, e.W-4, e.H-6, pal.Roof)
		for i := 0.0; i < e.W; i += 8 {
			c := b.Awning
			if int(i/8)%2 == 1 {
				c = pal.Robe
			}
			dst.FillRect(sx+i, sy, math.Min(8, e.W-i), 6, c)
		}
		dst.FillRect(sx+4, sy+10, e.W-8, 3, pal.Reed)
	case entity.StyleTower:
		dst.FillRect(sx, sy, e.W, e.H, pal.Brick)
		dst.FillRect(sx, sy, e.W, 3, pal.BrickHi)
		for x := 0.0; x < e.W; x += 5 {
			dst.FillRect(sx+x, sy-3, 3, 3, pal.Brick)
		}
		render.DrawBitmap(dst, assets.Crest, sx+e.W/2-5, sy+8, Pixel, assets.Keys, false)
		if ctx.Pulse(1.5) > 0.5 {
			dst.FillRect(sx+e.W/2-1, sy+16, 2, 2, pal.Gold)
		}
	}
}

func drawDecor(dst render.Surface, e *entity.Entity, d *entity.Decor, sx, sy float64) {
	switch d.Style {
	case entity.DecorWall:
		dst.FillRect(sx, sy, e.W, e.H, pal.Brick)
		if e.W >= e.H {
			dst.FillRect(sx, sy, e.W, 2, pal.BrickHi)
			dst.FillRect(sx+e.W-1, sy, 1, e.H, pal.MudDark)
		} else {
			dst.FillRect(sx, sy, 2, e.H, pal.BrickHi)
			dst.FillRect(sx, sy+e.H-1, e.W, 1, pal.MudDark)
		}
	case entity.DecorTree:
		render.DrawBitmap(dst, assets.Tree, sx, sy, Pixel, assets.Keys, false)
	}
}

// drawZiggurat stacks three receding terraces with a central stair and shrine.
func drawZiggurat(dst render.Surface, e *entity.Entity, sx, sy float64) {
	tierH := (e.H - 12) / 3
	for i := 0; i < 3; i++ {
		inset := float64(i) * 14
		y := sy + e.H - float64(i+1)*tierH
		dst.FillRect(sx+inset, y, e.W-2*inset, tierH, pal.Brick)
		dst.FillRect(sx+inset, y, e.W-2*inset, 2, pal.BrickHi)
	}
	cx := sx + e.W/2
	dst.FillRect(cx-6, sy+12, 12, e.H-12, pal.Mud)
	for y := sy + 14; y < sy+e.H; y += 4 {
		dst.FillRect(cx-6, y, 12, 1, pal.MudDark)
	}
	dst.FillRect(cx-10, sy, 20, 12, pal.Mud)
	dst.FillRect(cx-10, sy, 20, 2, pal.Gold)
	dst.FillRect(cx-2, sy+4, 4, 8, pal.Door)
}

func drawStatue(dst render.Surface, e *entity.Entity, s *entity.Statue, sx, sy float64) {
	sprite := s.Sprite
	if len(sprite) == 0 {
		sprite = assets.Statue
	}
	cols, rows := sprite.Size()
	pixel := math.Min(e.W/float64(cols), e.H/float64(rows))
	render.DrawBitmap(dst, sprite, sx, sy, pixel, assets.Keys, false)
}

func drawBanner(dst render.Surface, ctx *Context, e *entity.Entity, b *entity.Banner, sx, sy float64) {
	sway := math.Sin(ctx.Time*1.5+e.X) * 0.8
	dst.FillRect(sx-2, sy, e.W+4, 3, pal.Trunk)
	dst.FillRect(sx+sway, sy+3, e.W, e.H-7, b.Color)
	for x := 0.0; x < e.W; x += 6 {
		dst.FillRect(sx+sway+x, sy+e.H-4, 3, 4, b.Color)
	}
	if len(b.Sigil) > 0 {
		cols, _ := b.Sigil.Size()
		render.DrawBitmap(dst, b.Sigil, sx+sway+e.W/2-float64(cols)*Pixel/2, sy+16, Pixel, assets.Keys, false)
	}
}

// DrawHighlight paints the hover outline and a glow whose strength follows pulse.
func DrawHighlight(dst render.Surface, r entity.Rect, pulse float64) {
	dst.FillRect(r.X-3, r.Y-3, r.W+6, r.H+6, render.Fade(pal.Gold, 0.12+0.22*pulse))
	dst.StrokeRect(r.X-1, r.Y-1, r.W+2, r.H+2, 1, pal.Gold)
}

// DrawCaption draws s horizontally centred on cx over a dark backing strip.
func DrawCaption(dst render.Surface, s string, cx, y float64, c color.Color) {
	w := float64(len(s)) * glyphW
	dst.FillRect(cx-w/2-3, y-1, w+6, 11, render.Fade(pal.Black, 0.6))
	dst.Text(s, cx-w/2, y, c)
}

func recolor(keys map[rune]color.RGBA, r rune, c color.RGBA) map[rune]color.RGBA {
	out := maps.Clone(keys)
	out[r] = c
	return out
}
