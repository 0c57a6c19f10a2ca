package game

import (
	"github.com/younwookim/ziggurat/internal/infrastructure/assets"
	"github.com/younwookim/ziggurat/internal/infrastructure/config"
	"github.com/younwookim/ziggurat/internal/render"
)

const (
	lorePanelW  = 260.0
	lorePanelH  = 132.0
	loreLineGap = 16.0
)

// LorePanel is the inscription overlay shown after the statue is clicked.
type LorePanel struct {
	cfg     config.LoreConfig
	visible bool
}

// NewLorePanel creates a hidden panel
func NewLorePanel(cfg config.LoreConfig) *LorePanel {
	return &LorePanel{cfg: cfg}
}

func (p *LorePanel) Show()         { p.visible = true }
func (p *LorePanel) Hide()         { p.visible = false }
func (p *LorePanel) Visible() bool { return p.visible }

// Draw renders the panel centred on dst. Hidden panels draw nothing.
func (p *LorePanel) Draw(dst render.Surface) {
	if !p.visible {
		return
	}
	w, h := dst.Size()
	x := (float64(w) - lorePanelW) / 2
	y := (float64(h) - lorePanelH) / 2

	dst.FillRect(0, 0, float64(w), float64(h), render.Fade(assets.Palette.Black, 0.5))
	dst.FillRect(x, y, lorePanelW, lorePanelH, render.Fade(assets.Palette.Night, 0.95))
	dst.StrokeRect(x, y, lorePanelW, lorePanelH, 1, assets.Palette.Gold)

	dst.Text(p.cfg.Title, x+12, y+10, assets.Palette.Gold)
	for i, line := range p.cfg.Lines {
		dst.Text(line, x+12, y+34+float64(i)*loreLineGap, assets.Palette.White)
	}
	dst.Text("click to close", x+lorePanelW-96, y+lorePanelH-18, render.Fade(assets.Palette.White, 0.6))
}
