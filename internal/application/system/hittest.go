package system

import (
	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/infrastructure/config"
)

// ToLogical rescales a physical pointer position on an element of size
// physW×physH to logical canvas units. A degenerate element maps to the origin.
func ToLogical(px, py, physW, physH float64, logicalW, logicalH int) (float64, float64) {
	if physW <= 0 || physH <= 0 {
		return 0, 0
	}
	return px * float64(logicalW) / physW, py * float64(logicalH) / physH
}

// LandmarkRegion returns the landmark's clickable screen rectangle: its
// projected footprint widened by PadX on each side and raised by Rise.
func LandmarkRegion(e *entity.Entity, cam *Camera, viewH float64, cfg config.LandmarkConfig) entity.Rect {
	sy := cam.ProjectY(e.Y, viewH)
	return entity.Rect{
		X: e.X - cfg.PadX,
		Y: sy - cfg.Rise,
		W: e.W + 2*cfg.PadX,
		H: e.H + cfg.Rise,
	}
}

// LandmarkUnlocked reports whether the scroll target is past the click gate
func LandmarkUnlocked(cam *Camera, cfg config.LandmarkConfig) bool {
	return cam.Scroll() > cfg.ScrollGate
}
