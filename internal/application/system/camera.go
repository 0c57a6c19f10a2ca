package system

import (
	"math"

	"github.com/younwookim/ziggurat/internal/infrastructure/config"
)

// Camera is the vertical scroll controller. Its offset is the world y shown at
// the centre of the viewport and eases toward a target derived from the
// externally driven scroll percentage.
type Camera struct {
	cfg    config.CameraConfig
	scroll float64
	offset float64
}

// NewCamera creates a camera at scroll 0 and offset 0
func NewCamera(cfg config.CameraConfig) *Camera {
	return &Camera{cfg: cfg}
}

// SetScroll sets the scroll percentage, clamped to [0, 100]. NaN counts as 0.
func (c *Camera) SetScroll(pct float64) {
	if math.IsNaN(pct) {
		pct = 0
	}
	c.scroll = math.Max(0, math.Min(100, pct))
}

// Scroll returns the clamped scroll percentage
func (c *Camera) Scroll() float64 {
	return c.scroll
}

// Target returns the offset the camera is easing toward
func (c *Camera) Target() float64 {
	return c.scroll / 100 * c.cfg.Range
}

// Offset returns the current offset
func (c *Camera) Offset() float64 {
	return c.offset
}

// Step closes a fixed fraction of the remaining distance to the target
func (c *Camera) Step() {
	c.offset += (c.Target() - c.offset) * c.cfg.Ease
}

// Seed jumps straight to the target, used on entering a scrolling scene
func (c *Camera) Seed() {
	c.offset = c.Target()
}

// Reset zeroes the offset for non-scrolling scenes. The scroll percentage is kept.
func (c *Camera) Reset() {
	c.offset = 0
}

// NearLandmark reports whether the viewer has scrolled close to the landmark
func (c *Camera) NearLandmark() bool {
	return c.offset < c.cfg.NearLandmark
}

// ProjectY maps a world y to screen space for a viewport of height viewH
func (c *Camera) ProjectY(worldY, viewH float64) float64 {
	return worldY - c.offset + viewH/2
}

// Visible reports whether a projected span intersects the viewport extended by margin
func Visible(screenY, h, viewH, margin float64) bool {
	return screenY+h >= -margin && screenY <= viewH+margin
}
