// pkg/render/engo/viewport.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-boink/pkg/physics"
)

// Viewport maps arena metres to window pixels. The arena fills the window
// width and is centred vertically.
type Viewport struct {
	bounds  physics.Rect
	screenW float32
	screenH float32
	ppm     float32
	offsetY float32
}

// NewViewport fits bounds to a screenW x screenH window.
func NewViewport(screenW, screenH float32, bounds physics.Rect) Viewport {
	v := Viewport{bounds: bounds}
	v.Resize(screenW, screenH)
	return v
}

// Resize recomputes the scale for a new window size.
func (v *Viewport) Resize(screenW, screenH float32) {
	v.screenW = screenW
	v.screenH = screenH
	v.ppm = screenW / float32(v.bounds.Width)
	v.offsetY = (screenH - float32(v.bounds.Height)*v.ppm) / 2
}

// PixelsPerMetre returns the current scale.
func (v Viewport) PixelsPerMetre() float32 {
	return v.ppm
}

// ToScreen converts a world point to window pixels.
func (v Viewport) ToScreen(p physics.Vector2D) engo.Point {
	corner := v.bounds.Corner()
	return engo.Point{
		X: float32(p.X-corner.X) * v.ppm,
		Y: float32(p.Y-corner.Y)*v.ppm + v.offsetY,
	}
}

// ToWorld converts window pixels back to a world point.
func (v Viewport) ToWorld(p engo.Point) physics.Vector2D {
	corner := v.bounds.Corner()
	return physics.Vector2D{
		X: float64(p.X/v.ppm) + corner.X,
		Y: float64((p.Y-v.offsetY)/v.ppm) + corner.Y,
	}
}

// Length converts metres to pixels.
func (v Viewport) Length(metres float64) float32 {
	return float32(metres) * v.ppm
}
