// pkg/render/engo/palette.go
package engo

import (
	"image/color"

	"github.com/opd-ai/go-boink/pkg/vehicle"
)

// Palette holds the flat colours used to draw a session.
type Palette struct {
	Background      color.Color
	Solid           color.Color
	Ball            color.Color
	ChassisGrounded color.Color
	ChassisAirborne color.Color
	Wheel           color.Color
}

// DefaultPalette returns the standard colours.
func DefaultPalette() Palette {
	return Palette{
		Background:      color.RGBA{24, 28, 38, 255},
		Solid:           color.RGBA{96, 104, 120, 255},
		Ball:            color.RGBA{240, 240, 240, 255},
		ChassisGrounded: color.RGBA{64, 140, 255, 255},
		ChassisAirborne: color.RGBA{255, 150, 40, 255},
		Wheel:           color.RGBA{30, 30, 30, 255},
	}
}

// Chassis returns the chassis colour for a classification.
func (p Palette) Chassis(s vehicle.State) color.Color {
	if s == vehicle.Airborne {
		return p.ChassisAirborne
	}
	return p.ChassisGrounded
}
