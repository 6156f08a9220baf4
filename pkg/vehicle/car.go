package vehicle

import (
	"image/color"

	"github.com/golangdaddy/speedbreaker/pkg/canvas"
)

// EmissionColor is the translucent smoke puff left behind each vehicle
var EmissionColor = color.RGBA{0, 0, 0, 77}

const emissionRadius = 8.0

// Draw paints the car body and its trailing emission puff
func (v *Vehicle) Draw(surface canvas.Surface) {
	surface.FillRect(v.X, v.Y, Width, Height, v.Color)

	// Exhaust sits just behind the rear bumper, level with the middle of the body
	surface.FillCircle(v.X-10, v.Y+Height/2, emissionRadius, EmissionColor)
}
