package vehicle

import "image/color"

const (
	// PollutionPerSpeed converts speed into pollution units per second
	PollutionPerSpeed = 0.05

	// WrapX is where a vehicle re-enters after leaving the right edge
	WrapX = -60.0

	Width  = 50.0
	Height = 30.0
)

// Vehicle is a car driving left to right along one lane of the road
type Vehicle struct {
	X, Y          float64
	Speed         float64 // pixels per frame
	Color         color.Color
	PollutionRate float64 // pollution units per second, always Speed * PollutionPerSpeed
}

// New creates a vehicle at (x, y) travelling at speed
func New(x, y, speed float64, clr color.Color) *Vehicle {
	v := &Vehicle{X: x, Y: y, Color: clr}
	v.SetSpeed(speed)
	return v
}

// SetSpeed changes the speed and the pollution rate derived from it.
func (v *Vehicle) SetSpeed(speed float64) {
	v.Speed = speed
	v.PollutionRate = speed * PollutionPerSpeed
}

// Move advances the vehicle by one frame's worth of speed. Movement is
// per frame, not scaled by elapsed time. Once the vehicle passes the right
// edge of a surface surfaceWidth wide it jumps back to WrapX.
func (v *Vehicle) Move(surfaceWidth float64) {
	v.X += v.Speed
	if v.X > surfaceWidth {
		v.X = WrapX
	}
}

// GeneratePollution returns the pollution emitted over deltaTime seconds
func (v *Vehicle) GeneratePollution(deltaTime float64) float64 {
	return v.PollutionRate * deltaTime
}
