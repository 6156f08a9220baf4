package road

import (
	"github.com/golangdaddy/speedbreaker/pkg/canvas"
	"github.com/golangdaddy/speedbreaker/pkg/vehicle"
)

// ElectricityPerSpeed is the breaker's conversion efficiency
const ElectricityPerSpeed = 0.05

// ElectricitySink receives the energy harvested by a speed breaker
type ElectricitySink interface {
	AddElectricity(amount float64)
}

// SpeedBreaker is a fixed bar across the road that harvests energy from
// passing vehicles.
type SpeedBreaker struct {
	X, Y          float64
	Width, Height float64
}

// NewSpeedBreaker places a breaker at x on the standard road
func NewSpeedBreaker(x float64) *SpeedBreaker {
	return &SpeedBreaker{X: x, Y: 350, Width: 60, Height: 15}
}

func (b *SpeedBreaker) Draw(surface canvas.Surface) {
	surface.FillRect(b.X, b.Y, b.Width, b.Height, BreakerColor)
}

// Overlaps reports whether the vehicle's x lies strictly inside the
// breaker's span. Only the vehicle's x is compared: its y and width are
// ignored, so a vehicle in any lane interacts with the breaker.
func (b *SpeedBreaker) Overlaps(v *vehicle.Vehicle) bool {
	return v.X > b.X && v.X < b.X+b.Width
}

// GenerateElectricity feeds speed * efficiency * deltaTime into sink while
// v overlaps the breaker and reports whether it did.
func (b *SpeedBreaker) GenerateElectricity(v *vehicle.Vehicle, deltaTime float64, sink ElectricitySink) bool {
	if !b.Overlaps(v) {
		return false
	}
	sink.AddElectricity(v.Speed * ElectricityPerSpeed * deltaTime)
	return true
}
