package scene

import (
	"github.com/golangdaddy/speedbreaker/pkg/canvas"
	"github.com/golangdaddy/speedbreaker/pkg/road"
	"github.com/golangdaddy/speedbreaker/pkg/vehicle"
)

// LightThreshold is the electricity level above which the street lights
// switch on
const LightThreshold = 1.0

// Renderer paints the scene onto a surface. It holds no frame state; the
// caller decides draw order.
type Renderer struct {
	surface canvas.Surface
	road    *road.Road
	breaker *road.SpeedBreaker
}

// NewRenderer creates a renderer for the given road and breaker
func NewRenderer(surface canvas.Surface, rd *road.Road, breaker *road.SpeedBreaker) *Renderer {
	return &Renderer{
		surface: surface,
		road:    rd,
		breaker: breaker,
	}
}

func (r *Renderer) Surface() canvas.Surface {
	return r.surface
}

// Clear wipes the surface
func (r *Renderer) Clear() {
	r.surface.Clear()
}

// DrawBackdrop clears the surface and paints the road and street lights.
// Lights are lit only while electricity exceeds LightThreshold; the check
// is made fresh every frame.
func (r *Renderer) DrawBackdrop(electricity float64) {
	r.surface.Clear()
	r.road.Draw(r.surface)
	r.road.DrawStreetLights(r.surface, LightsOn(electricity))
}

func (r *Renderer) DrawVehicle(v *vehicle.Vehicle) {
	v.Draw(r.surface)
}

func (r *Renderer) DrawBreaker() {
	r.breaker.Draw(r.surface)
}

// LightsOn reports whether the street lights should be lit
func LightsOn(electricity float64) bool {
	return electricity > LightThreshold
}
