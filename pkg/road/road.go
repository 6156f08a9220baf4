package road

import (
	"image/color"

	"github.com/golangdaddy/speedbreaker/pkg/canvas"
)

var (
	AsphaltColor   = color.RGBA{0x75, 0x75, 0x75, 255}
	LightOnColor   = color.RGBA{0xFF, 0xFF, 0x00, 255}
	LightOffColor  = color.RGBA{0x77, 0x77, 0x77, 255}
	LaneLineColor  = color.RGBA{240, 240, 240, 255}
	BreakerColor   = color.RGBA{0, 0, 0, 255}
	KerbStoneColor = color.RGBA{190, 190, 180, 255}
)

// Road is the horizontal band the vehicles drive along, with a row of
// street light posts above it.
type Road struct {
	Top        float64 // Y of the upper edge
	Height     float64
	LightY     float64
	LightW     float64
	LightH     float64
	LightStart float64 // X of the first post
	LightGap   float64 // distance between posts
	LaneLines  []float64
}

// NewRoad returns the standard road layout
func NewRoad() *Road {
	return &Road{
		Top:        100,
		Height:     400,
		LightY:     60,
		LightW:     10,
		LightH:     50,
		LightStart: 200,
		LightGap:   200,
		LaneLines:  []float64{200, 330},
	}
}

// Draw paints the asphalt band across the full surface width
func (r *Road) Draw(surface canvas.Surface) {
	w := surface.Width()
	surface.FillRect(0, r.Top, w, r.Height, AsphaltColor)

	// Kerbs
	surface.FillRect(0, r.Top, w, 3, KerbStoneColor)
	surface.FillRect(0, r.Top+r.Height-3, w, 3, KerbStoneColor)

	// Dashed lane markings between the three lanes
	for _, y := range r.LaneLines {
		for x := 0.0; x < w; x += 40 {
			surface.FillRect(x, y, 20, 3, LaneLineColor)
		}
	}
}

// LightPosts returns the X position of every street light that fits on a
// surface of the given width.
func (r *Road) LightPosts(surfaceWidth float64) []float64 {
	var posts []float64
	for x := r.LightStart; x < surfaceWidth; x += r.LightGap {
		posts = append(posts, x)
	}
	return posts
}

// DrawStreetLights paints every light post, lit when the breaker has
// produced enough electricity.
func (r *Road) DrawStreetLights(surface canvas.Surface, lit bool) {
	clr := LightOffColor
	if lit {
		clr = LightOnColor
	}
	for _, x := range r.LightPosts(surface.Width()) {
		surface.FillRect(x, r.LightY, r.LightW, r.LightH, clr)
	}
}
