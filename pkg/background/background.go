package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator paints roadside scenery: grass verges with trees and bushes
// above and below the road band.
type Generator struct {
	Width  int
	Height int

	// RoadTop and RoadBottom bound the band left bare for the road.
	RoadTop    int
	RoadBottom int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height, roadTop, roadBottom int) *Generator {
	return &Generator{
		Width:      width,
		Height:     height,
		RoadTop:    roadTop,
		RoadBottom: roadBottom,
	}
}

// GenerateVerge builds the scenery image. The same seed always yields the
// same picture.
func (g *Generator) GenerateVerge(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	base := color.RGBA{30, 100, 30, 255}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, base)
		}
	}

	// Grass speckle
	for i := 0; i < g.Width*g.Height/10; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(80 + rng.Intn(60))
		img.SetRGBA(x, y, color.RGBA{30, shade, 30, 255})
	}

	// Vegetation thins out towards the road
	for y := 0; y < g.Height; y += 10 {
		if y > g.RoadTop-20 && y < g.RoadBottom+30 {
			continue
		}
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)

		for x := 0; x < g.Width; x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}
			drawX := x + rng.Intn(10) - 5
			drawY := y + rng.Intn(10) - 5

			if rng.Float64() < 0.3 {
				g.drawTree(img, drawX, drawY, rng)
			} else {
				g.drawBush(img, drawX, drawY, rng)
			}
		}
	}

	return img
}

func (g *Generator) inVerge(px, py int) bool {
	if px < 0 || px >= g.Width || py < 0 || py >= g.Height {
		return false
	}
	return py < g.RoadTop || py >= g.RoadBottom
}

// drawTree draws a simple pine tree
func (g *Generator) drawTree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 30 + rng.Intn(20)
	width := 16 + rng.Intn(10)

	trunkColor := color.RGBA{60, 40, 20, 255}
	trunkW := 4 + rng.Intn(3)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			if px, py := x+tx, y-ty; g.inVerge(px, py) {
				img.SetRGBA(px, py, trunkColor)
			}
		}
	}

	leaves := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}

	for l := 0; l < 3; l++ {
		layerY := y - (height / 3) - (l * height / 4)
		layerW := max(width-(l*5), 5)

		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				if px, py := x+lx, layerY-ly; g.inVerge(px, py) {
					img.SetRGBA(px, py, leaves)
				}
			}
		}
	}
}

// drawBush draws a round bush
func (g *Generator) drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 4 + rng.Intn(8)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if px, py := x+dx, y+dy; g.inVerge(px, py) {
				img.SetRGBA(px, py, c)
			}
		}
	}
}
