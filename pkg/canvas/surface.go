package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is an immediate-mode 2D drawing target. Coordinates are in
// logical pixels with the origin at the top-left corner.
type Surface interface {
	Width() float64
	Height() float64
	Clear()
	FillRect(x, y, width, height float64, clr color.Color)
	FillCircle(cx, cy, radius float64, clr color.Color)
}

// EbitenSurface draws onto an offscreen ebiten image. The image keeps its
// contents between frames until Clear is called, so a stopped simulation
// still shows the last frame it painted.
type EbitenSurface struct {
	image      *ebiten.Image
	background *ebiten.Image
	clearColor color.Color
}

// NewEbitenSurface allocates a width x height offscreen image
func NewEbitenSurface(width, height int) *EbitenSurface {
	return &EbitenSurface{
		image:      ebiten.NewImage(width, height),
		clearColor: color.RGBA{235, 235, 235, 255},
	}
}

// SetBackground sets an image that is painted after every Clear.
// Passing nil restores the plain clear colour.
func (s *EbitenSurface) SetBackground(img *ebiten.Image) {
	s.background = img
}

// Image returns the offscreen image so the caller can blit it to the screen.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.image
}

func (s *EbitenSurface) Width() float64 {
	return float64(s.image.Bounds().Dx())
}

func (s *EbitenSurface) Height() float64 {
	return float64(s.image.Bounds().Dy())
}

func (s *EbitenSurface) Clear() {
	s.image.Fill(s.clearColor)
	if s.background != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(
			s.Width()/float64(s.background.Bounds().Dx()),
			s.Height()/float64(s.background.Bounds().Dy()),
		)
		s.image.DrawImage(s.background, op)
	}
}

func (s *EbitenSurface) FillRect(x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(s.image, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func (s *EbitenSurface) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(s.image, float32(cx), float32(cy), float32(radius), clr, true)
}

var (
	_ Surface = (*EbitenSurface)(nil)
	_ Surface = (*Recorder)(nil)
)
