package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	ButtonColor       = color.RGBA{40, 40, 60, 255}
	ButtonHoverColor  = color.RGBA{60, 100, 140, 255}
	ButtonBorderColor = color.RGBA{80, 80, 100, 255}
	ButtonTextColor   = color.RGBA{255, 255, 255, 255}
	TrackColor        = color.RGBA{90, 90, 110, 255}
	KnobColor         = color.RGBA{255, 200, 50, 255}
	LabelColor        = color.RGBA{200, 200, 200, 255}
)

// Button is a clickable rectangle with a centred label
type Button struct {
	X, Y          float64
	Width, Height float64
	Label         string
}

func NewButton(label string, x, y, width, height float64) *Button {
	return &Button{X: x, Y: y, Width: width, Height: height, Label: label}
}

// Contains reports whether the point (px, py) is inside the button
func (b *Button) Contains(px, py int) bool {
	x, y := float64(px), float64(py)
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Draw renders the button, highlighted while hovered
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	bg := ButtonColor
	if hovered {
		bg = ButtonHoverColor
	}
	drawButton(screen, b.Label, b.X, b.Y, b.Width, b.Height, bg, ButtonTextColor)
}

// Slider is a horizontal integer slider
type Slider struct {
	X, Y          float64
	Width, Height float64
	Min, Max      int
	Value         int
}

func NewSlider(x, y, width, height float64, lo, hi, value int) *Slider {
	return &Slider{X: x, Y: y, Width: width, Height: height, Min: lo, Max: hi, Value: value}
}

// Contains reports whether the point (px, py) is on the slider track,
// with a few pixels of slack around it.
func (s *Slider) Contains(px, py int) bool {
	x, y := float64(px), float64(py)
	const slack = 6
	return x >= s.X-slack && x <= s.X+s.Width+slack && y >= s.Y-slack && y <= s.Y+s.Height+slack
}

// ValueAt maps an x coordinate on the track to the nearest slider value
func (s *Slider) ValueAt(px int) int {
	if s.Max <= s.Min || s.Width <= 0 {
		return s.Min
	}
	ratio := (float64(px) - s.X) / s.Width
	ratio = math.Max(0, math.Min(1, ratio))
	return s.Min + int(math.Round(ratio*float64(s.Max-s.Min)))
}

// KnobX returns the x coordinate of the knob centre for the current value
func (s *Slider) KnobX() float64 {
	if s.Max <= s.Min {
		return s.X
	}
	return s.X + s.Width*float64(s.Value-s.Min)/float64(s.Max-s.Min)
}

func (s *Slider) Draw(screen *ebiten.Image) {
	trackH := float32(4)
	midY := float32(s.Y + s.Height/2)
	vector.DrawFilledRect(screen, float32(s.X), midY-trackH/2, float32(s.Width), trackH, TrackColor, false)
	vector.DrawFilledCircle(screen, float32(s.KnobX()), midY, float32(s.Height/2), KnobColor, true)
}

// drawButton draws a button with background, border and centred text
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bgColor, false)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(width)-2, float32(height)-2, 2, ButtonBorderColor, false)

	face := text.NewGoXFace(bitmapfont.Face)
	textWidth := text.Advance(label, face)

	// Bitmap font is ~16px tall, so its centre sits ~8px below the origin
	textX := x + width/2 - textWidth/2
	textY := y + height/2 - 8

	op := &text.DrawOptions{}
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, label, face, op)
}

// DrawText draws str with its top-left corner at (x, y), scaled to size px
func DrawText(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	face := text.NewGoXFace(bitmapfont.Face)
	scale := size / 16.0

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawCenteredText draws str centred on (centerX, centerY)
func drawCenteredText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	face := text.NewGoXFace(bitmapfont.Face)
	scale := size / 16.0
	scaledWidth := text.Advance(str, face) * scale
	scaledHeight := 16.0 * scale
	DrawText(screen, str, centerX-scaledWidth/2, centerY-scaledHeight/2, size, clr)
}
