package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen is shown before the simulation and waits for any key or click
type TitleScreen struct {
	startTime  time.Time
	onContinue func()
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onContinue func()) *TitleScreen {
	return &TitleScreen{
		startTime:  time.Now(),
		onContinue: onContinue,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onContinue != nil {
			ts.onContinue()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()

	titleText := "SPEED BREAKER"
	face := text.NewGoXFace(bitmapfont.Face)
	textWidth := text.Advance(titleText, face)

	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulse between 1.0x and 1.1x
	pulseScale := 1.0 + 0.1*sinWave(elapsed*2.0)
	titleScale := 5.0 * pulseScale

	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(titleScale, titleScale)
	titleOp.GeoM.Translate(centerX-textWidth*titleScale/2, centerY-8)

	brightness := math.Min(1.0, 1.0+0.2*sinWave(elapsed*1.5))
	titleOp.ColorScale.ScaleWithColor(color.RGBA{
		uint8(255 * brightness),
		uint8(255 * brightness),
		uint8(0),
		255,
	})
	text.Draw(screen, titleText, face, titleOp)

	drawCenteredText(screen, "Pollution in, electricity out", centerX, centerY+100, 28, color.RGBA{180, 180, 200, 255})

	// Blink every half second
	if int(elapsed*2)%2 == 0 {
		drawCenteredText(screen, "Press ENTER or click to continue", centerX, float64(height)-100, 22, color.RGBA{150, 200, 255, 255})
	}

	drawDecorativeElements(screen, width, height, elapsed)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}

// drawDecorativeElements draws two road lines with a dash that slides
// along them like passing traffic.
func drawDecorativeElements(screen *ebiten.Image, width, height int, elapsed float64) {
	lineColor := color.RGBA{50, 60, 80, 255}
	dashColor := color.RGBA{255, 255, 0, 160}

	for _, y := range []float64{float64(height) / 6, float64(height) * 5 / 6} {
		vector.DrawFilledRect(screen, 0, float32(y), float32(width), 2, lineColor, false)

		dashX := math.Mod(elapsed*120, float64(width)+60) - 60
		vector.DrawFilledRect(screen, float32(dashX), float32(y)-1, 60, 4, dashColor, false)
	}
}
