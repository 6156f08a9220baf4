package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/golangdaddy/speedbreaker/pkg/background"
	"github.com/golangdaddy/speedbreaker/pkg/canvas"
	"github.com/golangdaddy/speedbreaker/pkg/road"
	"github.com/golangdaddy/speedbreaker/pkg/sim"
	"github.com/golangdaddy/speedbreaker/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
)

// PanelHeight is the height of the control panel under the canvas
const PanelHeight = 80

var panelColor = color.RGBA{20, 20, 30, 255}

// SimulationScreen shows the road canvas with the control panel beneath it
// and feeds ebiten's tick into the simulation's frame scheduler.
type SimulationScreen struct {
	sim       *sim.Simulation
	scheduler *sim.FrameScheduler
	surface   *canvas.EbitenSurface
	layout    panelLayout

	dragging bool
	epoch    time.Time
	now      func() time.Time
}

// NewSimulationScreen creates the canvas, the stopped simulation and the
// controls for cfg.
func NewSimulationScreen(cfg sim.Config, seed int64) (*SimulationScreen, error) {
	surface := canvas.NewEbitenSurface(cfg.CanvasWidth, cfg.CanvasHeight)

	rd := road.NewRoad()
	verge := background.NewGenerator(cfg.CanvasWidth, cfg.CanvasHeight, int(rd.Top), int(rd.Top+rd.Height)).GenerateVerge(seed)
	surface.SetBackground(ebiten.NewImageFromImage(verge))
	surface.Clear()

	scheduler := sim.NewFrameScheduler()
	simulation, err := sim.New(cfg, surface, scheduler)
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}

	return &SimulationScreen{
		sim:       simulation,
		scheduler: scheduler,
		surface:   surface,
		layout:    newPanelLayout(cfg),
		epoch:     time.Now(),
		now:       time.Now,
	}, nil
}

// timestamp returns milliseconds since the screen was created
func (s *SimulationScreen) timestamp() float64 {
	return float64(s.now().Sub(s.epoch).Microseconds()) / 1000
}

// Update applies input then advances the simulation by one frame
func (s *SimulationScreen) Update() error {
	s.handleMouse()
	s.handleKeys()
	s.scheduler.Fire(s.timestamp())
	return nil
}

func (s *SimulationScreen) handleMouse() {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case s.layout.start.Contains(mx, my):
			s.sim.Start()
		case s.layout.reset.Contains(mx, my):
			s.sim.Reset()
		case s.layout.slider.Contains(mx, my):
			s.dragging = true
		}
	}

	if s.dragging {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			s.dragging = false
			return
		}
		s.setSpeed(s.layout.slider.ValueAt(mx))
	}
}

func (s *SimulationScreen) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sim.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s.setSpeed(s.sim.Speed() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		s.setSpeed(s.sim.Speed() + 1)
	}
}

// setSpeed routes every slider change through the simulation and keeps the
// knob on the value actually applied.
func (s *SimulationScreen) setSpeed(speed int) {
	if speed == s.sim.Speed() {
		return
	}
	s.layout.slider.Value = s.sim.SetSpeed(speed)
	log.WithField("speed", s.layout.slider.Value).Trace("Slider moved")
}

// Draw blits the canvas and paints the control panel
func (s *SimulationScreen) Draw(screen *ebiten.Image) {
	screen.Fill(panelColor)
	screen.DrawImage(s.surface.Image(), nil)
	s.drawPanel(screen)
}

func (s *SimulationScreen) drawPanel(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	l := s.layout

	l.start.Draw(screen, l.start.Contains(mx, my))
	l.reset.Draw(screen, l.reset.Contains(mx, my))

	c := s.sim.Counters()
	ui.DrawText(screen, "Vehicle Speed: "+c.Speed, l.slider.X, l.slider.Y-22, 16, ui.LabelColor)
	l.slider.Draw(screen)

	for i, line := range counterLines(c) {
		ui.DrawText(screen, line, l.countersX, l.countersY+float64(i)*20, 16, ui.LabelColor)
	}
}

// counterLines formats the three counters for the panel
func counterLines(c sim.Counters) []string {
	return []string{
		"Pollution Collected: " + c.Pollution,
		"Carbon Removed (g): " + c.Carbon,
		"Electricity Generated: " + c.Electricity,
	}
}

type panelLayout struct {
	start, reset         *ui.Button
	slider               *ui.Slider
	countersX, countersY float64
}

// newPanelLayout positions the controls in the strip under the canvas
func newPanelLayout(cfg sim.Config) panelLayout {
	top := float64(cfg.CanvasHeight)
	return panelLayout{
		start:     ui.NewButton("Start", 20, top+20, 100, 40),
		reset:     ui.NewButton("Reset", 130, top+20, 100, 40),
		slider:    ui.NewSlider(260, top+46, 180, 16, cfg.SpeedMin, cfg.SpeedMax, cfg.Speed),
		countersX: float64(cfg.CanvasWidth) - 330,
		countersY: top + 10,
	}
}
