package game

import (
	"github.com/golangdaddy/speedbreaker/pkg/sim"
	"github.com/golangdaddy/speedbreaker/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// Options configures a Game
type Options struct {
	Sim       sim.Config
	Seed      int64 // roadside scenery seed
	SkipTitle bool
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and switches between screens
type Game struct {
	opts          Options
	currentScreen Screen
}

// NewGame validates the options and creates a game showing the title screen
func NewGame(opts Options) (*Game, error) {
	if err := opts.Sim.Validate(); err != nil {
		return nil, err
	}

	game := &Game{opts: opts}
	if opts.SkipTitle {
		if err := game.startSimulation(); err != nil {
			return nil, err
		}
		return game, nil
	}

	game.currentScreen = ui.NewTitleScreen(func() {
		if err := game.startSimulation(); err != nil {
			log.WithError(err).Error("Failed to open simulation screen")
		}
	})
	return game, nil
}

// startSimulation transitions to the simulation screen
func (g *Game) startSimulation() error {
	screen, err := NewSimulationScreen(g.opts.Sim, g.opts.Seed)
	if err != nil {
		return err
	}
	g.currentScreen = screen
	log.WithField("seed", g.opts.Seed).Debug("Simulation screen opened")
	return nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the logical screen size: the canvas plus the control panel
// below it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenSize(g.opts.Sim)
}

// ScreenSize returns the window size needed for cfg
func ScreenSize(cfg sim.Config) (width, height int) {
	return cfg.CanvasWidth, cfg.CanvasHeight + PanelHeight
}
