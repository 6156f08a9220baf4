package game

import (
	"testing"

	"github.com/golangdaddy/speedbreaker/pkg/sim"
	"github.com/golangdaddy/speedbreaker/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.SpeedMax = 0

	_, err := NewGame(Options{Sim: cfg})
	assert.ErrorIs(t, err, sim.ErrInvalidConfig)
}

func TestNewGameStartsOnTitle(t *testing.T) {
	g, err := NewGame(Options{Sim: sim.DefaultConfig()})
	require.NoError(t, err)
	assert.IsType(t, &ui.TitleScreen{}, g.currentScreen)
}

func TestLayoutAddsPanel(t *testing.T) {
	g, err := NewGame(Options{Sim: sim.DefaultConfig()})
	require.NoError(t, err)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 800, w)
	assert.Equal(t, 680, h)
}

func TestCounterLines(t *testing.T) {
	lines := counterLines(sim.Counters{Pollution: "1.50", Carbon: "0.41", Electricity: "0", Speed: "5"})
	assert.Equal(t, []string{
		"Pollution Collected: 1.50",
		"Carbon Removed (g): 0.41",
		"Electricity Generated: 0",
	}, lines)
}

func TestPanelLayoutSitsUnderCanvas(t *testing.T) {
	cfg := sim.DefaultConfig()
	l := newPanelLayout(cfg)

	for _, b := range []*ui.Button{l.start, l.reset} {
		assert.GreaterOrEqual(t, b.Y, float64(cfg.CanvasHeight))
		assert.LessOrEqual(t, b.Y+b.Height, float64(cfg.CanvasHeight+PanelHeight))
	}
	assert.False(t, l.start.Contains(int(l.reset.X)+1, int(l.reset.Y)+1))
	assert.Equal(t, cfg.Speed, l.slider.Value)
	assert.Equal(t, cfg.SpeedMin, l.slider.Min)
	assert.Equal(t, cfg.SpeedMax, l.slider.Max)
}
