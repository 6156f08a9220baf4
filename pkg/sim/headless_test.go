package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeadless(t *testing.T) {
	s, err := RunHeadless(DefaultConfig(), 61)
	require.NoError(t, err)

	assert.True(t, s.Running())
	assert.Equal(t, uint64(61), s.Frames())

	// 60 non-zero frames of 1/60s: three vehicles at 0.25/s for one second.
	assert.InDelta(t, 0.75, s.Totals().Pollution, 1e-9)
	assert.Equal(t, "0.75", s.Counters().Pollution)
	assert.Equal(t, "0.20", s.Counters().Carbon)
}

func TestRunHeadlessHarvestsElectricity(t *testing.T) {
	s, err := RunHeadless(DefaultConfig(), 600)
	require.NoError(t, err)
	assert.Greater(t, s.Totals().Electricity, 0.0)
}

func TestRunHeadlessRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CanvasWidth = 0
	_, err := RunHeadless(cfg, 10)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
