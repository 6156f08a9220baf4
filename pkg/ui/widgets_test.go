package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonContains(t *testing.T) {
	b := NewButton("Start", 20, 615, 100, 40)

	assert.True(t, b.Contains(20, 615))
	assert.True(t, b.Contains(119, 654))
	assert.False(t, b.Contains(120, 630))
	assert.False(t, b.Contains(50, 614))
}

func TestSliderValueAt(t *testing.T) {
	s := NewSlider(250, 640, 200, 16, 1, 21, 5)

	tests := []struct {
		x    int
		want int
	}{
		{200, 1},
		{250, 1},
		{260, 2},
		{350, 11},
		{450, 21},
		{900, 21},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.ValueAt(tt.x), "x=%d", tt.x)
	}
}

func TestSliderDegenerateRange(t *testing.T) {
	s := NewSlider(0, 0, 100, 10, 3, 3, 3)
	assert.Equal(t, 3, s.ValueAt(80))
	assert.Equal(t, 0.0, s.KnobX())
}

func TestSliderKnobX(t *testing.T) {
	s := NewSlider(250, 640, 200, 16, 1, 21, 11)
	assert.Equal(t, 350.0, s.KnobX())

	s.Value = 21
	assert.Equal(t, 450.0, s.KnobX())
}

func TestSliderContains(t *testing.T) {
	s := NewSlider(250, 640, 200, 16, 1, 20, 5)
	assert.True(t, s.Contains(245, 650))
	assert.True(t, s.Contains(455, 660))
	assert.False(t, s.Contains(470, 650))
	assert.False(t, s.Contains(300, 620))
}
