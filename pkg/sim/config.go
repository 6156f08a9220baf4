package sim

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds the tunable parts of a simulation
type Config struct {
	Speed    int // initial slider value
	SpeedMin int
	SpeedMax int

	CanvasWidth  int
	CanvasHeight int

	BreakerX float64
}

// DefaultConfig returns the stock slider range and canvas size
func DefaultConfig() Config {
	return Config{
		Speed:        5,
		SpeedMin:     1,
		SpeedMax:     20,
		CanvasWidth:  800,
		CanvasHeight: 600,
		BreakerX:     450,
	}
}

// Validate checks the slider range and canvas size
func (c Config) Validate() error {
	if c.SpeedMin < 1 {
		return fmt.Errorf("%w: minimum speed %d must be a positive integer", ErrInvalidConfig, c.SpeedMin)
	}
	if c.SpeedMax < c.SpeedMin {
		return fmt.Errorf("%w: maximum speed %d below minimum %d", ErrInvalidConfig, c.SpeedMax, c.SpeedMin)
	}
	if c.Speed < c.SpeedMin || c.Speed > c.SpeedMax {
		return fmt.Errorf("%w: speed %d outside [%d, %d]", ErrInvalidConfig, c.Speed, c.SpeedMin, c.SpeedMax)
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	}
	return nil
}

// ClampSpeed limits speed to the configured slider range
func (c Config) ClampSpeed(speed int) int {
	if speed < c.SpeedMin {
		return c.SpeedMin
	}
	if speed > c.SpeedMax {
		return c.SpeedMax
	}
	return speed
}
