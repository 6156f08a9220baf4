package road

import "image/color"

// LaneDefinition describes where a vehicle enters the road on start
type LaneDefinition struct {
	StartX float64
	Y      float64
	Color  color.Color
}

// DefaultLanes are the three lanes, staggered so the cars enter one after
// another rather than side by side.
var DefaultLanes = []LaneDefinition{
	{StartX: -50, Y: 120, Color: color.RGBA{0xFF, 0x00, 0x00, 255}},
	{StartX: -250, Y: 250, Color: color.RGBA{0x00, 0x00, 0xFF, 255}},
	{StartX: -450, Y: 380, Color: color.RGBA{0x00, 0x80, 0x00, 255}},
}
