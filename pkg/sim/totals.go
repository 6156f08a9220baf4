package sim

import "fmt"

// CarbonPerPollution converts pollution units into grams of carbon
const CarbonPerPollution = 0.273

// Totals are the running accumulators for one run. All three only grow
// while the simulation is running.
type Totals struct {
	Pollution   float64
	Carbon      float64 // grams, always Pollution * CarbonPerPollution
	Electricity float64
}

// AddElectricity implements road.ElectricitySink
func (t *Totals) AddElectricity(amount float64) {
	t.Electricity += amount
}

// AddPollution accumulates pollution and refreshes the derived carbon figure
func (t *Totals) AddPollution(amount float64) {
	t.Pollution += amount
	t.Carbon = t.Pollution * CarbonPerPollution
}

// Counters is the text shown in the counter panel
type Counters struct {
	Pollution   string
	Carbon      string
	Electricity string
	Speed       string
}

// zeroCounters is what a reset writes: a bare "0", not "0.00".
func zeroCounters(speed string) Counters {
	return Counters{Pollution: "0", Carbon: "0", Electricity: "0", Speed: speed}
}

func formatCounters(t Totals, speed string) Counters {
	return Counters{
		Pollution:   fmt.Sprintf("%.2f", t.Pollution),
		Carbon:      fmt.Sprintf("%.2f", t.Carbon),
		Electricity: fmt.Sprintf("%.2f", t.Electricity),
		Speed:       speed,
	}
}
