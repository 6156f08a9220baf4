package sim

import (
	"fmt"
	"strconv"

	"github.com/golangdaddy/speedbreaker/pkg/canvas"
	"github.com/golangdaddy/speedbreaker/pkg/road"
	"github.com/golangdaddy/speedbreaker/pkg/scene"
	"github.com/golangdaddy/speedbreaker/pkg/vehicle"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Simulation owns every piece of mutable state: the vehicles, the
// accumulators, the clock and the pending frame. It is driven from a single
// goroutine (the game loop) and does no locking.
type Simulation struct {
	cfg       Config
	speed     int
	lanes     []road.LaneDefinition
	vehicles  []*vehicle.Vehicle
	breaker   *road.SpeedBreaker
	renderer  *scene.Renderer
	scheduler Scheduler

	totals   Totals
	counters Counters

	running       bool
	hasTimestamp  bool
	lastTimestamp float64 // ms
	frame         Handle
	frames        uint64

	runID string
	log   *log.Entry
}

// New builds a stopped simulation drawing onto surface and scheduling its
// frames through scheduler.
func New(cfg Config, surface canvas.Surface, scheduler Scheduler) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	breaker := road.NewSpeedBreaker(cfg.BreakerX)
	s := &Simulation{
		lanes:     road.DefaultLanes,
		breaker:   breaker,
		renderer:  scene.NewRenderer(surface, road.NewRoad(), breaker),
		scheduler: scheduler,
		log:       log.WithField("component", "simulation"),
	}
	s.ApplyConfig(cfg)
	s.counters = zeroCounters(s.counters.Speed)
	return s, nil
}

// ApplyConfig replaces the slider range and pushes the configured speed to
// every vehicle. Callers are expected to pass a validated config.
func (s *Simulation) ApplyConfig(cfg Config) {
	s.cfg = cfg
	s.SetSpeed(cfg.Speed)
}

// SetSpeed is the one place vehicle speed is derived from the slider. It
// updates the speed label and every existing vehicle, whether or not the
// simulation is running. The value is clamped to the slider range and the
// applied speed is returned.
func (s *Simulation) SetSpeed(speed int) int {
	speed = s.cfg.ClampSpeed(speed)
	changed := speed != s.speed
	s.speed = speed
	s.counters.Speed = strconv.Itoa(speed)

	for _, v := range s.vehicles {
		v.SetSpeed(float64(speed))
	}

	if changed {
		s.log.WithFields(log.Fields{"speed": speed, "running": s.running}).Debug("Speed changed")
	}
	return speed
}

// Start begins a fresh run. It does nothing and returns false if a run is
// already in progress.
func (s *Simulation) Start() bool {
	if s.running {
		return false
	}

	s.running = true
	s.runID = uuid.NewString()
	s.vehicles = s.spawnVehicles()
	s.totals = Totals{}
	s.frames = 0
	s.frame = s.scheduler.RequestFrame(s.Tick)

	s.log.WithFields(log.Fields{"run_id": s.runID, "speed": s.speed}).Info("Simulation started")
	return true
}

func (s *Simulation) spawnVehicles() []*vehicle.Vehicle {
	vehicles := make([]*vehicle.Vehicle, 0, len(s.lanes))
	for _, lane := range s.lanes {
		vehicles = append(vehicles, vehicle.New(lane.StartX, lane.Y, float64(s.speed), lane.Color))
	}
	return vehicles
}

// Reset stops the run, cancels the pending frame and clears every counter
// and the drawing surface. It is safe to call in any state.
func (s *Simulation) Reset() {
	s.scheduler.CancelFrame(s.frame)
	wasRunning := s.running

	s.running = false
	s.frame = 0
	s.totals = Totals{}
	s.counters = zeroCounters(s.counters.Speed)
	s.renderer.Clear()
	s.hasTimestamp = false
	s.lastTimestamp = 0

	if wasRunning {
		s.log.WithFields(log.Fields{"run_id": s.runID, "frames": s.frames}).Info("Simulation reset")
	}
}

// Tick advances the simulation by one frame. timestamp is in milliseconds;
// the first frame after a start or reset has a zero delta.
func (s *Simulation) Tick(timestamp float64) {
	if !s.running {
		return
	}
	if !s.hasTimestamp {
		s.lastTimestamp = timestamp
		s.hasTimestamp = true
	}
	deltaTime := (timestamp - s.lastTimestamp) / 1000

	s.renderer.DrawBackdrop(s.totals.Electricity)

	width := s.renderer.Surface().Width()
	framePollution := 0.0
	for _, v := range s.vehicles {
		v.Move(width)
		s.renderer.DrawVehicle(v)
		framePollution += v.GeneratePollution(deltaTime)
		s.breaker.GenerateElectricity(v, deltaTime, &s.totals)
	}

	s.renderer.DrawBreaker()

	s.totals.AddPollution(framePollution)
	s.counters = formatCounters(s.totals, s.counters.Speed)

	s.lastTimestamp = timestamp
	s.frames++

	if s.log.Logger.IsLevelEnabled(log.TraceLevel) {
		s.log.WithFields(log.Fields{
			"run_id":      s.runID,
			"frame":       s.frames,
			"delta":       deltaTime,
			"pollution":   s.totals.Pollution,
			"electricity": s.totals.Electricity,
		}).Trace("Frame")
	}

	s.frame = s.scheduler.RequestFrame(s.Tick)
}

func (s *Simulation) Running() bool {
	return s.running
}

func (s *Simulation) Speed() int {
	return s.speed
}

// SpeedRange returns the slider bounds
func (s *Simulation) SpeedRange() (lo, hi int) {
	return s.cfg.SpeedMin, s.cfg.SpeedMax
}

func (s *Simulation) Totals() Totals {
	return s.totals
}

func (s *Simulation) Counters() Counters {
	return s.counters
}

// Vehicles returns the current vehicles. They are live; callers must not
// mutate them.
func (s *Simulation) Vehicles() []*vehicle.Vehicle {
	return s.vehicles
}

func (s *Simulation) Breaker() *road.SpeedBreaker {
	return s.breaker
}

// Frames is the number of ticks since the last start
func (s *Simulation) Frames() uint64 {
	return s.frames
}

func (s *Simulation) RunID() string {
	return s.runID
}

func (s *Simulation) String() string {
	state := "stopped"
	if s.running {
		state = "running"
	}
	return fmt.Sprintf("simulation(%s speed=%d pollution=%.2f carbon=%.2f electricity=%.2f)",
		state, s.speed, s.totals.Pollution, s.totals.Carbon, s.totals.Electricity)
}
