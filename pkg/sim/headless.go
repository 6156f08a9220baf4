package sim

import (
	"github.com/golangdaddy/speedbreaker/pkg/canvas"
	log "github.com/sirupsen/logrus"
)

// HeadlessFrameMillis is the timestamp step used when running without a
// display: a steady 60 frames per second.
const HeadlessFrameMillis = 1000.0 / 60

// RunHeadless starts a simulation on a recording surface, advances it by
// frames ticks and returns the final simulation, still running.
func RunHeadless(cfg Config, frames int) (*Simulation, error) {
	scheduler := NewFrameScheduler()
	s, err := New(cfg, canvas.NewRecorder(float64(cfg.CanvasWidth), float64(cfg.CanvasHeight)), scheduler)
	if err != nil {
		return nil, err
	}

	s.Start()
	timestamp := 0.0
	for i := 0; i < frames; i++ {
		scheduler.Fire(timestamp)
		timestamp += HeadlessFrameMillis
	}

	t := s.Totals()
	s.log.WithFields(log.Fields{
		"run_id":      s.RunID(),
		"frames":      s.Frames(),
		"pollution":   t.Pollution,
		"carbon":      t.Carbon,
		"electricity": t.Electricity,
	}).Info("Headless run finished")
	return s, nil
}
