package main

import (
	"flag"
	"time"

	"github.com/golangdaddy/speedbreaker/pkg/game"
	"github.com/golangdaddy/speedbreaker/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	defaults := sim.DefaultConfig()

	speed := flag.Int("speed", defaults.Speed, "initial vehicle speed (pixels per frame)")
	speedMin := flag.Int("speed-min", defaults.SpeedMin, "slider minimum speed")
	speedMax := flag.Int("speed-max", defaults.SpeedMax, "slider maximum speed")
	width := flag.Int("width", defaults.CanvasWidth, "canvas width")
	height := flag.Int("height", defaults.CanvasHeight, "canvas height")
	seed := flag.Int64("seed", time.Now().UnixNano(), "roadside scenery seed")
	skipTitle := flag.Bool("skip-title", false, "go straight to the simulation")
	headless := flag.Int("headless-frames", 0, "run this many frames without a window and exit")
	level := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.WithError(err).Fatal("Invalid log level")
	}
	log.SetLevel(lvl)

	cfg := defaults
	cfg.Speed = *speed
	cfg.SpeedMin = *speedMin
	cfg.SpeedMax = *speedMax
	cfg.CanvasWidth = *width
	cfg.CanvasHeight = *height
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	if *headless > 0 {
		s, err := sim.RunHeadless(cfg, *headless)
		if err != nil {
			log.WithError(err).Fatal("Headless run failed")
		}
		c := s.Counters()
		log.WithFields(log.Fields{
			"pollution":   c.Pollution,
			"carbon":      c.Carbon,
			"electricity": c.Electricity,
		}).Info(s)
		return
	}

	g, err := game.NewGame(game.Options{Sim: cfg, Seed: *seed, SkipTitle: *skipTitle})
	if err != nil {
		log.WithError(err).Fatal("Failed to create game")
	}

	ebiten.SetWindowSize(game.ScreenSize(cfg))
	ebiten.SetWindowTitle("Speed Breaker")
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("Game loop exited")
	}
}
