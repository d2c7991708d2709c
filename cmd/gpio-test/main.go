package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fkcurrie/ledscroll-golang/internal/config"
	"github.com/fkcurrie/ledscroll-golang/internal/logging"
	"github.com/fkcurrie/ledscroll-golang/pkg/gpio"
)

var (
	configPath = flag.String("config", "ledscroll.toml", "path to config file")
	dwell      = flag.Duration("dwell", 500*time.Millisecond, "time each LED stays lit")
	loop       = flag.Bool("loop", false, "repeat until interrupted")
)

// Lamp test: lights every LED of the GPIO matrix in turn, row by row, so
// miswired rows or columns show up as LEDs lighting out of order.
func main() {
	flag.Parse()

	// Load configuration
	cfg, loadErr := config.LoadConfig(*configPath)
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}
	if err := logging.Setup(cfg.Logging, false); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if loadErr != nil {
		log.Warn().Err(loadErr).Str("path", *configPath).Msg("using default configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("Starting GPIO lamp test...")

	m, err := gpio.NewMatrix(cfg.GPIO)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open matrix")
		os.Exit(1)
	}
	defer m.Close()

	rows, cols := len(cfg.GPIO.Rows), len(cfg.GPIO.Cols)
	ticker := time.NewTicker(*dwell)
	defer ticker.Stop()

	for {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				lit := make([]bool, cols)
				lit[c] = true
				if err := m.DriveRow(r, lit); err != nil {
					log.Error().Err(err).Int("row", r).Int("col", c).Msg("Failed to drive LED")
				} else {
					log.Info().Int("row", r).Int("col", c).Msg("LED on")
				}

				select {
				case <-ctx.Done():
					log.Info().Msg("Shutting down...")
					if err := m.Blank(); err != nil {
						log.Error().Err(err).Msg("Failed to blank matrix")
					}
					return
				case <-ticker.C:
				}
			}
		}
		if !*loop {
			break
		}
	}

	if err := m.Blank(); err != nil {
		log.Error().Err(err).Msg("Failed to blank matrix")
	}
	log.Info().Msg("Lamp test completed")
}
