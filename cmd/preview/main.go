package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/fkcurrie/ledscroll-golang/internal/config"
	"github.com/fkcurrie/ledscroll-golang/internal/logging"
	"github.com/fkcurrie/ledscroll-golang/internal/preview"
	"github.com/fkcurrie/ledscroll-golang/pkg/frame"
	"github.com/fkcurrie/ledscroll-golang/pkg/scroll"
)

var (
	configPath = flag.String("config", "ledscroll.toml", "path to config file")
	message    = flag.String("message", "", "message to render, overrides the config file")
	out        = flag.String("out", "scroll.gif", "output GIF path")
	cell       = flag.Int("cell", 24, "size of one LED in pixels")
)

// Renders one full scroll pass of the configured message to an animated GIF,
// one image per animation tick.
func main() {
	flag.Parse()

	cfg, loadErr := config.LoadConfig(*configPath)
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}
	if *message != "" {
		cfg.Animation.Message = *message
	}
	if err := logging.Setup(cfg.Logging, false); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if loadErr != nil {
		log.Warn().Err(loadErr).Str("path", *configPath).Msg("using default configuration")
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("preview failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	renderer, err := preview.NewRenderer(*cell)
	if err != nil {
		return err
	}

	sc := cfg.ScrollConfig()
	s := scroll.New(sc)
	s.SetMessage([]byte(cfg.Animation.Message))
	frames := pass(s, sc)

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *out, err)
	}
	defer f.Close()

	if err := renderer.WriteGIF(f, frames, cfg.TickPeriod()); err != nil {
		return err
	}
	log.Info().Str("path", *out).Int("frames", len(frames)).Msg("preview written")
	return nil
}

// pass renders the scroller at every offset of one pass
func pass(s *scroll.Scroller, cfg scroll.Config) []*frame.Frame {
	var frames []*frame.Frame
	for !s.IsFinished() {
		f := frame.New(cfg.Rows, cfg.Cols, cfg.MaxLevel)
		s.RenderInto(f)
		frames = append(frames, f)
		s.Tick()
	}
	return frames
}
