package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/fkcurrie/ledscroll-golang/internal/config"
	"github.com/fkcurrie/ledscroll-golang/internal/logging"
	"github.com/fkcurrie/ledscroll-golang/internal/preview"
	"github.com/fkcurrie/ledscroll-golang/internal/scheduler"
	"github.com/fkcurrie/ledscroll-golang/internal/server"
	"github.com/fkcurrie/ledscroll-golang/internal/types"
	"github.com/fkcurrie/ledscroll-golang/pkg/display"
	"github.com/fkcurrie/ledscroll-golang/pkg/gpio"
	"github.com/fkcurrie/ledscroll-golang/pkg/hub75"
	"github.com/fkcurrie/ledscroll-golang/pkg/scroll"
	"github.com/fkcurrie/ledscroll-golang/pkg/terminal"
)

var (
	configPath = flag.String("config", "ledscroll.toml", "path to config file")
	message    = flag.String("message", "", "message to scroll, overrides the config file")
	driverName = flag.String("driver", "", "gpio, hub75, terminal or none, overrides the config file")
	listen     = flag.String("listen", "", "HTTP listen address, overrides the config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, loadErr := config.LoadConfig(*configPath)
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}
	if *message != "" {
		cfg.Animation.Message = *message
	}
	if *driverName != "" {
		cfg.Display.Driver = *driverName
	}
	if *listen != "" {
		cfg.Server.Listen = *listen
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	// The terminal simulator owns the screen, so keep the console quiet
	quiet := cfg.Display.Driver == types.DriverTerminal
	if err := logging.Setup(cfg.Logging, quiet); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if loadErr != nil {
		log.Warn().Err(loadErr).Str("path", *configPath).Msg("using default configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := run(ctx, cancel, cfg, loadErr == nil); err != nil {
		log.Error().Err(err).Msg("scroller failed")
		if quiet {
			fmt.Fprintf(os.Stderr, "scroller: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, watch bool) error {
	driver, screen, err := openDriver(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := driver.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close driver")
		}
	}()

	d := display.New(driver, cfg.Display.Rows, cfg.Display.Cols, cfg.Display.Levels)
	s := scroll.New(cfg.ScrollConfig())
	s.SetMessage([]byte(cfg.Animation.Message))

	sch := scheduler.New(scheduler.Config{
		RefreshPeriod: cfg.RefreshPeriod(),
		TickPeriod:    cfg.TickPeriod(),
		Loop:          cfg.Animation.Loop,
	}, d, s)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Server.Listen != "" {
		renderer, err := preview.NewRenderer(24)
		if err != nil {
			return err
		}
		srv := server.New(sch, renderer)
		sch.OnFrame(srv.Hub().Broadcast)
		g.Go(func() error {
			return srv.ListenAndServe(ctx, cfg.Server.Listen)
		})
	}

	if screen != nil {
		go screen.WatchQuit(cancel)
		g.Go(func() error {
			return screen.Run(ctx, clockwork.NewRealClock(), cfg.RedrawPeriod())
		})
	}

	if watch {
		g.Go(func() error {
			return config.Watch(ctx, *configPath, func(next *config.Config) {
				sch.SetMessage([]byte(next.Animation.Message))
			})
		})
	}

	g.Go(func() error {
		return sch.Run(ctx)
	})

	return g.Wait()
}

// openDriver returns the driver named in cfg, plus the terminal screen when
// the simulator is in use
func openDriver(cfg *config.Config) (types.Driver, *terminal.Screen, error) {
	switch cfg.Display.Driver {
	case types.DriverGPIO:
		m, err := gpio.NewMatrix(cfg.GPIO)
		return m, nil, err
	case types.DriverHUB75:
		p, err := hub75.NewPanel(cfg.HUB75)
		return p, nil, err
	case types.DriverTerminal:
		s, err := terminal.NewTerminal(cfg.Display.Rows, cfg.Display.Cols)
		return s, s, err
	case types.DriverNone:
		return nopDriver{}, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown driver %q", cfg.Display.Driver)
	}
}

// nopDriver discards every scan-line
type nopDriver struct{}

func (nopDriver) DriveRow(int, []bool) error { return nil }
func (nopDriver) Blank() error               { return nil }
func (nopDriver) Close() error               { return nil }
