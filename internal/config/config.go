package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/fkcurrie/ledscroll-golang/internal/types"
	"github.com/fkcurrie/ledscroll-golang/pkg/scroll"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Display   types.DisplayConfig   `toml:"display"`
	Animation types.AnimationConfig `toml:"animation"`
	GPIO      types.GPIOConfig      `toml:"gpio"`
	HUB75     types.HUB75Config     `toml:"hub75"`
	Terminal  types.TerminalConfig  `toml:"terminal"`
	Server    types.ServerConfig    `toml:"server"`
	Logging   types.LoggingConfig   `toml:"logging"`
}

// DefaultConfig returns the default configuration: a 5x5 matrix with nine
// brightness levels, refreshed at 600Hz, scrolling at 16Hz in the terminal.
func DefaultConfig() *Config {
	return &Config{
		Display: types.DisplayConfig{
			Rows:      5,
			Cols:      5,
			RefreshHz: 600,
			Levels:    9,
			Driver:    types.DriverTerminal,
		},
		Animation: types.AnimationConfig{
			TickHz:        16,
			Message:       "Hello, world!",
			TrailingBlank: 5,
			LetterSpacing: 1,
			Brightness:    9,
			Loop:          true,
		},
		GPIO: types.GPIOConfig{
			Chip:         "gpiochip0",
			Rows:         []int{21, 22, 15, 24, 19},
			Cols:         []int{28, 11, 31, 37, 30},
			ColActiveLow: true,
		},
		HUB75: types.HUB75Config{
			Chip: "gpiochip0",
			Addr: []int{22, 26, 27, 20, 24},
			Data: 5,
			Clk:  17,
			Lat:  21,
			OE:   4,
		},
		Terminal: types.TerminalConfig{
			RedrawHz: 30,
		},
		Logging: types.LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from a TOML file on disk
func LoadConfig(path string) (*Config, error) {
	return LoadConfigFs(afero.NewOsFs(), path)
}

// LoadConfigFs loads the configuration from a TOML file in fs. Keys missing
// from the file keep their default values.
func LoadConfigFs(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as TOML
func Save(fs afero.Fs, path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and the constraints between sections
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if cfg.Animation.Brightness > cfg.Display.Levels {
		return fmt.Errorf("%w: brightness %d above %d levels",
			ErrInvalid, cfg.Animation.Brightness, cfg.Display.Levels)
	}
	switch cfg.Display.Driver {
	case types.DriverGPIO:
		if len(cfg.GPIO.Rows) != cfg.Display.Rows || len(cfg.GPIO.Cols) != cfg.Display.Cols {
			return fmt.Errorf("%w: gpio has %dx%d lines for a %dx%d display", ErrInvalid,
				len(cfg.GPIO.Rows), len(cfg.GPIO.Cols), cfg.Display.Rows, cfg.Display.Cols)
		}
	case types.DriverHUB75:
		if 1<<len(cfg.HUB75.Addr) < cfg.Display.Rows {
			return fmt.Errorf("%w: %d address lines cannot select %d rows",
				ErrInvalid, len(cfg.HUB75.Addr), cfg.Display.Rows)
		}
	}

	return nil
}

// RefreshPeriod returns the interval between scan-line events
func (c *Config) RefreshPeriod() time.Duration {
	return time.Second / time.Duration(c.Display.RefreshHz)
}

// TickPeriod returns the interval between animation ticks
func (c *Config) TickPeriod() time.Duration {
	return time.Second / time.Duration(c.Animation.TickHz)
}

// RedrawPeriod returns the interval between terminal redraws
func (c *Config) RedrawPeriod() time.Duration {
	return time.Second / time.Duration(c.Terminal.RedrawHz)
}

// ScrollConfig returns the scroller geometry for this configuration
func (c *Config) ScrollConfig() scroll.Config {
	return scroll.Config{
		Rows:          c.Display.Rows,
		Cols:          c.Display.Cols,
		MaxLevel:      uint8(c.Display.Levels),
		Level:         uint8(c.Animation.Brightness),
		TrailingBlank: c.Animation.TrailingBlank,
		LetterSpacing: c.Animation.LetterSpacing,
	}
}
