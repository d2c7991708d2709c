// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/fkcurrie/ledscroll-golang/internal/types"
)

// Setup points the global logger at the console, or at stderr and a rotating
// file when cfg.File is set. Extra writers are appended. When the terminal
// simulator owns the screen, pass quiet to keep the console out of it.
func Setup(cfg types.LoggingConfig, quiet bool, writers ...io.Writer) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	var outputs []io.Writer
	if !quiet {
		outputs = append(outputs, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	if cfg.File != "" {
		outputs = append(outputs, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    1,
			MaxBackups: 2,
		})
	}
	outputs = append(outputs, writers...)

	if len(outputs) == 0 {
		log.Logger = zerolog.Nop()
		return nil
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(outputs...)).
		With().Timestamp().Logger()
	return nil
}
