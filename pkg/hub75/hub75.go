// Package hub75 drives a single-colour HUB75 panel through the Linux GPIO
// character device. Rows are selected by the address lines; the columns of
// the selected row are clocked into the panel's shift registers through one
// data line, latched, and shown while output enable is low.
package hub75

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/warthog618/go-gpiocdev"

	"github.com/fkcurrie/ledscroll-golang/internal/types"
)

// line is the part of *gpiocdev.Line the panel uses
type line interface {
	SetValue(value int) error
	Close() error
}

// Panel represents a HUB75 panel wired to GPIO lines
type Panel struct {
	addr []line
	data line
	clk  line
	lat  line
	oe   line
	all  []line
}

// NewPanel requests every line in cfg as an output. OE starts high so the
// panel is dark until the first row is latched.
func NewPanel(cfg types.HUB75Config) (*Panel, error) {
	var lines []line
	request := func(offset, initial int) (line, error) {
		l, err := gpiocdev.RequestLine(cfg.Chip, offset,
			gpiocdev.WithConsumer("ledscroll"), gpiocdev.AsOutput(initial))
		if err != nil {
			for _, prev := range lines {
				prev.Close()
			}
			return nil, fmt.Errorf("failed to request line %d: %w", offset, err)
		}
		lines = append(lines, l)
		log.Debug().Int("offset", offset).Msg("requested panel line")
		return l, nil
	}

	p := &Panel{}
	for _, offset := range cfg.Addr {
		l, err := request(offset, 0)
		if err != nil {
			return nil, err
		}
		p.addr = append(p.addr, l)
	}

	var err error
	if p.data, err = request(cfg.Data, 0); err != nil {
		return nil, err
	}
	if p.clk, err = request(cfg.Clk, 0); err != nil {
		return nil, err
	}
	if p.lat, err = request(cfg.Lat, 0); err != nil {
		return nil, err
	}
	if p.oe, err = request(cfg.OE, 1); err != nil {
		return nil, err
	}
	p.all = lines

	log.Info().Str("chip", cfg.Chip).Int("addressLines", len(cfg.Addr)).Msg("hub75 panel ready")
	return p, nil
}

// DriveRow shows cols on one row of the panel
func (p *Panel) DriveRow(row int, cols []bool) error {
	if row < 0 || row >= 1<<len(p.addr) {
		panic(fmt.Sprintf("hub75: row %d not addressable with %d lines", row, len(p.addr)))
	}

	// Disable output during data change
	if err := p.oe.SetValue(1); err != nil {
		return fmt.Errorf("failed to set OE: %w", err)
	}

	for bit, l := range p.addr {
		if err := l.SetValue((row >> bit) & 1); err != nil {
			return fmt.Errorf("failed to set address bit %d: %w", bit, err)
		}
	}

	for c, on := range cols {
		v := 0
		if on {
			v = 1
		}
		if err := p.data.SetValue(v); err != nil {
			return fmt.Errorf("failed to set data for column %d: %w", c, err)
		}
		if err := pulse(p.clk); err != nil {
			return fmt.Errorf("failed to clock column %d: %w", c, err)
		}
	}

	if err := pulse(p.lat); err != nil {
		return fmt.Errorf("failed to latch row %d: %w", row, err)
	}

	if err := p.oe.SetValue(0); err != nil {
		return fmt.Errorf("failed to set OE: %w", err)
	}
	return nil
}

// Blank disables the panel output
func (p *Panel) Blank() error {
	if err := p.oe.SetValue(1); err != nil {
		return fmt.Errorf("failed to set OE: %w", err)
	}
	return nil
}

// Close releases all lines
func (p *Panel) Close() error {
	var first error
	for _, l := range p.all {
		if err := l.Close(); err != nil && first == nil {
			first = err
		}
	}
	if first != nil {
		return fmt.Errorf("failed to close panel lines: %w", first)
	}
	return nil
}

func pulse(l line) error {
	if err := l.SetValue(1); err != nil {
		return err
	}
	return l.SetValue(0)
}
