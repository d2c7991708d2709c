// Package terminal simulates an LED matrix in a terminal.
//
// The refresh loop drives one row at a time, far faster than a terminal can
// redraw, so the simulator integrates instead of painting each row: it counts
// how often every LED was asserted relative to how often its row was driven,
// and paints that duty cycle as a shade at a fixed redraw rate. The result is
// what persistence of vision would show, including software PWM brightness.
package terminal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
)

// shades from off to fully on
var shades = []rune{' ', '░', '▒', '▓', '█'}

// Screen represents a simulated matrix painted on a tcell screen
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	rows   int
	cols   int
	lit    []uint32
	driven []uint32
	style  tcell.Style
}

// NewTerminal opens the controlling terminal
func NewTerminal(rows, cols int) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.HideCursor()
	return New(screen, rows, cols), nil
}

// New wraps an initialised tcell screen
func New(screen tcell.Screen, rows, cols int) *Screen {
	return &Screen{
		screen: screen,
		rows:   rows,
		cols:   cols,
		lit:    make([]uint32, rows*cols),
		driven: make([]uint32, rows),
		style:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
}

// DriveRow records one scan-line
func (s *Screen) DriveRow(row int, cols []bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.driven[row]++
	for c, on := range cols {
		if on {
			s.lit[row*s.cols+c]++
		}
	}
	return nil
}

// Blank clears the accumulated counts and the painted matrix
func (s *Screen) Blank() error {
	s.mu.Lock()
	for i := range s.lit {
		s.lit[i] = 0
	}
	for i := range s.driven {
		s.driven[i] = 0
	}
	s.mu.Unlock()

	s.Redraw()
	return nil
}

// Close restores the terminal
func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}

// Redraw paints the duty cycle of every LED since the previous redraw and
// starts a new integration window. Each LED is two cells wide so the matrix
// looks roughly square.
func (s *Screen) Redraw() {
	s.mu.Lock()
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			ch := shades[0]
			if n := s.driven[r]; n > 0 {
				duty := float64(s.lit[r*s.cols+c]) / float64(n)
				ch = shades[int(duty*float64(len(shades)-1)+0.5)]
			}
			s.screen.SetContent(2*c, r, ch, nil, s.style)
			s.screen.SetContent(2*c+1, r, ch, nil, s.style)
			s.lit[r*s.cols+c] = 0
		}
		s.driven[r] = 0
	}
	s.mu.Unlock()

	s.screen.Show()
}

// Run redraws every period until ctx is cancelled
func (s *Screen) Run(ctx context.Context, clock clockwork.Clock, period time.Duration) error {
	ticker := clock.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			s.Redraw()
		}
	}
}

// WatchQuit calls quit when Ctrl-C, Escape or q is pressed. The terminal is
// in raw mode, so these keys never become signals. It returns once the
// screen is closed.
func (s *Screen) WatchQuit(quit func()) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				quit()
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}
