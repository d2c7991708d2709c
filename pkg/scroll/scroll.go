// Package scroll animates a fixed-capacity text message across a frame one
// column per tick.
package scroll

import (
	"fmt"

	"github.com/fkcurrie/ledscroll-golang/pkg/frame"
	"github.com/fkcurrie/ledscroll-golang/pkg/glyph"
)

// Capacity is the largest message, in bytes, a Scroller holds. Longer
// messages are truncated.
const Capacity = 64

// State represents where a Scroller is in its pass over the message
type State int

const (
	// Ready means a message is loaded at offset zero
	Ready State = iota
	// Scrolling means at least one tick has advanced the offset
	Scrolling
	// Finished means the text has fully passed; only Reset or SetMessage leave it
	Finished
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Scrolling:
		return "scrolling"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config holds the geometry of a Scroller
type Config struct {
	// Rows and Cols are the size of the frames rendered into
	Rows int
	Cols int
	// MaxLevel is the max level of those frames
	MaxLevel uint8
	// Level is the brightness of lit glyph pixels
	Level uint8
	// TrailingBlank is the number of blank columns scrolled after the last
	// glyph before the pass finishes. Use Cols to let the text fully exit.
	TrailingBlank int
	// LetterSpacing is the number of blank columns between glyphs
	LetterSpacing int
}

// Scroller owns a message and a scroll offset, and renders the visible window
// of the message into a frame. It is not safe for concurrent use; one
// goroutine owns it.
type Scroller struct {
	cfg      Config
	buf      [Capacity]byte
	n        int
	offset   int
	finished bool
	rowShift int
}

// New creates a Scroller with an empty message
func New(cfg Config) *Scroller {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		panic(fmt.Sprintf("scroll: invalid dimensions %dx%d", cfg.Rows, cfg.Cols))
	}
	if cfg.MaxLevel == 0 || cfg.Level == 0 || cfg.Level > cfg.MaxLevel {
		panic(fmt.Sprintf("scroll: invalid level %d of %d", cfg.Level, cfg.MaxLevel))
	}
	if cfg.TrailingBlank < 0 || cfg.LetterSpacing < 0 {
		panic("scroll: negative spacing")
	}

	s := &Scroller{cfg: cfg}
	if cfg.Rows > glyph.Height {
		s.rowShift = (cfg.Rows - glyph.Height) / 2
	}
	return s
}

// SetMessage replaces the message, truncating it to Capacity bytes, and
// rewinds to the start.
func (s *Scroller) SetMessage(msg []byte) {
	s.n = copy(s.buf[:], msg)
	s.Reset()
}

// Message returns a copy of the current message
func (s *Scroller) Message() []byte {
	out := make([]byte, s.n)
	copy(out, s.buf[:s.n])
	return out
}

// Reset rewinds to offset zero and clears the finished flag, keeping the
// message.
func (s *Scroller) Reset() {
	s.offset = 0
	s.finished = false
}

// Pitch returns the number of columns one character occupies
func (s *Scroller) Pitch() int {
	return glyph.Width + s.cfg.LetterSpacing
}

// Length returns the number of ticks in one full pass. An empty message has
// nothing to scroll out, so its length is zero.
func (s *Scroller) Length() int {
	if s.n == 0 {
		return 0
	}
	return s.n*s.Pitch() + s.cfg.TrailingBlank
}

// Offset returns the number of columns scrolled so far
func (s *Scroller) Offset() int {
	return s.offset
}

// Tick advances the window by one column. Once the offset reaches Length the
// scroller is finished and further ticks do nothing.
func (s *Scroller) Tick() {
	if s.finished {
		return
	}
	if s.offset < s.Length() {
		s.offset++
	}
	if s.offset >= s.Length() {
		s.finished = true
	}
}

// IsFinished reports whether the text has fully scrolled past
func (s *Scroller) IsFinished() bool {
	return s.finished
}

// State returns the current state of the pass
func (s *Scroller) State() State {
	switch {
	case s.finished:
		return Finished
	case s.offset == 0:
		return Ready
	default:
		return Scrolling
	}
}

// RenderInto draws the window starting at the current offset into f. Every
// pixel of f is written: glyph pixels at the configured level, the rest off.
func (s *Scroller) RenderInto(f *frame.Frame) {
	if f.Rows() != s.cfg.Rows || f.Cols() != s.cfg.Cols || f.MaxLevel() != s.cfg.MaxLevel {
		panic(fmt.Sprintf("scroll: frame %dx%d/%d does not match %dx%d/%d",
			f.Rows(), f.Cols(), f.MaxLevel(), s.cfg.Rows, s.cfg.Cols, s.cfg.MaxLevel))
	}

	f.Clear()
	pitch := s.Pitch()
	for col := 0; col < s.cfg.Cols; col++ {
		m := s.offset + col
		idx, gcol := m/pitch, m%pitch
		if idx >= s.n || gcol >= glyph.Width {
			continue
		}

		g := glyph.Lookup(s.buf[idx])
		for row := 0; row < s.cfg.Rows; row++ {
			if g.Lit(row-s.rowShift, gcol) {
				f.Set(row, col, s.cfg.Level)
			}
		}
	}
}
