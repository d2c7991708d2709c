package scroll

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/fkcurrie/ledscroll-golang/pkg/frame"
)

func referenceConfig() Config {
	return Config{
		Rows:          5,
		Cols:          5,
		MaxLevel:      9,
		Level:         9,
		TrailingBlank: 5,
		LetterSpacing: 1,
	}
}

func render(s *Scroller, cfg Config) *frame.Frame {
	f := frame.New(cfg.Rows, cfg.Cols, cfg.MaxLevel)
	s.RenderInto(f)
	return f
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero rows", mutate: func(c *Config) { c.Rows = 0 }},
		{name: "zero cols", mutate: func(c *Config) { c.Cols = 0 }},
		{name: "zero level", mutate: func(c *Config) { c.Level = 0 }},
		{name: "level above max", mutate: func(c *Config) { c.Level = 10 }},
		{name: "negative trailing blank", mutate: func(c *Config) { c.TrailingBlank = -1 }},
		{name: "negative spacing", mutate: func(c *Config) { c.LetterSpacing = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := referenceConfig()
			tt.mutate(&cfg)
			assert.Panics(t, func() { New(cfg) })
		})
	}
}

func TestRenderHIAtStart(t *testing.T) {
	cfg := referenceConfig()
	s := New(cfg)
	s.SetMessage([]byte("HI"))

	want := strings.Join([]string{
		"9..9.",
		"9..9.",
		"9999.",
		"9..9.",
		"9..9.",
	}, "\n") + "\n"
	assert.Equal(t, want, render(s, cfg).String())
	assert.Equal(t, Ready, s.State())
}

func TestScrollOneGlyphShowsNextCharacter(t *testing.T) {
	for _, spacing := range []int{0, 1, 2} {
		cfg := referenceConfig()
		cfg.LetterSpacing = spacing

		hi := New(cfg)
		hi.SetMessage([]byte("HI"))
		for i := 0; i < hi.Pitch(); i++ {
			hi.Tick()
		}

		i := New(cfg)
		i.SetMessage([]byte("I"))

		assert.True(t, render(hi, cfg).Equal(render(i, cfg)),
			"spacing %d:\n%s\nvs\n%s", spacing, render(hi, cfg), render(i, cfg))
	}
}

func TestPartialGlyphAtLeadingEdge(t *testing.T) {
	cfg := referenceConfig()
	s := New(cfg)
	s.SetMessage([]byte("HI"))
	for i := 0; i < 3; i++ {
		s.Tick()
	}

	// H columns 3-4, one spacing column, then I columns 0-1
	want := strings.Join([]string{
		"9..99",
		"9...9",
		"9...9",
		"9...9",
		"9..99",
	}, "\n") + "\n"
	assert.Equal(t, want, render(s, cfg).String())
	assert.Equal(t, Scrolling, s.State())
}

func TestFinishesAfterExactlyLength(t *testing.T) {
	cfg := referenceConfig()
	s := New(cfg)
	s.SetMessage([]byte("Hello, world!"))

	n := s.Length()
	require.Equal(t, 13*6+5, n)

	for i := 0; i < n-1; i++ {
		s.Tick()
	}
	assert.False(t, s.IsFinished())
	assert.Equal(t, n-1, s.Offset())

	s.Tick()
	assert.True(t, s.IsFinished())
	assert.Equal(t, Finished, s.State())
	assert.Equal(t, n, s.Offset())

	// finished is sticky and never wraps
	s.Tick()
	assert.True(t, s.IsFinished())
	assert.Equal(t, n, s.Offset())

	// the text has fully left the window
	assert.True(t, render(s, cfg).Equal(frame.New(5, 5, 9)))
}

func TestResetRestoresInitialFrame(t *testing.T) {
	cfg := referenceConfig()
	s := New(cfg)
	s.SetMessage([]byte("HI"))
	initial := render(s, cfg)

	for !s.IsFinished() {
		s.Tick()
	}
	s.Reset()

	assert.False(t, s.IsFinished())
	assert.Zero(t, s.Offset())
	assert.Equal(t, []byte("HI"), s.Message())
	assert.True(t, render(s, cfg).Equal(initial))
}

func TestEmptyMessageFinishesOnFirstTick(t *testing.T) {
	cfg := referenceConfig()
	s := New(cfg)
	s.SetMessage(nil)

	assert.Zero(t, s.Length())
	assert.False(t, s.IsFinished())
	assert.True(t, render(s, cfg).Equal(frame.New(5, 5, 9)))

	s.Tick()
	assert.True(t, s.IsFinished())
	assert.Zero(t, s.Offset())
}

func TestZeroTrailingBlank(t *testing.T) {
	cfg := referenceConfig()
	cfg.TrailingBlank = 0
	cfg.LetterSpacing = 0
	s := New(cfg)
	s.SetMessage([]byte("H"))

	for i := 0; i < 4; i++ {
		s.Tick()
	}
	assert.False(t, s.IsFinished())
	s.Tick()
	assert.True(t, s.IsFinished())
}

func TestSetMessageTruncates(t *testing.T) {
	cfg := referenceConfig()
	long := bytes.Repeat([]byte("AB"), Capacity)

	s := New(cfg)
	s.SetMessage(long)
	assert.Equal(t, long[:Capacity], s.Message())

	prefix := New(cfg)
	prefix.SetMessage(long[:Capacity])
	assert.Equal(t, prefix.Length(), s.Length())

	for !prefix.IsFinished() {
		require.True(t, render(s, cfg).Equal(render(prefix, cfg)), "offset %d", s.Offset())
		s.Tick()
		prefix.Tick()
	}
	assert.True(t, s.IsFinished())
}

func TestSetMessageRewinds(t *testing.T) {
	cfg := referenceConfig()
	s := New(cfg)
	s.SetMessage([]byte("A"))
	for !s.IsFinished() {
		s.Tick()
	}

	s.SetMessage([]byte("B"))
	assert.False(t, s.IsFinished())
	assert.Zero(t, s.Offset())
}

func TestUnsupportedCharacterRendersBlank(t *testing.T) {
	cfg := referenceConfig()
	s := New(cfg)
	s.SetMessage([]byte{0x01})

	assert.True(t, render(s, cfg).Equal(frame.New(5, 5, 9)))
}

func TestTallFrameCentresGlyph(t *testing.T) {
	cfg := referenceConfig()
	cfg.Rows = 7
	s := New(cfg)
	s.SetMessage([]byte("I"))

	f := render(s, cfg)
	assert.Equal(t, []uint8{0, 0, 0, 0, 0}, f.Row(0))
	assert.Equal(t, []uint8{9, 9, 9, 0, 0}, f.Row(1))
	assert.Equal(t, []uint8{9, 9, 9, 0, 0}, f.Row(5))
	assert.Equal(t, []uint8{0, 0, 0, 0, 0}, f.Row(6))
}

func TestRenderIntoPanicsOnShapeMismatch(t *testing.T) {
	s := New(referenceConfig())
	assert.Panics(t, func() { s.RenderInto(frame.New(5, 6, 9)) })
}

func TestPropertyRenderCoversEveryPixel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := Config{
			Rows:          rapid.IntRange(1, 9).Draw(t, "rows"),
			Cols:          rapid.IntRange(1, 16).Draw(t, "cols"),
			MaxLevel:      9,
			Level:         rapid.Uint8Range(1, 9).Draw(t, "level"),
			TrailingBlank: rapid.IntRange(0, 16).Draw(t, "trailing"),
			LetterSpacing: rapid.IntRange(0, 3).Draw(t, "spacing"),
		}
		msg := rapid.SliceOfN(rapid.Byte(), 0, 2*Capacity).Draw(t, "msg")
		ticks := rapid.IntRange(0, 2*Capacity*8).Draw(t, "ticks")

		s := New(cfg)
		s.SetMessage(msg)
		for i := 0; i < ticks; i++ {
			s.Tick()
		}
		if s.Offset() > s.Length() {
			t.Fatalf("offset %d beyond length %d", s.Offset(), s.Length())
		}

		f := frame.New(cfg.Rows, cfg.Cols, cfg.MaxLevel)
		// poison every pixel so a skipped write would show
		for r := 0; r < cfg.Rows; r++ {
			for c := 0; c < cfg.Cols; c++ {
				f.Set(r, c, 9)
			}
		}
		s.RenderInto(f)
		for r := 0; r < cfg.Rows; r++ {
			for c := 0; c < cfg.Cols; c++ {
				if l := f.Level(r, c); l != 0 && l != cfg.Level {
					t.Fatalf("pixel (%d, %d) = %d", r, c, l)
				}
			}
		}
	})
}

func TestPropertyTicksToFinish(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := referenceConfig()
		cfg.TrailingBlank = rapid.IntRange(0, 10).Draw(t, "trailing")
		msg := rapid.SliceOfN(rapid.ByteRange(0x20, 0x7e), 1, Capacity).Draw(t, "msg")

		s := New(cfg)
		s.SetMessage(msg)
		n := s.Length()
		prev := s.Offset()
		for i := 0; i < n-1; i++ {
			s.Tick()
			if s.Offset() < prev {
				t.Fatalf("offset went backwards: %d -> %d", prev, s.Offset())
			}
			prev = s.Offset()
		}
		if s.IsFinished() {
			t.Fatalf("finished after %d of %d ticks", n-1, n)
		}
		s.Tick()
		if !s.IsFinished() {
			t.Fatalf("not finished after %d ticks", n)
		}
	})
}
