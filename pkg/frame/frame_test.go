package frame

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		cols      int
		maxLevel  uint8
		wantPanic bool
	}{
		{name: "reference 5x5", rows: 5, cols: 5, maxLevel: 9},
		{name: "binary", rows: 8, cols: 32, maxLevel: 1},
		{name: "zero rows", rows: 0, cols: 5, maxLevel: 9, wantPanic: true},
		{name: "negative cols", rows: 5, cols: -1, maxLevel: 9, wantPanic: true},
		{name: "zero max level", rows: 5, cols: 5, maxLevel: 0, wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantPanic {
				assert.Panics(t, func() { New(tt.rows, tt.cols, tt.maxLevel) })
				return
			}
			f := New(tt.rows, tt.cols, tt.maxLevel)
			assert.Equal(t, tt.rows, f.Rows())
			assert.Equal(t, tt.cols, f.Cols())
			assert.Equal(t, tt.maxLevel, f.MaxLevel())
			for r := 0; r < tt.rows; r++ {
				for c := 0; c < tt.cols; c++ {
					assert.Zero(t, f.Level(r, c))
				}
			}
		})
	}
}

func TestSetAndClear(t *testing.T) {
	f := New(5, 5, 9)
	f.Set(0, 0, 9)
	f.Set(4, 4, 3)
	f.Set(2, 1, 1)

	assert.Equal(t, uint8(9), f.Level(0, 0))
	assert.Equal(t, uint8(3), f.Level(4, 4))
	assert.Equal(t, []uint8{0, 1, 0, 0, 0}, f.Row(2))
	assert.Equal(t, "9....\n.....\n.1...\n.....\n....3\n", f.String())

	f.Clear()
	assert.Equal(t, ".....\n.....\n.....\n.....\n.....\n", f.String())
}

func TestOutOfBoundsPanics(t *testing.T) {
	f := New(5, 5, 9)

	assert.Panics(t, func() { f.Level(-1, 0) })
	assert.Panics(t, func() { f.Level(0, 5) })
	assert.Panics(t, func() { f.Set(5, 0, 1) })
	assert.Panics(t, func() { f.Set(0, 0, 10) })
}

func TestCopyFrom(t *testing.T) {
	src := New(5, 5, 9)
	src.Set(1, 3, 7)
	dst := New(5, 5, 9)
	dst.Set(0, 0, 9)

	dst.CopyFrom(src)
	assert.True(t, dst.Equal(src))

	// the copy is independent of its source
	src.Set(1, 3, 0)
	assert.Equal(t, uint8(7), dst.Level(1, 3))

	assert.Panics(t, func() { dst.CopyFrom(New(5, 4, 9)) })
	assert.Panics(t, func() { dst.CopyFrom(New(5, 5, 1)) })
}

func TestEqual(t *testing.T) {
	a := New(5, 5, 9)
	b := New(5, 5, 9)
	assert.True(t, a.Equal(b))

	b.Set(2, 2, 1)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(New(4, 5, 9)))
}

func TestImage(t *testing.T) {
	f := New(2, 3, 9)
	f.Set(1, 2, 9)

	b := f.Bounds()
	require.Equal(t, 3, b.Dx())
	require.Equal(t, 2, b.Dy())
	assert.Equal(t, color.Gray{Y: 255}, f.At(2, 1))
	assert.Equal(t, color.Gray{}, f.At(0, 0))
	assert.Equal(t, color.Gray{}, f.At(7, 7))
}

func TestPropertyCopyPreservesEveryPixel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 16).Draw(t, "rows")
		cols := rapid.IntRange(1, 32).Draw(t, "cols")
		maxLevel := rapid.Uint8Range(1, 15).Draw(t, "maxLevel")

		src := New(rows, cols, maxLevel)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				src.Set(r, c, rapid.Uint8Range(0, maxLevel).Draw(t, "level"))
			}
		}

		dst := New(rows, cols, maxLevel)
		dst.CopyFrom(src)
		if !dst.Equal(src) {
			t.Fatalf("copy differs:\n%s\nvs\n%s", dst, src)
		}
	})
}
