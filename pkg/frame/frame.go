// Package frame holds the brightness image shown on an LED matrix.
package frame

import (
	"fmt"
	"image"
	"image/color"
)

// Frame represents one still image for the matrix: a brightness level per
// (row, col), each in [0, MaxLevel]. The zero level is off.
//
// Dimensions are fixed at construction. Addressing outside them, or storing a
// level above MaxLevel, is a programming error and panics.
type Frame struct {
	rows     int
	cols     int
	maxLevel uint8
	levels   []uint8
}

// New creates a blank frame
func New(rows, cols int, maxLevel uint8) *Frame {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("frame: invalid dimensions %dx%d", rows, cols))
	}
	if maxLevel == 0 {
		panic("frame: max level must be positive")
	}

	return &Frame{
		rows:     rows,
		cols:     cols,
		maxLevel: maxLevel,
		levels:   make([]uint8, rows*cols),
	}
}

// Rows returns the number of rows
func (f *Frame) Rows() int { return f.rows }

// Cols returns the number of columns
func (f *Frame) Cols() int { return f.cols }

// MaxLevel returns the brightest level a pixel may hold
func (f *Frame) MaxLevel() uint8 { return f.maxLevel }

// Level returns the brightness at the given coordinates
func (f *Frame) Level(row, col int) uint8 {
	return f.levels[f.index(row, col)]
}

// Set sets the brightness at the given coordinates
func (f *Frame) Set(row, col int, level uint8) {
	if level > f.maxLevel {
		panic(fmt.Sprintf("frame: level %d above max %d", level, f.maxLevel))
	}
	f.levels[f.index(row, col)] = level
}

// Clear turns every pixel off
func (f *Frame) Clear() {
	for i := range f.levels {
		f.levels[i] = 0
	}
}

// CopyFrom overwrites f with the contents of src. Both frames must share the
// same geometry.
func (f *Frame) CopyFrom(src *Frame) {
	if !f.SameShape(src) {
		panic(fmt.Sprintf("frame: copy from %dx%d/%d into %dx%d/%d",
			src.rows, src.cols, src.maxLevel, f.rows, f.cols, f.maxLevel))
	}
	copy(f.levels, src.levels)
}

// SameShape reports whether other has the same rows, cols and max level
func (f *Frame) SameShape(other *Frame) bool {
	return f.rows == other.rows && f.cols == other.cols && f.maxLevel == other.maxLevel
}

// Equal reports whether both frames have the same shape and pixels
func (f *Frame) Equal(other *Frame) bool {
	if !f.SameShape(other) {
		return false
	}
	for i, l := range f.levels {
		if other.levels[i] != l {
			return false
		}
	}
	return true
}

// Row returns a copy of one row of levels
func (f *Frame) Row(row int) []uint8 {
	start := f.index(row, 0)
	out := make([]uint8, f.cols)
	copy(out, f.levels[start:start+f.cols])
	return out
}

// String renders the frame as text, one line per row, '.' for off and the
// level digit (or '#' above 9) otherwise.
func (f *Frame) String() string {
	buf := make([]byte, 0, f.rows*(f.cols+1))
	for r := 0; r < f.rows; r++ {
		for c := 0; c < f.cols; c++ {
			l := f.Level(r, c)
			switch {
			case l == 0:
				buf = append(buf, '.')
			case l <= 9:
				buf = append(buf, '0'+l)
			default:
				buf = append(buf, '#')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// ColorModel implements image.Image
func (f *Frame) ColorModel() color.Model { return color.GrayModel }

// Bounds implements image.Image; x is the column and y the row
func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.cols, f.rows) }

// At implements image.Image, scaling the level to a grey value
func (f *Frame) At(x, y int) color.Color {
	if x < 0 || x >= f.cols || y < 0 || y >= f.rows {
		return color.Gray{}
	}
	return color.Gray{Y: uint8(uint16(f.Level(y, x)) * 255 / uint16(f.maxLevel))}
}

func (f *Frame) index(row, col int) int {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		panic(fmt.Sprintf("frame: coordinates out of bounds: (%d, %d) in %dx%d", row, col, f.rows, f.cols))
	}
	return row*f.cols + col
}
