// Package display multiplexes a brightness frame onto an LED matrix one
// scan-line at a time.
//
// Only one row of the matrix is lit at any moment. Each call to
// HandleDisplayEvent drives the next row, so calling it at a steady, high rate
// lets persistence of vision merge the rows into one image. Brightness beyond
// on/off is software PWM over whole sweeps: with N levels, an LED at level L
// is asserted during L of every N sweeps of the cursor over the rows.
package display

import (
	"fmt"

	"github.com/fkcurrie/ledscroll-golang/internal/types"
	"github.com/fkcurrie/ledscroll-golang/pkg/frame"
)

// Display owns the frames shown on the matrix and the scan-line cursor.
//
// Display does no locking. ShowFrame and HandleDisplayEvent must be
// serialized by the caller, which holds the one lock guarding the display.
type Display struct {
	driver   types.Driver
	rows     int
	cols     int
	levels   int
	front    *frame.Frame
	back     *frame.Frame
	row      int
	subframe int
	colBuf   []bool
}

// New creates a display for a rows x cols matrix with the given number of
// brightness levels. Frames shown on it must have MaxLevel equal to levels.
func New(driver types.Driver, rows, cols, levels int) *Display {
	if levels <= 0 || levels > 255 {
		panic(fmt.Sprintf("display: invalid level count %d", levels))
	}

	return &Display{
		driver: driver,
		rows:   rows,
		cols:   cols,
		levels: levels,
		front:  frame.New(rows, cols, uint8(levels)),
		back:   frame.New(rows, cols, uint8(levels)),
		colBuf: make([]bool, cols),
	}
}

// NewFrame returns a blank frame shaped for this display
func (d *Display) NewFrame() *frame.Frame {
	return frame.New(d.rows, d.cols, uint8(d.levels))
}

// ShowFrame installs f as the image for subsequent scan-lines. The pixels are
// copied, so the caller keeps ownership of f.
func (d *Display) ShowFrame(f *frame.Frame) {
	d.back.CopyFrom(f)
	d.front, d.back = d.back, d.front
}

// HandleDisplayEvent drives the current scan-line from the front frame and
// advances the cursor. When the cursor wraps, the PWM sub-frame advances.
// The only error is a failure of the driver.
func (d *Display) HandleDisplayEvent() error {
	for c := 0; c < d.cols; c++ {
		d.colBuf[c] = int(d.front.Level(d.row, c)) > d.subframe
	}
	err := d.driver.DriveRow(d.row, d.colBuf)

	d.row++
	if d.row == d.rows {
		d.row = 0
		d.subframe++
		if d.subframe == d.levels {
			d.subframe = 0
		}
	}

	if err != nil {
		return fmt.Errorf("failed to drive row: %w", err)
	}
	return nil
}

// Blank turns every row off. The cursor is left where it is.
func (d *Display) Blank() error {
	return d.driver.Blank()
}

// Row returns the scan-line the next event will drive
func (d *Display) Row() int { return d.row }

// Subframe returns the PWM slot of the current sweep
func (d *Display) Subframe() int { return d.subframe }

// Levels returns the PWM resolution
func (d *Display) Levels() int { return d.levels }

// Frame returns the frame currently being shown. It must not be modified and
// is only valid until the next ShowFrame.
func (d *Display) Frame() *frame.Frame { return d.front }
