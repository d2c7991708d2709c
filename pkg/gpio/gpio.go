// Package gpio drives a directly wired LED matrix through the Linux GPIO
// character device: one output line per row and one per column.
package gpio

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/warthog618/go-gpiocdev"

	"github.com/fkcurrie/ledscroll-golang/internal/types"
)

// Consumer is the label the lines are requested under
const Consumer = "ledscroll"

// lineSet is the part of *gpiocdev.Lines the matrix uses
type lineSet interface {
	SetValues(values []int) error
	Close() error
}

// Matrix represents a row/column wired LED matrix. An LED lights when its
// row line and its column line are both active. Values written here are
// logical; the kernel applies the active-low setting of each line group.
type Matrix struct {
	rows    lineSet
	cols    lineSet
	rowVals []int
	colVals []int
}

// NewMatrix requests the row and column lines described by cfg as outputs,
// all inactive.
func NewMatrix(cfg types.GPIOConfig) (*Matrix, error) {
	log.Info().
		Str("chip", cfg.Chip).
		Ints("rows", cfg.Rows).
		Ints("cols", cfg.Cols).
		Msg("requesting matrix lines")

	rows, err := gpiocdev.RequestLines(cfg.Chip, cfg.Rows, lineOptions(len(cfg.Rows), cfg.RowActiveLow)...)
	if err != nil {
		return nil, fmt.Errorf("failed to request row lines: %w", err)
	}

	cols, err := gpiocdev.RequestLines(cfg.Chip, cfg.Cols, lineOptions(len(cfg.Cols), cfg.ColActiveLow)...)
	if err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to request column lines: %w", err)
	}

	return newMatrix(rows, cols, len(cfg.Rows), len(cfg.Cols)), nil
}

func lineOptions(n int, activeLow bool) []gpiocdev.LineReqOption {
	opts := []gpiocdev.LineReqOption{
		gpiocdev.WithConsumer(Consumer),
		gpiocdev.AsOutput(make([]int, n)...),
	}
	if activeLow {
		opts = append(opts, gpiocdev.AsActiveLow)
	}
	return opts
}

func newMatrix(rows, cols lineSet, nrows, ncols int) *Matrix {
	return &Matrix{
		rows:    rows,
		cols:    cols,
		rowVals: make([]int, nrows),
		colVals: make([]int, ncols),
	}
}

// DriveRow lights the given columns of one row. Rows are released before the
// columns change so the previous row never shows the new columns.
func (m *Matrix) DriveRow(row int, cols []bool) error {
	if row < 0 || row >= len(m.rowVals) || len(cols) != len(m.colVals) {
		panic(fmt.Sprintf("gpio: row %d with %d columns on a %dx%d matrix",
			row, len(cols), len(m.rowVals), len(m.colVals)))
	}

	if err := m.releaseRows(); err != nil {
		return err
	}

	for c, on := range cols {
		m.colVals[c] = boolToInt(on)
	}
	if err := m.cols.SetValues(m.colVals); err != nil {
		return fmt.Errorf("failed to set column lines: %w", err)
	}

	m.rowVals[row] = 1
	if err := m.rows.SetValues(m.rowVals); err != nil {
		return fmt.Errorf("failed to set row lines: %w", err)
	}
	return nil
}

// Blank releases every row and column
func (m *Matrix) Blank() error {
	if err := m.releaseRows(); err != nil {
		return err
	}
	for c := range m.colVals {
		m.colVals[c] = 0
	}
	if err := m.cols.SetValues(m.colVals); err != nil {
		return fmt.Errorf("failed to set column lines: %w", err)
	}
	return nil
}

// Close releases the lines
func (m *Matrix) Close() error {
	rowErr := m.rows.Close()
	colErr := m.cols.Close()
	if rowErr != nil {
		return fmt.Errorf("failed to close row lines: %w", rowErr)
	}
	if colErr != nil {
		return fmt.Errorf("failed to close column lines: %w", colErr)
	}
	return nil
}

func (m *Matrix) releaseRows() error {
	for r := range m.rowVals {
		m.rowVals[r] = 0
	}
	if err := m.rows.SetValues(m.rowVals); err != nil {
		return fmt.Errorf("failed to set row lines: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
