package types

// Driver represents the physical outputs of a scan-multiplexed LED matrix.
// Only one row is active at a time.
type Driver interface {
	// DriveRow activates row, asserts the columns that are true in cols and
	// deactivates every other row
	DriveRow(row int, cols []bool) error
	// Blank deactivates every row
	Blank() error
	// Close releases the outputs
	Close() error
}
