package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status represents a snapshot of the scroller and display, as reported by
// the status endpoint
type Status struct {
	Message     string    `json:"message"`
	State       string    `json:"state"`
	Offset      int       `json:"offset"`
	Length      int       `json:"length"`
	Row         int       `json:"row"`
	Subframe    int       `json:"subframe"`
	Frames      uint64    `json:"frames"`
	Refreshes   uint64    `json:"refreshes"`
	DriveErrors uint64    `json:"drive_errors"`
	LastUpdated time.Time `json:"last_updated"`
}

// FrameUpdate represents one published frame, row by row
type FrameUpdate struct {
	Seq    uint64    `json:"seq"`
	Offset int       `json:"offset"`
	Levels []LevelRow `json:"levels"`
}

// LevelRow represents the brightness levels of one row. It encodes as a JSON
// array of numbers rather than the base64 string used for byte slices.
type LevelRow []uint8

// MarshalJSON implements json.Marshaler
func (r LevelRow) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(r))
	for i, v := range r {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON implements json.Unmarshaler
func (r *LevelRow) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	row := make(LevelRow, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return fmt.Errorf("level %d out of range", v)
		}
		row[i] = uint8(v)
	}
	*r = row
	return nil
}
