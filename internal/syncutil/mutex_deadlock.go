//go:build deadlock

// Package syncutil provides the mutex used across the module. Building with
// -tags deadlock swaps in go-deadlock to catch lock misuse.
package syncutil

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled reports whether lock checking is compiled in
const DeadlockEnabled = true

func init() {
	// The display lock is held for a frame copy at most.
	deadlock.Opts.DeadlockTimeout = time.Second
}

// Mutex is a go-deadlock Mutex
type Mutex struct {
	deadlock.Mutex
}
