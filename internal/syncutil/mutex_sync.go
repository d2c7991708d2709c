//go:build !deadlock

// Package syncutil provides the mutex used across the module. Building with
// -tags deadlock swaps in go-deadlock to catch lock misuse.
package syncutil

import "sync"

// DeadlockEnabled reports whether lock checking is compiled in
const DeadlockEnabled = false

// Mutex is a plain sync.Mutex
type Mutex struct {
	sync.Mutex
}
