package scheduler

import (
	"github.com/fkcurrie/ledscroll-golang/internal/syncutil"
)

// Shared guards a value used by more than one loop. All access goes through
// Lock, whose critical section must stay short and must not take another lock.
type Shared[T any] struct {
	mu syncutil.Mutex
	v  *T
}

// NewShared wraps v. The caller must not touch v directly afterwards.
func NewShared[T any](v *T) *Shared[T] {
	return &Shared[T]{v: v}
}

// Lock runs fn with exclusive access to the value
func (s *Shared[T]) Lock(fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.v)
}
