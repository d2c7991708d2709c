// Package scheduler runs the two recurring loops behind the matrix: a fast
// refresh loop that drives one scan-line per event, and a slow animation loop
// that advances the scroller and publishes a new frame per tick.
//
// The display is the only state both loops touch. It lives in a Shared cell;
// the animation loop holds the lock just long enough to copy a finished frame
// in, and the refresh loop just long enough to drive one row, so the refresh
// loop never sees a half-written frame. The scroller and its staging frame
// belong to the animation loop alone.
package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/fkcurrie/ledscroll-golang/internal/types"
	"github.com/fkcurrie/ledscroll-golang/pkg/display"
	"github.com/fkcurrie/ledscroll-golang/pkg/frame"
	"github.com/fkcurrie/ledscroll-golang/pkg/scroll"
)

// Config holds the timing and looping policy of a Scheduler
type Config struct {
	RefreshPeriod time.Duration
	TickPeriod    time.Duration
	// Loop resets the scroller once a pass finishes, repeating the message
	// forever. Without it the matrix stays blank after one pass.
	Loop bool
	// Clock defaults to the real clock
	Clock clockwork.Clock
}

// animState is the part of the status owned by the animation loop
type animState struct {
	message string
	state   scroll.State
	offset  int
	length  int
	updated time.Time
}

// Scheduler binds a Display and a Scroller to two tickers
type Scheduler struct {
	cfg      Config
	clock    clockwork.Clock
	display  *Shared[display.Display]
	scroller *scroll.Scroller
	staging  *frame.Frame
	messages chan []byte
	onFrame  func(types.FrameUpdate)

	errLog      rate.Sometimes
	frames      atomic.Uint64
	refreshes   atomic.Uint64
	driveErrors atomic.Uint64
	anim        atomic.Pointer[animState]
}

// New creates a Scheduler. From here on d is only reached through the
// scheduler's lock, and s only from its animation loop.
func New(cfg Config, d *display.Display, s *scroll.Scroller) *Scheduler {
	if cfg.RefreshPeriod <= 0 || cfg.TickPeriod <= 0 {
		panic(fmt.Sprintf("scheduler: invalid periods %v/%v", cfg.RefreshPeriod, cfg.TickPeriod))
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	sch := &Scheduler{
		cfg:      cfg,
		clock:    clock,
		display:  NewShared(d),
		scroller: s,
		staging:  d.NewFrame(),
		messages: make(chan []byte, 1),
		errLog:   rate.Sometimes{First: 3, Interval: 10 * time.Second},
	}
	sch.storeState()
	return sch
}

// OnFrame registers fn to receive every published frame. It must be called
// before Run and fn must not block.
func (s *Scheduler) OnFrame(fn func(types.FrameUpdate)) {
	s.onFrame = fn
}

// SetMessage queues a new message for the animation loop. Only the latest
// pending message is kept.
func (s *Scheduler) SetMessage(msg []byte) {
	cp := bytes.Clone(msg)
	for {
		select {
		case s.messages <- cp:
			return
		default:
			select {
			case <-s.messages:
			default:
			}
		}
	}
}

// Run publishes the first frame and runs both loops until ctx is cancelled,
// then blanks the matrix.
func (s *Scheduler) Run(ctx context.Context) error {
	s.scroller.RenderInto(s.staging)
	s.publish()

	log.Info().
		Dur("refresh", s.cfg.RefreshPeriod).
		Dur("tick", s.cfg.TickPeriod).
		Bool("loop", s.cfg.Loop).
		Msg("scheduler started")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.every(gctx, s.cfg.RefreshPeriod, s.Refresh)
	})
	g.Go(func() error {
		return s.every(gctx, s.cfg.TickPeriod, s.Animate)
	})
	err := g.Wait()

	var blankErr error
	s.display.Lock(func(d *display.Display) {
		blankErr = d.Blank()
	})
	log.Info().
		Uint64("frames", s.frames.Load()).
		Uint64("refreshes", s.refreshes.Load()).
		Msg("scheduler stopped")

	if err != nil {
		return err
	}
	if blankErr != nil {
		return fmt.Errorf("failed to blank display: %w", blankErr)
	}
	return nil
}

func (s *Scheduler) every(ctx context.Context, period time.Duration, fn func()) error {
	ticker := s.clock.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			fn()
		}
	}
}

// Refresh handles one refresh event: drive the next scan-line
func (s *Scheduler) Refresh() {
	var err error
	s.display.Lock(func(d *display.Display) {
		err = d.HandleDisplayEvent()
	})
	s.refreshes.Add(1)

	if err != nil {
		s.driveErrors.Add(1)
		s.errLog.Do(func() {
			log.Error().Err(err).Uint64("count", s.driveErrors.Load()).Msg("display refresh failed")
		})
	}
}

// Animate handles one animation tick. A pending message is loaded and shown
// from its start. Otherwise an unfinished pass advances one column and the
// new window is published; a finished pass is reset when looping.
func (s *Scheduler) Animate() {
	select {
	case msg := <-s.messages:
		s.scroller.SetMessage(msg)
		s.scroller.RenderInto(s.staging)
		s.publish()
		log.Debug().Int("length", s.scroller.Length()).Msg("message replaced")
		return
	default:
	}

	switch {
	case !s.scroller.IsFinished():
		s.scroller.Tick()
		s.scroller.RenderInto(s.staging)
		s.publish()
	case s.cfg.Loop:
		s.scroller.Reset()
		s.storeState()
	}
}

// publish hands the staging frame to the display and observers
func (s *Scheduler) publish() {
	s.display.Lock(func(d *display.Display) {
		d.ShowFrame(s.staging)
	})
	seq := s.frames.Add(1)
	s.storeState()

	if s.onFrame == nil {
		return
	}
	update := types.FrameUpdate{
		Seq:    seq,
		Offset: s.scroller.Offset(),
		Levels: make([]types.LevelRow, s.staging.Rows()),
	}
	for r := range update.Levels {
		update.Levels[r] = s.staging.Row(r)
	}
	s.onFrame(update)
}

func (s *Scheduler) storeState() {
	s.anim.Store(&animState{
		message: string(s.scroller.Message()),
		state:   s.scroller.State(),
		offset:  s.scroller.Offset(),
		length:  s.scroller.Length(),
		updated: s.clock.Now(),
	})
}

// Status returns a snapshot for reporting. Safe from any goroutine.
func (s *Scheduler) Status() types.Status {
	a := s.anim.Load()
	st := types.Status{
		Message:     a.message,
		State:       a.state.String(),
		Offset:      a.offset,
		Length:      a.length,
		Frames:      s.frames.Load(),
		Refreshes:   s.refreshes.Load(),
		DriveErrors: s.driveErrors.Load(),
		LastUpdated: a.updated,
	}
	s.display.Lock(func(d *display.Display) {
		st.Row = d.Row()
		st.Subframe = d.Subframe()
	})
	return st
}

// Snapshot returns a copy of the frame being shown. Safe from any goroutine.
func (s *Scheduler) Snapshot() *frame.Frame {
	var out *frame.Frame
	s.display.Lock(func(d *display.Display) {
		out = d.NewFrame()
		out.CopyFrom(d.Frame())
	})
	return out
}
