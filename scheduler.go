package weatheroverlay

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler drives one animation at a time: at a fixed cadence it clears the
// surface and draws every effect in order. Starting a new animation always
// cancels the previous one first, so two animations never tick against the
// same Scheduler concurrently.
//
// Start and Stop block until the previous tick goroutine has exited. Do not
// call them while holding FrameLock.
type Scheduler struct {
	// FrameLock, when set, is held for the whole of every tick so a host can
	// read the surface without seeing a half-drawn frame. Set it before the
	// first Start.
	FrameLock sync.Locker

	mu    sync.Mutex
	run   *animationRun
	ticks atomic.Uint64
	debug atomic.Bool
}

// animationRun is the handle of one running animation.
type animationRun struct {
	state string
	stop  chan struct{}
	done  chan struct{}
}

// NewScheduler returns an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start cancels any running animation and begins ticking effects onto dst
// every cadence. The first tick fires one cadence after Start. A
// non-positive cadence uses AnimationCadence.
func (s *Scheduler) Start(dst Surface, w, h float64, cadence time.Duration, effects []Effect) {
	s.StartNamed("", dst, w, h, cadence, effects)
}

// StartNamed is Start with a state name recorded for debug output.
func (s *Scheduler) StartNamed(state string, dst Surface, w, h float64, cadence time.Duration, effects []Effect) {
	if cadence <= 0 {
		cadence = AnimationCadence
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	r := &animationRun{
		state: state,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	s.run = r
	if s.debug.Load() {
		debugf("scheduler: start state=%q cadence=%v effects=%d size=%gx%g",
			state, cadence, len(effects), w, h)
	}
	go s.loop(r, dst, w, h, cadence, effects)
}

// Stop cancels the running animation, if any, and waits for its goroutine to
// exit. In-flight visual state is discarded.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

// Running reports whether an animation is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run != nil
}

// Ticks returns the number of ticks drawn since the scheduler was created.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks.Load()
}

// SetDebugMode enables or disables start/stop and per-tick timing logs on
// stderr.
func (s *Scheduler) SetDebugMode(enabled bool) {
	s.debug.Store(enabled)
}

func (s *Scheduler) cancelLocked() {
	r := s.run
	if r == nil {
		return
	}
	close(r.stop)
	<-r.done
	s.run = nil
	if s.debug.Load() {
		debugf("scheduler: stop state=%q", r.state)
	}
}

func (s *Scheduler) loop(r *animationRun, dst Surface, w, h float64, cadence time.Duration, effects []Effect) {
	defer close(r.done)

	ticker := time.NewTicker(cadence)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
		}
		// Stop wins over a tick that became ready at the same time.
		select {
		case <-r.stop:
			return
		default:
		}
		s.tick(r, dst, w, h, effects)
	}
}

func (s *Scheduler) tick(r *animationRun, dst Surface, w, h float64, effects []Effect) {
	debug := s.debug.Load()
	var t0 time.Time
	if debug {
		t0 = time.Now()
	}

	if s.FrameLock != nil {
		s.FrameLock.Lock()
		defer s.FrameLock.Unlock()
	}
	DrawFrame(dst, w, h, effects)
	n := s.ticks.Add(1)

	if debug {
		logTick(tickStats{
			state:    r.state,
			tick:     n,
			effects:  len(effects),
			drawTime: time.Since(t0),
		})
	}
}
