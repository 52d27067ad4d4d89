package weatheroverlay_test

import (
	"sync"
	"testing"
	"time"

	"github.com/phanxgames/weatheroverlay"
	"github.com/phanxgames/weatheroverlay/surfacetest"
)

// countingEffect counts Draw calls.
type countingEffect struct {
	mu    sync.Mutex
	draws int
}

func (e *countingEffect) Draw(weatheroverlay.Surface) {
	e.mu.Lock()
	e.draws++
	e.mu.Unlock()
}

func (e *countingEffect) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draws
}

func TestSchedulerTicks(t *testing.T) {
	s := weatheroverlay.NewScheduler()
	rec := surfacetest.New()
	e := &countingEffect{}

	s.Start(rec, 100, 100, 10*time.Millisecond, []weatheroverlay.Effect{e})
	time.Sleep(120 * time.Millisecond)
	s.Stop()

	clears := rec.Count("ClearRect")
	if clears < 3 {
		t.Errorf("ClearRect count = %d after 120ms at 10ms, want several", clears)
	}
	if e.count() != clears {
		t.Errorf("draws = %d, clears = %d; want one draw per clear", e.count(), clears)
	}
	if s.Ticks() != uint64(clears) {
		t.Errorf("Ticks() = %d, want %d", s.Ticks(), clears)
	}
}

func TestSchedulerSingleLiveTimer(t *testing.T) {
	const cadence = 20 * time.Millisecond
	const window = 400 * time.Millisecond

	s := weatheroverlay.NewScheduler()
	rec := surfacetest.New()
	s.Start(rec, 100, 100, cadence, nil)
	s.Start(rec, 100, 100, cadence, nil)
	s.Start(rec, 100, 100, cadence, nil)

	time.Sleep(window)
	s.Stop()

	// Three overlapping timers would clear about three times as often.
	limit := int(window/cadence) + 2
	if got := rec.Count("ClearRect"); got > limit {
		t.Errorf("ClearRect count = %d over %v, want at most %d", got, window, limit)
	}
}

func TestSchedulerStartSupersedes(t *testing.T) {
	s := weatheroverlay.NewScheduler()
	old, cur := surfacetest.New(), surfacetest.New()

	s.Start(old, 100, 100, 5*time.Millisecond, nil)
	time.Sleep(30 * time.Millisecond)
	s.Start(cur, 100, 100, 5*time.Millisecond, nil)

	// Start waits for the old goroutine, so the old surface is final now.
	frozen := old.Count("ClearRect")
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	if got := old.Count("ClearRect"); got != frozen {
		t.Errorf("old surface ticked after being superseded: %d -> %d", frozen, got)
	}
	if cur.Count("ClearRect") == 0 {
		t.Error("new surface never ticked")
	}
}

func TestSchedulerStop(t *testing.T) {
	s := weatheroverlay.NewScheduler()
	rec := surfacetest.New()

	s.Stop() // idle stop is a no-op
	if s.Running() {
		t.Fatal("Running() = true before Start")
	}

	s.Start(rec, 10, 10, 5*time.Millisecond, nil)
	if !s.Running() {
		t.Fatal("Running() = false after Start")
	}
	time.Sleep(20 * time.Millisecond)
	s.Stop()
	if s.Running() {
		t.Error("Running() = true after Stop")
	}
	n := rec.Count("ClearRect")
	time.Sleep(30 * time.Millisecond)
	if got := rec.Count("ClearRect"); got != n {
		t.Errorf("ticks after Stop: %d -> %d", n, got)
	}
}

func TestSchedulerFirstTickAfterOneCadence(t *testing.T) {
	s := weatheroverlay.NewScheduler()
	rec := surfacetest.New()
	s.Start(rec, 10, 10, time.Hour, nil)
	defer s.Stop()
	time.Sleep(20 * time.Millisecond)
	if got := rec.Count("ClearRect"); got != 0 {
		t.Errorf("ClearRect count = %d before the first cadence elapsed", got)
	}
}

func TestSchedulerDefaultCadence(t *testing.T) {
	s := weatheroverlay.NewScheduler()
	rec := surfacetest.New()
	s.Start(rec, 10, 10, 0, nil)
	time.Sleep(150 * time.Millisecond)
	s.Stop()
	// 33ms cadence: a handful of ticks, far fewer than a busy loop.
	if got := rec.Count("ClearRect"); got < 2 || got > 6 {
		t.Errorf("ClearRect count = %d in 150ms, want about 4", got)
	}
}

// lockSpy records whether the frame lock was held during draws.
type lockSpy struct {
	mu     sync.Mutex
	held   bool
	locks  int
	misses int
}

func (l *lockSpy) Lock() {
	l.mu.Lock()
	l.held = true
	l.locks++
}

func (l *lockSpy) Unlock() {
	l.held = false
	l.mu.Unlock()
}

type lockCheckEffect struct{ lock *lockSpy }

func (e lockCheckEffect) Draw(weatheroverlay.Surface) {
	if !e.lock.held {
		e.lock.misses++
	}
}

func TestSchedulerFrameLock(t *testing.T) {
	spy := &lockSpy{}
	s := weatheroverlay.NewScheduler()
	s.FrameLock = spy
	s.Start(surfacetest.New(), 10, 10, 5*time.Millisecond, []weatheroverlay.Effect{lockCheckEffect{spy}})
	time.Sleep(40 * time.Millisecond)
	s.Stop()

	spy.mu.Lock()
	defer spy.mu.Unlock()
	if spy.locks == 0 {
		t.Fatal("frame lock never taken")
	}
	if spy.misses != 0 {
		t.Errorf("%d draws ran without the frame lock", spy.misses)
	}
}
