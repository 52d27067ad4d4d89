package weatheroverlay

import (
	"fmt"
	"math/rand/v2"
	"reflect"
)

// Opacity is the alpha hosts composite the overlay with.
const Opacity = 0.4

// StateSource looks up the current state of a host entity.
type StateSource interface {
	State(entity string) (state string, ok bool)
}

// States is a fixed entity → state table.
type States map[string]string

// State implements StateSource.
func (s States) State(entity string) (string, bool) {
	v, ok := s[entity]
	return v, ok
}

// Status describes what the last Render did.
type Status uint8

const (
	StatusAnimating   Status = iota // an animation (or the label fallback) is running
	StatusUnavailable               // the entity has no state; show RenderResult.Warning
	StatusNoSurface                 // no surface was supplied; nothing is drawn
)

func (s Status) String() string {
	switch s {
	case StatusAnimating:
		return "animating"
	case StatusUnavailable:
		return "unavailable"
	case StatusNoSurface:
		return "no-surface"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// RenderResult reports the outcome of Card.Render.
type RenderResult struct {
	Status    Status
	Selection Selection
	// Changed is true when this render replaced the running animation.
	Changed bool
	// Warning is the text to show instead of the overlay when Status is
	// StatusUnavailable.
	Warning string
}

// renderKey is the input that decides whether an animation must restart.
// The surface is kept beside it and compared with sameSurface.
type renderKey struct {
	state string
	w, h  float64
}

// Card is the overlay controller: it resolves the configured entity's state,
// selects effects for it, and keeps exactly one animation running. Effects
// are rebuilt only when the effective state, the size, or the surface change.
//
// A Card is driven from a single goroutine.
type Card struct {
	config    Config
	scheduler *Scheduler
	rng       *rand.Rand

	last    renderKey
	lastDst Surface
	hasLast bool
}

// NewCard creates a card. It returns ErrMissingEntity when cfg names no
// entity.
func NewCard(cfg Config) (*Card, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Card{
		config:    cfg,
		scheduler: NewScheduler(),
		rng:       NewRand(cfg.Seed),
	}
	c.scheduler.SetDebugMode(cfg.Debug)
	return c, nil
}

// Config returns the card's configuration.
func (c *Card) Config() Config {
	return c.config
}

// SetConfig replaces the configuration. The next Render restarts the
// animation even if the state is unchanged.
func (c *Card) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.config = cfg
	c.scheduler.SetDebugMode(cfg.Debug)
	c.hasLast = false
	return nil
}

// Scheduler returns the scheduler driving the card's animations.
func (c *Card) Scheduler() *Scheduler {
	return c.scheduler
}

// Render brings the running animation in line with the entity's current
// state and the w×h surface dst.
func (c *Card) Render(src StateSource, dst Surface, w, h float64) RenderResult {
	if dst == nil {
		c.reset()
		return RenderResult{Status: StatusNoSurface}
	}

	state, ok := "", false
	if src != nil {
		state, ok = src.State(c.config.Entity)
	}
	if !ok {
		c.reset()
		return RenderResult{
			Status:  StatusUnavailable,
			Warning: "Entity not available: " + c.config.Entity,
		}
	}

	key := renderKey{state: c.config.EffectiveState(state), w: w, h: h}
	sel := Select(key.state)
	if c.hasLast && c.last == key && sameSurface(c.lastDst, dst) {
		return RenderResult{Status: StatusAnimating, Selection: sel}
	}

	if c.config.Debug {
		debugf("card: %s state=%q kinds=%v", c.config.Entity, key.state, sel.Kinds)
	}
	// The running effects share c.rng, so they must stop before new ones
	// draw from it.
	c.scheduler.Stop()
	c.scheduler.StartNamed(key.state, dst, w, h, sel.Cadence, sel.Build(w, h, c.rng))
	c.last = key
	c.lastDst = dst
	c.hasLast = true
	return RenderResult{Status: StatusAnimating, Selection: sel, Changed: true}
}

// Close stops the running animation.
func (c *Card) Close() {
	c.reset()
}

func (c *Card) reset() {
	c.scheduler.Stop()
	c.lastDst = nil
	c.hasLast = false
}

// sameSurface reports whether a and b are the same surface. Values of a
// type that cannot be compared are never the same, so such surfaces restart
// the animation on every Render.
func sameSurface(a, b Surface) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
