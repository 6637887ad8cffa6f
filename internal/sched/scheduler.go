// Package sched provides a registry of named, pausable timers.
//
// Timers carry a command value instead of a closure. When a timer expires the
// scheduler hands its command to a single dispatch function, so everything a
// timer can trigger is visible as a type in the caller's package.
//
// The scheduler never spawns goroutines. Expired timers fire from Run, which
// the owner calls once per simulation tick on its own goroutine. A dispatch
// function that panics is not recovered: the panic unwinds through Run.
package sched

import (
	"fmt"
	"time"
)

// Dispatch receives the command of every timer that fires.
type Dispatch[C any] func(cmd C)

type timer[C any] struct {
	name      string
	cmd       C
	period    time.Duration // Full duration, reused by intervals after each firing
	remaining time.Duration // Time left, measured from startedAt
	startedAt time.Time
	repeat    bool
	seq       uint64 // Creation order, breaks ties between timers due at the same instant
}

func (t *timer[C]) due() time.Time {
	return t.startedAt.Add(t.remaining)
}

// Scheduler owns a set of named one-shot and repeating timers.
// At most one timer exists per name. Not safe for concurrent use.
type Scheduler[C any] struct {
	clock    Clock
	dispatch Dispatch[C]
	timers   map[string]*timer[C]
	paused   bool
	seq      uint64
}

// New creates a scheduler that measures time with clock and delivers fired
// commands to dispatch.
func New[C any](clock Clock, dispatch Dispatch[C]) *Scheduler[C] {
	if clock == nil {
		clock = SystemClock{}
	}
	if dispatch == nil {
		panic("sched: nil dispatch")
	}
	return &Scheduler[C]{
		clock:    clock,
		dispatch: dispatch,
		timers:   make(map[string]*timer[C]),
	}
}

// AddTimer registers a one-shot timer that fires cmd after d.
// If a timer with the same name exists the call is a no-op, unless replace is
// set, in which case the existing timer is cancelled first.
// A one-shot timer removes itself from the registry before its command is dispatched.
func (s *Scheduler[C]) AddTimer(name string, cmd C, d time.Duration, replace bool) {
	if _, exists := s.timers[name]; exists {
		if !replace {
			return
		}
		s.Delete(name)
	}
	s.add(name, cmd, d, false)
}

// AddInterval registers a repeating timer that fires cmd every period until deleted.
// No-op if a timer with the same name exists.
func (s *Scheduler[C]) AddInterval(name string, cmd C, period time.Duration) {
	if period <= 0 {
		panic(fmt.Sprintf("sched: interval %q has non-positive period %v", name, period))
	}
	if _, exists := s.timers[name]; exists {
		return
	}
	s.add(name, cmd, period, true)
}

func (s *Scheduler[C]) add(name string, cmd C, d time.Duration, repeat bool) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.timers[name] = &timer[C]{
		name:      name,
		cmd:       cmd,
		period:    d,
		remaining: d,
		startedAt: s.clock.Now(),
		repeat:    repeat,
		seq:       s.seq,
	}
}

// Delete cancels and removes the named timer. No-op if it does not exist.
// A deleted timer never fires.
func (s *Scheduler[C]) Delete(name string) {
	delete(s.timers, name)
}

// Exists reports whether a timer with the given name is registered.
func (s *Scheduler[C]) Exists(name string) bool {
	_, ok := s.timers[name]
	return ok
}

// Remaining returns the time left before the named timer fires.
func (s *Scheduler[C]) Remaining(name string) (time.Duration, bool) {
	t, ok := s.timers[name]
	if !ok {
		return 0, false
	}
	if s.paused {
		return t.remaining, true
	}
	left := t.due().Sub(s.clock.Now())
	if left < 0 {
		left = 0
	}
	return left, true
}

// Len returns the number of registered timers.
func (s *Scheduler[C]) Len() int {
	return len(s.timers)
}

// Clear removes every timer without firing it.
func (s *Scheduler[C]) Clear() {
	clear(s.timers)
}

// Paused reports whether the scheduler is suspended.
func (s *Scheduler[C]) Paused() bool {
	return s.paused
}

// Pause suspends every timer. Each timer keeps exactly the duration it had
// left, so a timer paused 900ms into 1000ms resumes with 100ms remaining.
func (s *Scheduler[C]) Pause() {
	if s.paused {
		return
	}
	now := s.clock.Now()
	for _, t := range s.timers {
		t.remaining -= now.Sub(t.startedAt)
		if t.remaining < 0 {
			t.remaining = 0
		}
	}
	s.paused = true
}

// Resume restarts every timer with its remaining duration.
// Timers added while paused start counting now.
func (s *Scheduler[C]) Resume() {
	if !s.paused {
		return
	}
	now := s.clock.Now()
	for _, t := range s.timers {
		t.startedAt = now
	}
	s.paused = false
}

// Run fires every timer that is due, earliest first, and returns how many fired.
// Commands dispatched here may add or delete timers; a timer added with a zero
// duration during Run fires in the same call.
func (s *Scheduler[C]) Run() int {
	if s.paused {
		return 0
	}

	fired := 0
	now := s.clock.Now()
	for {
		t := s.next(now)
		if t == nil {
			return fired
		}

		if t.repeat {
			t.startedAt = t.due()
			t.remaining = t.period
		} else {
			delete(s.timers, t.name)
		}

		s.dispatch(t.cmd)
		fired++
	}
}

// next returns the earliest timer due at or before now.
func (s *Scheduler[C]) next(now time.Time) *timer[C] {
	var best *timer[C]
	for _, t := range s.timers {
		if t.due().After(now) {
			continue
		}
		if best == nil || t.due().Before(best.due()) ||
			(t.due().Equal(best.due()) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}
