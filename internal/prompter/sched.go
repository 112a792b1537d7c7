// Package prompter contains the presentation core: the optimal-size
// solver, the scroll engine, the presentation state machine and the
// manual override layer. It holds no terminal or Bubble Tea
// dependencies; the platform layer drives it with events and reads
// snapshots back for rendering.
package prompter

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback for cancellation.
type Handle int64

// Scheduler abstracts periodic callbacks. The platform layer supplies
// the real clock (Bubble Tea ticks in the terminal shell); tests drive
// a manual clock. Cancel must be safe to call repeatedly and after a
// one-shot task has already fired.
type Scheduler interface {
	Schedule(interval time.Duration, repeating bool, fn func()) Handle
	Cancel(h Handle)
}

type schedTask struct {
	handle    Handle
	at        time.Duration // absolute fire time on the scheduler clock
	interval  time.Duration
	repeating bool
	fn        func()
}

// ManualScheduler is a deterministic Scheduler driven by explicit
// Advance calls. All callbacks run synchronously on the caller's
// goroutine, which preserves the single-threaded ownership of session
// state: the platform calls Advance from its event loop, tests call it
// directly.
type ManualScheduler struct {
	now    time.Duration
	nextID Handle
	tasks  map[Handle]*schedTask
}

// NewManualScheduler creates a scheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		tasks: make(map[Handle]*schedTask),
	}
}

// Schedule registers a callback to fire after interval, and every
// interval thereafter when repeating.
func (s *ManualScheduler) Schedule(interval time.Duration, repeating bool, fn func()) Handle {
	s.nextID++
	h := s.nextID
	s.tasks[h] = &schedTask{
		handle:    h,
		at:        s.now + interval,
		interval:  interval,
		repeating: repeating,
		fn:        fn,
	}
	return h
}

// Cancel removes a scheduled callback. Unknown or already-cancelled
// handles are ignored.
func (s *ManualScheduler) Cancel(h Handle) {
	delete(s.tasks, h)
}

// Pending returns the number of live scheduled tasks.
func (s *ManualScheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves the clock forward by d, firing every due callback in
// time order. A repeating task that became due several times fires once
// per elapsed interval. Callbacks may schedule and cancel tasks; a task
// cancelled by an earlier callback in the same Advance does not fire.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}

		s.now = next.at
		if next.repeating {
			next.at += next.interval
		} else {
			delete(s.tasks, next.handle)
		}
		next.fn()
	}

	s.now = target
}

// nextDue returns the earliest task due at or before target, or nil.
func (s *ManualScheduler) nextDue(target time.Duration) *schedTask {
	var due []*schedTask
	for _, t := range s.tasks {
		if t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].handle < due[j].handle
	})
	return due[0]
}
