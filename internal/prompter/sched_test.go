package prompter

import (
	"testing"
	"time"
)

func TestScheduleOneShot(t *testing.T) {
	s := NewManualScheduler()
	fired := 0
	s.Schedule(time.Second, false, func() { fired++ })

	s.Advance(500 * time.Millisecond)
	if fired != 0 {
		t.Errorf("fired early: %d", fired)
	}

	s.Advance(500 * time.Millisecond)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}

	// A one-shot never fires again.
	s.Advance(10 * time.Second)
	if fired != 1 {
		t.Errorf("fired = %d after extra time, want 1", fired)
	}
}

func TestScheduleRepeating(t *testing.T) {
	s := NewManualScheduler()
	fired := 0
	s.Schedule(time.Second, true, func() { fired++ })

	s.Advance(3500 * time.Millisecond)
	if fired != 3 {
		t.Errorf("fired = %d, want 3", fired)
	}

	s.Advance(500 * time.Millisecond)
	if fired != 4 {
		t.Errorf("fired = %d, want 4", fired)
	}
}

func TestCancelIdempotent(t *testing.T) {
	s := NewManualScheduler()
	fired := 0
	h := s.Schedule(time.Second, true, func() { fired++ })

	s.Cancel(h)
	s.Cancel(h) // second cancel is a no-op
	s.Advance(5 * time.Second)

	if fired != 0 {
		t.Errorf("cancelled task fired %d times", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestCancelAfterExpiry(t *testing.T) {
	s := NewManualScheduler()
	h := s.Schedule(time.Second, false, func() {})

	s.Advance(2 * time.Second)
	s.Cancel(h) // expired handle, still safe
}

func TestCallbackCancelsSibling(t *testing.T) {
	s := NewManualScheduler()
	fired := 0

	var second Handle
	s.Schedule(time.Second, false, func() {
		s.Cancel(second)
	})
	second = s.Schedule(2*time.Second, false, func() { fired++ })

	s.Advance(5 * time.Second)
	if fired != 0 {
		t.Errorf("task cancelled by an earlier callback still fired")
	}
}

func TestCallbackSchedulesFollowup(t *testing.T) {
	s := NewManualScheduler()
	var order []string

	s.Schedule(time.Second, false, func() {
		order = append(order, "first")
		s.Schedule(time.Second, false, func() {
			order = append(order, "second")
		})
	})

	s.Advance(3 * time.Second)
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
}

func TestFiringOrderAcrossTasks(t *testing.T) {
	s := NewManualScheduler()
	var order []string

	s.Schedule(2*time.Second, false, func() { order = append(order, "late") })
	s.Schedule(time.Second, false, func() { order = append(order, "early") })

	s.Advance(3 * time.Second)
	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Errorf("order = %v, want [early late]", order)
	}
}
