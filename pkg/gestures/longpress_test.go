package gestures

import (
	"testing"
	"time"
)

func TestLongPressCompletesAfterTimerFires(t *testing.T) {
	host := newFakeHost()
	lp := NewLongPress(WithHost(host), WithLongPressDuration(500*time.Millisecond))
	var started, ended bool
	lp.OnStart = func(LongPressStartDetails) { started = true }
	lp.OnEnd = func(LongPressEndDetails) { ended = true }

	device := newDeviceID()
	now := time.Now()
	lp.ShouldHandleSequence(pressEvent(device, Offset{X: 1, Y: 1}, now))
	lp.HandleEvent(pressEvent(device, Offset{X: 1, Y: 1}, now))

	if started {
		t.Fatal("OnStart must not fire before the hold duration elapses")
	}
	host.fireAll()
	if !started {
		t.Fatal("OnStart must fire once the hold timer elapses")
	}
	if lp.GetState() != StateRecognizing {
		t.Fatalf("state after timer fired = %s, want recognizing", lp.GetState())
	}

	lp.HandleEvent(releaseEvent(device, Offset{X: 1, Y: 1}, now))
	if !ended {
		t.Fatal("OnEnd must fire on release once recognizing")
	}
}

func TestLongPressCancelsOnEarlyRelease(t *testing.T) {
	host := newFakeHost()
	lp := NewLongPress(WithHost(host))
	cancelled := false
	lp.OnCancel = func() { cancelled = true }

	var seen []State
	lp.OnStateChange(func(old, new State) { seen = append(seen, new) })

	device := newDeviceID()
	now := time.Now()
	lp.ShouldHandleSequence(pressEvent(device, Offset{}, now))
	lp.HandleEvent(pressEvent(device, Offset{}, now))
	lp.HandleEvent(releaseEvent(device, Offset{}, now))

	// The release empties the store, so the CANCELLED episode immediately
	// drains back to WAITING; the transition itself is still observable.
	if lp.GetState() != StateWaiting {
		t.Fatalf("state after early release = %s, want waiting", lp.GetState())
	}
	want := []State{StatePossible, StateCancelled, StateWaiting}
	if len(seen) != len(want) {
		t.Fatalf("observed transitions %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("observed transitions %v, want %v", seen, want)
		}
	}
	// OnCancel only fires for a gesture that had already committed;
	// releasing before the hold elapsed never reached RECOGNIZING.
	if cancelled {
		t.Fatal("OnCancel must not fire for a release that never recognized")
	}
}

func TestLongPressCancelsOnExcessiveMovement(t *testing.T) {
	host := newFakeHost()
	lp := NewLongPress(WithHost(host), WithCancelThreshold(5))

	device := newDeviceID()
	now := time.Now()
	lp.ShouldHandleSequence(pressEvent(device, Offset{}, now))
	lp.HandleEvent(pressEvent(device, Offset{}, now))
	lp.HandleEvent(moveEvent(device, Offset{X: 20, Y: 0}, now))

	if lp.GetState() != StateCancelled {
		t.Fatalf("state after excessive movement = %s, want cancelled", lp.GetState())
	}
}
