package gestures

import (
	"testing"
	"time"
)

func TestPanRecognizesPastBeginThreshold(t *testing.T) {
	host := newFakeHost()
	pan := NewPan(WithHost(host), WithBeginThreshold(10))
	var started bool
	var updates int
	pan.OnStart = func(PanStartDetails) { started = true }
	pan.OnUpdate = func(PanUpdateDetails) { updates++ }

	device := newDeviceID()
	t0 := time.Now()
	pan.ShouldHandleSequence(pressEvent(device, Offset{}, t0))
	pan.HandleEvent(pressEvent(device, Offset{}, t0))

	pan.HandleEvent(moveEvent(device, Offset{X: 3, Y: 0}, t0.Add(5*time.Millisecond)))
	if pan.GetState() != StatePossible {
		t.Fatalf("state after sub-threshold move = %s, want possible", pan.GetState())
	}

	pan.HandleEvent(moveEvent(device, Offset{X: 20, Y: 0}, t0.Add(10*time.Millisecond)))
	if pan.GetState() != StateRecognizing {
		t.Fatalf("state after past-threshold move = %s, want recognizing", pan.GetState())
	}
	if !started {
		t.Fatal("OnStart must fire once the pan commits")
	}
	if updates != 1 {
		t.Fatalf("OnUpdate fired %d times, want 1", updates)
	}
}

func TestPanAxisLockRejectsOrthogonalMovement(t *testing.T) {
	host := newFakeHost()
	pan := NewPan(WithHost(host), WithGestureCoordinator(NewCoordinator()), WithPanAxis(PanAxisHorizontal), WithBeginThreshold(10))

	device := newDeviceID()
	t0 := time.Now()
	pan.ShouldHandleSequence(pressEvent(device, Offset{}, t0))
	pan.HandleEvent(pressEvent(device, Offset{}, t0))
	pan.HandleEvent(moveEvent(device, Offset{X: 2, Y: 30}, t0.Add(5*time.Millisecond)))

	if pan.GetState() != StateCancelled {
		t.Fatalf("state after orthogonal-axis violation = %s, want cancelled", pan.GetState())
	}
}

func TestPanEndReportsVelocity(t *testing.T) {
	host := newFakeHost()
	pan := NewPan(WithHost(host), WithGestureCoordinator(NewCoordinator()), WithBeginThreshold(5))
	var endDetails PanEndDetails
	pan.OnEnd = func(d PanEndDetails) { endDetails = d }

	device := newDeviceID()
	t0 := time.Now()
	pan.ShouldHandleSequence(pressEvent(device, Offset{}, t0))
	pan.HandleEvent(pressEvent(device, Offset{}, t0))
	pan.HandleEvent(moveEvent(device, Offset{X: 50, Y: 0}, t0.Add(20*time.Millisecond)))
	pan.HandleEvent(releaseEvent(device, Offset{X: 60, Y: 0}, t0.Add(40*time.Millisecond)))

	if pan.GetState() != StateCompleted && pan.GetState() != StateWaiting {
		t.Fatalf("state after release = %s, want completed (or waiting once drained)", pan.GetState())
	}
	if endDetails.Velocity.X == 0 {
		t.Fatal("OnEnd should report nonzero horizontal velocity for a rightward drag")
	}
}
