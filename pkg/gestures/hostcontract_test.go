package gestures_test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/go-drift/drift-gestures/pkg/gestures"
	"github.com/go-drift/drift-gestures/pkg/gestures/gesturesmock"
)

// These tests pin the gesture -> host half of the contract through call
// expectations on the generated Host mock, where the package-internal tests
// use the fakeHost double to drive timers instead.

func touchBegin(device gestures.DeviceID, sequence gestures.SequenceID) gestures.Event {
	return gestures.Event{
		Kind:         gestures.EventTouchBegin,
		Device:       device,
		SourceDevice: device,
		DeviceKind:   gestures.DeviceTouch,
		Sequence:     sequence,
		Coords:       gestures.Offset{X: 4, Y: 4},
		Timestamp:    time.Now(),
	}
}

func TestRecognizingClaimsEveryHeldSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := gesturesmock.NewMockHost(ctrl)
	host.EXPECT().MainThreadAssert().AnyTimes()

	device := gestures.DeviceID{15: 1}
	sequence := gestures.SequenceID{15: 2}

	g := gestures.New(
		gestures.WithHost(host),
		gestures.WithGestureCoordinator(gestures.NewCoordinator()),
		gestures.WithPointRange(1, 2),
	)

	ev := touchBegin(device, sequence)
	if !g.ShouldHandleSequence(ev) {
		t.Fatal("ShouldHandleSequence refused an acceptable touch")
	}
	g.HandleEvent(ev)

	host.EXPECT().ClaimSequence(device, sequence)
	g.SetState(gestures.StateRecognizing)
}

func TestLongPressSchedulesAndCancelsHoldTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := gesturesmock.NewMockHost(ctrl)
	host.EXPECT().MainThreadAssert().AnyTimes()

	lp := gestures.NewLongPress(
		gestures.WithHost(host),
		gestures.WithGestureCoordinator(gestures.NewCoordinator()),
		gestures.WithLongPressDuration(400*time.Millisecond),
	)

	device := gestures.DeviceID{15: 3}
	sequence := gestures.SequenceID{15: 4}
	handle := gestures.TimerHandle(7)

	host.EXPECT().ScheduleTimer(400*time.Millisecond, gomock.Any()).Return(handle)

	ev := touchBegin(device, sequence)
	if !lp.ShouldHandleSequence(ev) {
		t.Fatal("ShouldHandleSequence refused an acceptable touch")
	}
	lp.HandleEvent(ev)

	// Releasing before the hold elapses must tear the timer down again.
	host.EXPECT().CancelTimer(handle)
	end := ev
	end.Kind = gestures.EventTouchEnd
	lp.HandleEvent(end)

	if got := lp.GetState(); got != gestures.StateWaiting {
		t.Fatalf("state after early release = %s, want waiting", got)
	}
}
