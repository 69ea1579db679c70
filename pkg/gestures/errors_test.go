package gestures

import (
	"errors"
	"testing"
	"time"

	driftErrors "github.com/go-drift/drift-gestures/pkg/errors"
)

type recordingErrorHandler struct {
	errors []*driftErrors.DriftError
	panics []*driftErrors.PanicError
}

func (h *recordingErrorHandler) HandleError(err *driftErrors.DriftError) {
	h.errors = append(h.errors, err)
}

func (h *recordingErrorHandler) HandlePanic(err *driftErrors.PanicError) {
	h.panics = append(h.panics, err)
}

func TestIllegalTransitionReportsStructuredError(t *testing.T) {
	handler := &recordingErrorHandler{}
	c := NewCoordinator(WithErrorHandler(handler))
	r := newRecorder(WithHost(newFakeHost()), WithGestureCoordinator(c))

	// RECOGNIZING straight from WAITING is never legal.
	r.SetState(StateRecognizing)

	if len(handler.errors) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(handler.errors))
	}
	got := handler.errors[0]
	if got.Kind != driftErrors.KindTransition {
		t.Fatalf("error kind = %s, want transition", got.Kind)
	}
	if got.Op != "gestures.Gesture.SetState" {
		t.Fatalf("error op = %q, want gestures.Gesture.SetState", got.Op)
	}
}

func TestUnknownSequenceEventReported(t *testing.T) {
	handler := &recordingErrorHandler{}
	c := NewCoordinator(WithErrorHandler(handler))
	r := newRecorder(WithHost(newFakeHost()), WithGestureCoordinator(c))

	if r.HandleEvent(moveEvent(newDeviceID(), Offset{}, time.Now())) {
		t.Fatal("motion for an unknown sequence must propagate, not be consumed")
	}

	if len(handler.errors) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(handler.errors))
	}
	got := handler.errors[0]
	if got.Kind != driftErrors.KindEvent {
		t.Fatalf("error kind = %s, want event", got.Kind)
	}
	var evErr *driftErrors.EventError
	if !errors.As(got, &evErr) {
		t.Fatal("reported error must unwrap to an EventError")
	}
	if evErr.EventKind != "motion" {
		t.Fatalf("reported event kind = %q, want motion", evErr.EventKind)
	}
}

type panickyDelegate struct {
	*Gesture
}

func (p *panickyDelegate) GestureStateChanged(old, new State) {
	panic("delegate exploded")
}

func TestPanickingDelegateHookIsRecoveredAndReported(t *testing.T) {
	handler := &recordingErrorHandler{}
	c := NewCoordinator(WithErrorHandler(handler))

	p := &panickyDelegate{}
	p.Gesture = New(WithHost(newFakeHost()), WithGestureCoordinator(c), WithGestureName("panicky"))
	p.Gesture.SetDelegate(p)

	device := newDeviceID()
	ev := pressEvent(device, Offset{}, time.Now())
	if !p.ShouldHandleSequence(ev) {
		t.Fatal("ShouldHandleSequence refused an acceptable press")
	}

	if len(handler.panics) != 1 {
		t.Fatalf("handler received %d panics, want 1", len(handler.panics))
	}
	if p.GetState() != StatePossible {
		t.Fatalf("state = %s, want possible: the panic must not derail the transition", p.GetState())
	}
}
