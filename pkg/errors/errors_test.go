package errors

import (
	"errors"
	"testing"
	"time"
)

func TestDriftErrorFormatting(t *testing.T) {
	underlying := errors.New("illegal transition waiting -> recognizing")
	err := &DriftError{
		Op:        "gestures.Gesture.SetState",
		Kind:      KindTransition,
		Err:       underlying,
		Timestamp: time.Now(),
	}

	want := "gestures.Gesture.SetState [transition]: illegal transition waiting -> recognizing"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, underlying) {
		t.Fatal("DriftError must unwrap to its underlying error")
	}
}

func TestErrorKindStrings(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown:    "unknown",
		KindTransition: "transition",
		KindInvariant:  "invariant",
		KindEvent:      "event",
		ErrorKind(99):  "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestEventErrorFormatting(t *testing.T) {
	err := &EventError{
		Gesture:   "tap",
		EventKind: "motion",
		Reason:    "no point for this (device, sequence)",
	}
	want := "motion event for gesture tap: no point for this (device, sequence)"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestEventErrorUnwrapsThroughDriftError(t *testing.T) {
	inner := &EventError{Gesture: "pan", EventKind: "touch-update", Reason: "no point for this (device, sequence)"}
	outer := &DriftError{Op: "gestures.Gesture.HandleEvent", Kind: KindEvent, Err: inner}

	var got *EventError
	if !errors.As(outer, &got) {
		t.Fatal("DriftError must expose its EventError cause through errors.As")
	}
	if got.Gesture != "pan" {
		t.Fatalf("unwrapped gesture = %q, want pan", got.Gesture)
	}
}

func TestPanicErrorFormatting(t *testing.T) {
	err := &PanicError{Op: "tap.GestureStateChanged", Value: "exploded"}
	want := "panic in tap.GestureStateChanged: exploded"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	bare := &PanicError{Value: 42}
	if got := bare.Error(); got != "panic: 42" {
		t.Fatalf("Error() = %q, want %q", got, "panic: 42")
	}
}
