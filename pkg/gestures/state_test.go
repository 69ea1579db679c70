package gestures

import "testing"

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateWaiting:           "waiting",
		StatePossible:          "possible",
		StateRecognizing:       "recognizing",
		StateCompleted:         "completed",
		StateCancelled:         "cancelled",
		StateRecognizePending:  "recognize-pending",
		State(99):              "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestStateIsActive(t *testing.T) {
	if StateWaiting.IsActive() {
		t.Error("WAITING must not be active")
	}
	for _, s := range []State{StatePossible, StateRecognizing, StateCompleted, StateCancelled, StateRecognizePending} {
		if !s.IsActive() {
			t.Errorf("%s must be active", s)
		}
	}
}

func TestStateIsTerminal(t *testing.T) {
	terminal := map[State]bool{
		StateWaiting:          false,
		StatePossible:         false,
		StateRecognizing:      false,
		StateCompleted:        true,
		StateCancelled:        true,
		StateRecognizePending: false,
	}
	for s, want := range terminal {
		if got := s.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", s, got, want)
		}
	}
}
