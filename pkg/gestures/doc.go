// Package gestures implements a gesture recognition coordinator: a
// finite-state engine that turns low-level pointer and touch input events
// into discrete, higher-level gestures (tap, long-press, pan, ...) while
// arbitrating between many candidate gestures that observe the same input
// points concurrently.
//
// # State machine
//
// Every [Gesture] has exactly five observable states plus a synthetic sixth
// value, [StateRecognizePending], surfaced while a [Gesture.RequireFailureOf]
// dependency is still outstanding:
//
//	gesture := gestures.New()
//	gesture.SetState(gestures.StatePossible)
//	gesture.SetState(gestures.StateRecognizing)
//	gesture.GetState() // StateRecognizing, or StateRecognizePending if gated
//
// # Relationships
//
// Gestures that observe the same point are introduced to each other by the
// host through [Gesture.SetupSequenceRelationship], which returns a
// dispatch-ordering hint. A delegate influences the relationship through
// the optional hook interfaces ([ShouldInfluenceHandler],
// [ShouldBeInfluencedByHandler], [ShouldStartWhileHandler],
// [OtherGestureMayStartHandler]); public overrides are set directly on the
// gesture ([Gesture.CanNotCancel], [Gesture.RequireFailureOf],
// [Gesture.RecognizeIndependentlyFrom]).
//
// # Host contract
//
// The coordinator never owns an event loop or a timer; it is driven
// synchronously by a [Host] implementation that delivers events and
// schedules timers on the caller's behalf.
package gestures
